// Package executor 提供执行引擎的配置实现
package executor

import (
	"fmt"

	"github.com/luoshu/v1/pkg/types"
)

// ExecutorOptions 执行引擎配置选项
type ExecutorOptions struct {
	// === 链配置 ===
	ChainID string `json:"chain_id"` // 链标识（0x十六进制，32字节）

	// === cycles计量配置 ===
	CyclesPrice uint64 `json:"cycles_price"` // 默认单位cycle价格
	CyclesLimit uint64 `json:"cycles_limit"` // 默认单次调用cycles上限
}

// Config 执行引擎配置实现
type Config struct {
	options *ExecutorOptions
	chainID types.ChainID
}

// New 创建执行引擎配置实现，userOptions为nil时使用默认配置
func New(userOptions *ExecutorOptions) (*Config, error) {
	options := createDefaultExecutorOptions()

	if userOptions != nil {
		if userOptions.ChainID != "" {
			options.ChainID = userOptions.ChainID
		}
		if userOptions.CyclesPrice > 0 {
			options.CyclesPrice = userOptions.CyclesPrice
		}
		if userOptions.CyclesLimit > 0 {
			options.CyclesLimit = userOptions.CyclesLimit
		}
	}

	chainID, err := types.NewHashFromHex(options.ChainID)
	if err != nil {
		return nil, fmt.Errorf("解析链标识失败: %w", err)
	}

	return &Config{options: options, chainID: chainID}, nil
}

// GetChainID 获取链标识
func (c *Config) GetChainID() types.ChainID {
	return c.chainID
}

// GetCyclesPrice 获取默认单位cycle价格
func (c *Config) GetCyclesPrice() uint64 {
	return c.options.CyclesPrice
}

// GetCyclesLimit 获取默认单次调用cycles上限
func (c *Config) GetCyclesLimit() uint64 {
	return c.options.CyclesLimit
}
