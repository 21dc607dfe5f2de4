package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	DataDir     string // 数据目录
	ChainID     string // 链标识（0x十六进制）
	CyclesPrice uint64 // 单位cycle价格
	CyclesLimit uint64 // 单次调用cycles上限
	LogLevel    string // 日志级别
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "luoshu",
	Short: "洛书资产登记节点命令行工具",
	Long: `洛书 CLI - 资产登记核心的节点与运维工具

提供以下能力:
- 登记资产并提交到本地世界状态
- 按资产标识查询资产记录
- 启动带HTTP API的节点服务`,
	SilenceUsage: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.DataDir, "data-dir", "./data", "数据目录")
	rootCmd.PersistentFlags().StringVar(&globalFlags.ChainID, "chain-id", "", "链标识 (0x十六进制，默认使用内置开发链)")
	rootCmd.PersistentFlags().Uint64Var(&globalFlags.CyclesPrice, "cycles-price", 0, "单位cycle价格 (默认使用配置值)")
	rootCmd.PersistentFlags().Uint64Var(&globalFlags.CyclesLimit, "cycles-limit", 0, "单次调用cycles上限 (默认使用配置值)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "info", "日志级别: debug|info|warn|error")
}
