// Package state 提供带暂存层的世界状态适配器实现
//
// 📋 **暂存式状态适配器 (Staged State Adapter)**
//
// 本包实现了执行引擎的状态适配器，专注于：
// - 暂存层：未提交写入只进入内存覆盖层，按插入顺序保序
// - 读穿透：暂存层 → 热读缓存 → 持久化存储
// - 原子提交：全部暂存写入在一个BadgerDB事务内落盘
//
// 🎯 **设计原则**
// - 会话隔离：不同适配器实例的暂存层互不可见
// - 确定性提交：落盘顺序与写入顺序一致
// - 单线程使用：与执行引擎的顺序执行模型一致，不做内部加锁
package state

import (
	"context"
	"fmt"

	"github.com/luoshu/v1/pkg/interfaces/execution"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/storage"
)

// 确保GeneralStateAdapter实现了execution.StateAdapter接口
var _ execution.StateAdapter = (*GeneralStateAdapter)(nil)

// keyPrefix 状态键空间前缀，与其他子系统的键空间隔离
const keyPrefix = "s/"

// GeneralStateAdapter 通用状态适配器
//
// 在持久化存储之上维护一个未提交的暂存层。写入只进入暂存层，
// 对同一实例的后续读取可见；Commit将全部暂存写入原子落盘，
// Discard整体丢弃。热读缓存为可选的旁路加速，不承载正确性语义。
type GeneralStateAdapter struct {
	store  storage.BadgerStore
	cache  storage.MemoryStore // 可为nil
	logger log.Logger

	staged map[string][]byte // 暂存层：状态键 → 值
	order  []string          // 暂存键的插入顺序，保证提交顺序确定
}

// NewGeneralStateAdapter 创建状态适配器
//
// cache可为nil，此时读路径直接回源持久化存储。
func NewGeneralStateAdapter(store storage.BadgerStore, cache storage.MemoryStore, logger log.Logger) *GeneralStateAdapter {
	return &GeneralStateAdapter{
		store:  store,
		cache:  cache,
		logger: logger,
		staged: make(map[string][]byte),
	}
}

// stateKey 构造模式隔离的状态键："s/" + 模式 + "/" + 原始键
func stateKey(schema execution.Schema, key []byte) string {
	return keyPrefix + string(schema) + "/" + string(key)
}

// Contains 检查指定模式下键是否存在（暂存层优先）
func (a *GeneralStateAdapter) Contains(schema execution.Schema, key []byte) (bool, error) {
	sk := stateKey(schema, key)

	if _, ok := a.staged[sk]; ok {
		return true, nil
	}

	if a.cache != nil {
		if _, hit, err := a.cache.Get(context.Background(), sk); err == nil && hit {
			return true, nil
		}
	}

	exists, err := a.store.Exists(context.Background(), []byte(sk))
	if err != nil {
		return false, fmt.Errorf("检查状态键存在性失败: %w", err)
	}
	return exists, nil
}

// Get 读取指定模式下键的值（暂存层优先），键不存在时返回(nil, nil)
func (a *GeneralStateAdapter) Get(schema execution.Schema, key []byte) ([]byte, error) {
	sk := stateKey(schema, key)

	if value, ok := a.staged[sk]; ok {
		out := make([]byte, len(value))
		copy(out, value)
		return out, nil
	}

	if a.cache != nil {
		if value, hit, err := a.cache.Get(context.Background(), sk); err == nil && hit {
			return value, nil
		}
	}

	value, err := a.store.Get(context.Background(), []byte(sk))
	if err != nil {
		return nil, fmt.Errorf("读取状态键失败: %w", err)
	}

	// 已提交数据回填热读缓存
	if value != nil && a.cache != nil {
		if err := a.cache.Set(context.Background(), sk, value, 0); err != nil {
			a.logger.Debugf("状态键回填缓存失败: %v", err)
		}
	}

	return value, nil
}

// InsertCache 将键值写入暂存层，不落盘
func (a *GeneralStateAdapter) InsertCache(schema execution.Schema, key []byte, value []byte) error {
	sk := stateKey(schema, key)

	stored := make([]byte, len(value))
	copy(stored, value)

	if _, ok := a.staged[sk]; !ok {
		a.order = append(a.order, sk)
	}
	a.staged[sk] = stored

	return nil
}

// Commit 将暂存层的全部写入原子落盘并清空暂存层
func (a *GeneralStateAdapter) Commit() error {
	if len(a.staged) == 0 {
		return nil
	}

	txn, err := a.store.NewTransaction(true)
	if err != nil {
		return fmt.Errorf("创建提交事务失败: %w", err)
	}
	defer txn.Discard()

	for _, sk := range a.order {
		if err := txn.Set([]byte(sk), a.staged[sk]); err != nil {
			return fmt.Errorf("写入状态键失败: %w", err)
		}
	}

	if err := txn.Commit(); err != nil {
		return fmt.Errorf("提交状态失败: %w", err)
	}

	// 提交成功后同步热读缓存
	if a.cache != nil {
		for _, sk := range a.order {
			if err := a.cache.Set(context.Background(), sk, a.staged[sk], 0); err != nil {
				a.logger.Debugf("提交后更新缓存失败: %v", err)
			}
		}
	}

	a.logger.Debugf("状态提交完成，写入%d个键", len(a.order))

	a.staged = make(map[string][]byte)
	a.order = nil
	return nil
}

// Discard 丢弃暂存层的全部写入
func (a *GeneralStateAdapter) Discard() {
	a.staged = make(map[string][]byte)
	a.order = nil
}

// StagedCount 返回当前暂存层的键数量（供诊断与测试使用）
func (a *GeneralStateAdapter) StagedCount() int {
	return len(a.staged)
}
