// Package storage 提供洛书系统的存储接口定义
//
// 📋 **存储抽象 (Storage Abstractions)**
//
// 本包定义了已提交世界状态的持久化存储接口，专注于：
// - BadgerStore：基于BadgerDB的持久化键值存储
// - Transaction：支持原子提交/丢弃的事务句柄
// - MemoryStore：进程内热读缓存
//
// 🎯 **设计原则**
// - 键不存在返回(nil, nil)而非错误，调用方按值判空
// - 暂存/提交语义由上层状态适配器表达，存储层只负责原子事务
package storage

import (
	"context"
	"time"
)

// BadgerStore 持久化键值存储接口
type BadgerStore interface {
	// Get 获取指定键的值，键不存在时返回(nil, nil)
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Set 设置键值对
	Set(ctx context.Context, key, value []byte) error

	// Delete 删除指定键
	Delete(ctx context.Context, key []byte) error

	// Exists 检查键是否存在
	Exists(ctx context.Context, key []byte) (bool, error)

	// NewTransaction 创建事务，update为true时允许写入
	NewTransaction(update bool) (Transaction, error)

	// Close 关闭存储并释放资源
	Close() error
}

// Transaction 存储事务接口
//
// 事务内的读写具备快照隔离；Commit原子落盘，Discard丢弃全部变更。
type Transaction interface {
	// Get 获取指定键的值，键不存在时返回(nil, nil)
	Get(key []byte) ([]byte, error)

	// Set 设置键值对
	Set(key, value []byte) error

	// Delete 删除指定键
	Delete(key []byte) error

	// Exists 检查键是否存在
	Exists(key []byte) (bool, error)

	// Commit 提交事务
	Commit() error

	// Discard 丢弃事务
	Discard()

	// IsActive 检查事务是否处于活动状态
	IsActive() bool
}

// MemoryStore 进程内热读缓存接口
//
// 仅作为已提交数据的旁路缓存，不承载任何正确性语义：
// 缓存未命中一律回源持久化存储。
type MemoryStore interface {
	// Get 获取缓存值，第二个返回值指示是否命中
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set 设置缓存值，ttl为0表示使用缓存默认生命周期
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete 删除指定键的缓存
	Delete(ctx context.Context, key string) error

	// Close 关闭缓存并释放资源
	Close() error
}
