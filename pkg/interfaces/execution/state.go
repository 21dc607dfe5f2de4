// Package execution 提供执行引擎合约边界的接口定义
//
// 📋 **合约边界接口 (Contract Boundary Interfaces)**
//
// 本包定义了原生合约与其外部协作者之间的编程契约，专注于：
// - 状态适配器：带暂存层的按模式键值存储
// - 资产合约：资产登记与查询的公开操作
//
// 🎯 **设计原则**
// - 暂存语义：写入仅进入未提交层，提交由外部框架统一触发
// - 接口最小化：只暴露合约路径实际依赖的能力
package execution

// Schema 状态记录的模式标签
//
// 每条持久化记录按模式分组，键空间按模式前缀隔离。
type Schema string

const (
	// SchemaAsset 资产记录模式：键为32字节资产标识，值为RLP编码的资产记录
	SchemaAsset Schema = "asset"
)

// StateAdapter 带暂存层的世界状态适配器
//
// 写入只进入未提交的暂存层，对同一会话内的后续读取可见；
// 只有外部框架调用Commit后才落盘。同一逻辑线程内顺序使用，
// 实现不要求对并发调用安全。
type StateAdapter interface {
	// Contains 检查指定模式下键是否存在（暂存层优先）
	Contains(schema Schema, key []byte) (bool, error)

	// Get 读取指定模式下键的值（暂存层优先），键不存在时返回(nil, nil)
	Get(schema Schema, key []byte) ([]byte, error)

	// InsertCache 将键值写入暂存层，不落盘
	InsertCache(schema Schema, key []byte, value []byte) error

	// Commit 将暂存层的全部写入原子落盘并清空暂存层
	Commit() error

	// Discard 丢弃暂存层的全部写入
	Discard()
}
