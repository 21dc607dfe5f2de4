package types

// InvokeContext 单次合约调用的资源计量上下文
//
// 由外部执行框架构造并以指针传入合约调用，调用方与合约共享同一实例：
// 合约内部对CyclesUsed的累加在返回后对调用方可见。
// CyclesPrice与CyclesLimit按约定只读。
//
// 单一逻辑线程内顺序使用，不做内部加锁。
type InvokeContext struct {
	ChainID     ChainID `json:"chain_id"`     // 链标识
	Caller      Address `json:"caller"`       // 调用方地址
	CyclesUsed  uint64  `json:"cycles_used"`  // 已消耗cycles（可变）
	CyclesPrice uint64  `json:"cycles_price"` // 单位cycle价格
	CyclesLimit uint64  `json:"cycles_limit"` // cycles硬上限
}
