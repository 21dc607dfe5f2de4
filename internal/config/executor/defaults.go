package executor

// 执行引擎配置默认值
const (
	// defaultChainID 开发环境链标识
	defaultChainID = "0xb6a4d7da4af8f50f3563a6adcc658bd47ef248ee0a1103e9d98b871824ad0298"

	defaultCyclesPrice = uint64(1)
	defaultCyclesLimit = uint64(1_000_000)
)

// createDefaultExecutorOptions 创建默认执行引擎配置
func createDefaultExecutorOptions() *ExecutorOptions {
	return &ExecutorOptions{
		ChainID:     defaultChainID,
		CyclesPrice: defaultCyclesPrice,
		CyclesLimit: defaultCyclesLimit,
	}
}
