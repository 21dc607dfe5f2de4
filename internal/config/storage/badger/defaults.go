package badger

// BadgerDB配置默认值
const (
	defaultPath                 = "./data/badger"
	defaultSyncWrites           = true
	defaultMemTableSize         = 64 << 20 // 64MB
	defaultEnableAutoCompaction = true
)

// createDefaultBadgerOptions 创建默认BadgerDB配置
func createDefaultBadgerOptions() *BadgerOptions {
	return &BadgerOptions{
		Path:                 defaultPath,
		SyncWrites:           defaultSyncWrites,
		MemTableSize:         defaultMemTableSize,
		EnableAutoCompaction: defaultEnableAutoCompaction,
	}
}
