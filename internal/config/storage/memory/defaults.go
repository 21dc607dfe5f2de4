package memory

// 内存缓存配置默认值
const (
	defaultLifeWindow         = "10m"
	defaultCleanWindow        = "5m"
	defaultMaxEntriesInWindow = 1000 * 10 * 60
	defaultMaxEntrySize       = 1024
	defaultShards             = 1024
)

// createDefaultMemoryOptions 创建默认内存缓存配置
func createDefaultMemoryOptions() *MemoryOptions {
	return &MemoryOptions{
		LifeWindow:         defaultLifeWindow,
		CleanWindow:        defaultCleanWindow,
		MaxEntriesInWindow: defaultMaxEntriesInWindow,
		MaxEntrySize:       defaultMaxEntrySize,
		Shards:             defaultShards,
	}
}
