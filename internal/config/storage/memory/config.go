// Package memory 提供内存缓存存储的配置实现
package memory

// MemoryOptions 内存缓存配置选项
type MemoryOptions struct {
	LifeWindow         string `json:"life_window"`           // 条目生命周期窗口（time.Duration字符串）
	CleanWindow        string `json:"clean_window"`          // 过期清理窗口（time.Duration字符串）
	MaxEntriesInWindow int    `json:"max_entries_in_window"` // 窗口内最大条目数
	MaxEntrySize       int    `json:"max_entry_size"`        // 单条目最大字节数
	Shards             int    `json:"shards"`                // 分片数（必须为2的幂）
}

// Config 内存缓存配置实现
type Config struct {
	options *MemoryOptions
}

// New 创建内存缓存配置实现，userOptions为nil时使用默认配置
func New(userOptions *MemoryOptions) *Config {
	options := createDefaultMemoryOptions()

	if userOptions != nil {
		if userOptions.LifeWindow != "" {
			options.LifeWindow = userOptions.LifeWindow
		}
		if userOptions.CleanWindow != "" {
			options.CleanWindow = userOptions.CleanWindow
		}
		if userOptions.MaxEntriesInWindow > 0 {
			options.MaxEntriesInWindow = userOptions.MaxEntriesInWindow
		}
		if userOptions.MaxEntrySize > 0 {
			options.MaxEntrySize = userOptions.MaxEntrySize
		}
		if userOptions.Shards > 0 {
			options.Shards = userOptions.Shards
		}
	}

	return &Config{options: options}
}

// GetLifeWindow 获取条目生命周期窗口
func (c *Config) GetLifeWindow() string {
	return c.options.LifeWindow
}

// GetCleanWindow 获取过期清理窗口
func (c *Config) GetCleanWindow() string {
	return c.options.CleanWindow
}

// GetMaxEntriesInWindow 获取窗口内最大条目数
func (c *Config) GetMaxEntriesInWindow() int {
	return c.options.MaxEntriesInWindow
}

// GetMaxEntrySize 获取单条目最大字节数
func (c *Config) GetMaxEntrySize() int {
	return c.options.MaxEntrySize
}

// GetShards 获取分片数
func (c *Config) GetShards() int {
	return c.options.Shards
}
