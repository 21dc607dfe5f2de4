// Package log 提供日志系统的配置实现
package log

// LogOptions 日志配置选项
type LogOptions struct {
	// === 基础配置 ===
	Level   string `json:"level"`   // 日志级别（debug/info/warn/error/fatal）
	Console bool   `json:"console"` // 是否输出到控制台

	// === 文件输出配置 ===
	FilePath   string `json:"file_path"`   // 日志文件路径，为空时不写文件
	MaxSizeMB  int    `json:"max_size_mb"` // 单个日志文件最大体积（MB）
	MaxBackups int    `json:"max_backups"` // 保留的历史文件数
	MaxAgeDays int    `json:"max_age_days"` // 历史文件保留天数
	Compress   bool   `json:"compress"`    // 是否压缩历史文件
}

// Config 日志配置实现
type Config struct {
	options *LogOptions
}

// New 创建日志配置实现，userOptions为nil时使用默认配置
func New(userOptions *LogOptions) *Config {
	options := createDefaultLogOptions()

	if userOptions != nil {
		applyUserOptions(options, userOptions)
	}

	return &Config{options: options}
}

// applyUserOptions 应用用户配置覆盖默认值
func applyUserOptions(options, user *LogOptions) {
	if user.Level != "" {
		options.Level = user.Level
	}
	options.Console = user.Console
	if user.FilePath != "" {
		options.FilePath = user.FilePath
	}
	if user.MaxSizeMB > 0 {
		options.MaxSizeMB = user.MaxSizeMB
	}
	if user.MaxBackups > 0 {
		options.MaxBackups = user.MaxBackups
	}
	if user.MaxAgeDays > 0 {
		options.MaxAgeDays = user.MaxAgeDays
	}
	options.Compress = user.Compress
}

// GetLevel 获取日志级别
func (c *Config) GetLevel() string {
	return c.options.Level
}

// IsConsoleEnabled 是否输出到控制台
func (c *Config) IsConsoleEnabled() bool {
	return c.options.Console
}

// GetFilePath 获取日志文件路径
func (c *Config) GetFilePath() string {
	return c.options.FilePath
}

// GetMaxSizeMB 获取单个日志文件最大体积
func (c *Config) GetMaxSizeMB() int {
	return c.options.MaxSizeMB
}

// GetMaxBackups 获取保留的历史文件数
func (c *Config) GetMaxBackups() int {
	return c.options.MaxBackups
}

// GetMaxAgeDays 获取历史文件保留天数
func (c *Config) GetMaxAgeDays() int {
	return c.options.MaxAgeDays
}

// IsCompressEnabled 是否压缩历史文件
func (c *Config) IsCompressEnabled() bool {
	return c.options.Compress
}
