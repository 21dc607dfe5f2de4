package log

// 日志配置默认值
const (
	defaultLevel      = "info"
	defaultConsole    = true
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 5
	defaultMaxAgeDays = 30
)

// createDefaultLogOptions 创建默认日志配置
func createDefaultLogOptions() *LogOptions {
	return &LogOptions{
		Level:      defaultLevel,
		Console:    defaultConsole,
		FilePath:   "", // 默认不写文件，由部署环境决定
		MaxSizeMB:  defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAgeDays: defaultMaxAgeDays,
		Compress:   false,
	}
}
