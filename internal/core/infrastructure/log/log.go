// Package log 提供了一个通用的日志接口和基于zap的实现
// 它支持不同级别的日志记录、结构化日志、日志旋转等功能
package log

import (
	"fmt"
	"os"
	"sync"

	logconfig "github.com/luoshu/v1/internal/config/log"
	logInterface "github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// 全局日志实例，使用接口类型
	globalLogger logInterface.Logger
	// 用于保护全局日志实例的互斥锁
	mu sync.RWMutex
)

// Logger 是日志记录器的结构体，实现了log.Logger接口
type Logger struct {
	zapLogger *zap.Logger
	sugar     *zap.SugaredLogger
}

// 确保Logger实现了log.Logger接口
var _ logInterface.Logger = (*Logger)(nil)

func init() {
	ResetDefault()
}

// ResetDefault 重置全局日志记录器为默认配置
func ResetDefault() {
	logger, err := New(logconfig.New(nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize default logger: %v\n", err)
		return
	}
	SetLogger(logger)
}

// SetLogger 设置全局日志记录器
func SetLogger(logger logInterface.Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetLogger 获取全局日志记录器
func GetLogger() logInterface.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// New 根据配置创建日志记录器
func New(config *logconfig.Config) (*Logger, error) {
	level, err := parseLevel(config.GetLevel())
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core

	// 控制台输出
	if config.IsConsoleEnabled() {
		consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level))
	}

	// 文件输出（带lumberjack旋转）
	if config.GetFilePath() != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   config.GetFilePath(),
			MaxSize:    config.GetMaxSizeMB(),
			MaxBackups: config.GetMaxBackups(),
			MaxAge:     config.GetMaxAgeDays(),
			Compress:   config.IsCompressEnabled(),
		}
		fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), level))
	}

	if len(cores) == 0 {
		// 控制台与文件均未启用时退化为Nop，保持接口可用
		return &Logger{zapLogger: zap.NewNop(), sugar: zap.NewNop().Sugar()}, nil
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return &Logger{
		zapLogger: zapLogger,
		sugar:     zapLogger.Sugar(),
	}, nil
}

// parseLevel 将配置的级别字符串转换为zap级别
func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case string(logInterface.DebugLevel):
		return zapcore.DebugLevel, nil
	case string(logInterface.InfoLevel), "":
		return zapcore.InfoLevel, nil
	case string(logInterface.WarnLevel):
		return zapcore.WarnLevel, nil
	case string(logInterface.ErrorLevel):
		return zapcore.ErrorLevel, nil
	case string(logInterface.FatalLevel):
		return zapcore.FatalLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("未知的日志级别: %s", level)
	}
}

// Debug 记录调试级别的日志
func (l *Logger) Debug(msg string) { l.zapLogger.Debug(msg) }

// Debugf 记录格式化的调试级别日志
func (l *Logger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }

// Info 记录信息级别的日志
func (l *Logger) Info(msg string) { l.zapLogger.Info(msg) }

// Infof 记录格式化的信息级别日志
func (l *Logger) Infof(format string, args ...interface{}) { l.sugar.Infof(format, args...) }

// Warn 记录警告级别的日志
func (l *Logger) Warn(msg string) { l.zapLogger.Warn(msg) }

// Warnf 记录格式化的警告级别日志
func (l *Logger) Warnf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

// Error 记录错误级别的日志
func (l *Logger) Error(msg string) { l.zapLogger.Error(msg) }

// Errorf 记录格式化的错误级别日志
func (l *Logger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Fatal 记录致命级别的日志并终止进程
func (l *Logger) Fatal(msg string) { l.zapLogger.Fatal(msg) }

// Fatalf 记录格式化的致命级别日志并终止进程
func (l *Logger) Fatalf(format string, args ...interface{}) { l.sugar.Fatalf(format, args...) }

// With 附加结构化字段，返回新的日志记录器
func (l *Logger) With(args ...interface{}) logInterface.Logger {
	newSugar := l.sugar.With(args...)
	return &Logger{
		zapLogger: newSugar.Desugar(),
		sugar:     newSugar,
	}
}

// Sync 刷新缓冲的日志条目
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// GetZapLogger 返回底层zap实例
func (l *Logger) GetZapLogger() *zap.Logger {
	return l.zapLogger
}
