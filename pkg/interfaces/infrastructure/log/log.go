// Package log 提供洛书系统的核心日志记录接口定义
//
// 📋 **日志系统核心接口 (Core Logging System Interface)**
//
// 本包定义了系统统一的日志接口，专注于：
// - 统一的日志记录接口
// - 结构化日志和上下文支持
// - 多级别日志的统一管理
//
// 🎯 **设计原则**
// - 统一接口：为所有模块提供统一的日志接口
// - 结构化：支持结构化日志和元数据附加
// - 高性能：优化日志处理性能
package log

import "go.uber.org/zap"

// Level 日志级别
type Level string

const (
	// DebugLevel 调试级别
	DebugLevel Level = "debug"
	// InfoLevel 信息级别
	InfoLevel Level = "info"
	// WarnLevel 警告级别
	WarnLevel Level = "warn"
	// ErrorLevel 错误级别
	ErrorLevel Level = "error"
	// FatalLevel 致命级别
	FatalLevel Level = "fatal"
)

// Logger 定义日志记录器接口
type Logger interface {
	// Debug 记录调试级别的日志
	Debug(msg string)
	// Debugf 记录格式化的调试级别日志
	Debugf(format string, args ...interface{})

	// Info 记录信息级别的日志
	Info(msg string)
	// Infof 记录格式化的信息级别日志
	Infof(format string, args ...interface{})

	// Warn 记录警告级别的日志
	Warn(msg string)
	// Warnf 记录格式化的警告级别日志
	Warnf(format string, args ...interface{})

	// Error 记录错误级别的日志
	Error(msg string)
	// Errorf 记录格式化的错误级别日志
	Errorf(format string, args ...interface{})

	// Fatal 记录致命级别的日志并终止进程
	Fatal(msg string)
	// Fatalf 记录格式化的致命级别日志并终止进程
	Fatalf(format string, args ...interface{})

	// With 附加结构化字段，返回新的日志记录器
	With(args ...interface{}) Logger

	// Sync 刷新缓冲的日志条目
	Sync() error

	// GetZapLogger 返回底层zap实例（供需要zap原生接口的组件使用）
	GetZapLogger() *zap.Logger
}
