// xlog.go 定义日志接口：Logger、Leveler、LoggerWithLevel
//
// 约定：
//   - 所有方法接受 context，调用方在阻塞操作中持有的 ctx 原样传入
//   - 只接受 slog.Attr，避免隐式 key-value
//   - 级别可在运行时调整（CLI 的 --log-level 覆盖配置文件）
package xlog

import (
	"context"
	"log/slog"
)

// Logger 日志接口
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带固定属性的派生 Logger，派生 logger 与父级共享级别
	With(attrs ...slog.Attr) Logger
}

// Leveler 级别控制接口
type Leveler interface {
	SetLevel(level Level)
	GetLevel() Level
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合接口：Logger + Leveler
//
// Build 返回此接口。
type LoggerWithLevel interface {
	Logger
	Leveler
}
