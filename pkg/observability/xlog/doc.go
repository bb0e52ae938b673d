// Package xlog 基于 log/slog 的结构化日志。
//
// # 创建 Logger
//
// 使用 Builder（第一个配置错误在 Build 时返回）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString(cfg.Log.Level).
//		SetFormat(cfg.Log.Format).
//		SetRotation(cfg.Log.File).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// 组件在未注入 logger 时使用 [Discard]。
//
// # 级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)，[ParseLevel] 从字符串解析。
// 派生 logger（[Logger.With]）与父级共享级别，SetLevel 对两者同时生效。
//
// # 属性
//
// 通用：[Err]、[Duration]、[Count]、[Component]、[Operation]。
// 领域：[OUI]、[MAC]、[Vendor]、[Path]、[URL]、[Attempt]、[StatusCode]、[Size]、[Digest]。
package xlog
