// Package xmetrics 定义 macvendor 各组件共用的观测接口（metrics + tracing）。
//
// 组件只依赖 [Observer]/[Span]，默认是 [NoopObserver]；
// [NewOTelObserver] 基于 OpenTelemetry 实现。
//
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
//		Component: "xtable",
//		Operation: "update",
//	})
//	defer func() { span.End(xmetrics.Result{Err: err}) }()
//
// # 指标
//
//   - macvendor.operation.total：计数，属性 component / operation / status
//   - macvendor.operation.duration：耗时直方图（秒），属性同上
//
// status 取值 ok、not_found、error。查表未命中不是错误，用 [StatusNotFound] 区分。
package xmetrics
