// Package xmetrics 提供统一的观测抽象：一次操作对应一个 [Span]，
// 结束时按结果记录追踪和指标。
//
// [NoopObserver] 什么都不做；[NewOTelObserver] 基于 OpenTelemetry，
// 每个 Span 对应一个 trace span，并记录两项指标：
//
//   - xpal.operation.total（计数，属性 component/operation/status）
//   - xpal.operation.duration（直方图，单位秒，属性同上）
//
// 使用方式：
//
//	ctx, span := xmetrics.Start(ctx, observer, xmetrics.SpanOptions{
//		Component: "xpal",
//		Operation: "execute_process",
//	})
//	code, err := run()
//	span.End(xmetrics.Result{Err: err, Attrs: []xmetrics.Attr{xmetrics.Int("exit_code", code)}})
package xmetrics
