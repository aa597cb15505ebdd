// Package xlog 基于 log/slog 的结构化日志。
//
// # 创建 Logger
//
// 使用 Builder（first-error-wins：第一个配置错误之后的 Set 调用被忽略，
// 错误在 [Builder.Build] 时返回）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xpalctl.log").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// 输出目标三选一，后设置的生效：[Builder.SetOutput]（任意 io.Writer）、
// [Builder.SetRotation]（xrotate 轮转文件）、[Builder.SetConsole]（xsys 平台调试通道，
// Windows 上即 OutputDebugString）。
//
// # 全局 Logger
//
// [Default] 惰性创建 stderr/Info/text 的 Logger；[SetDefault] 替换它。
// [Debug]、[Info]、[Warn]、[Error] 使用全局 Logger。
//
// # 级别
//
// [Level] 与 slog.Level 数值一致，实现 encoding.TextMarshaler，可直接出现在配置结构体中。
// Build 返回的 [LoggerWithLevel] 支持运行时调整级别，派生 Logger 共享同一级别。
//
// # 属性
//
// [Err]、[Duration]、[Component]、[Operation]、[Path]、[ExitCode]、[Count] 使用统一的键名。
package xlog
