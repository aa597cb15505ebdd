package xsys

import "io"

// console 是平台调试输出通道的包级变量，测试中可替换为内存缓冲。
// 注意：替换后的测试不可使用 t.Parallel()。
var console io.Writer = newConsole()

// Log 将 msg 原样写入平台调试/控制台通道并立即刷新。
//
// 不添加级别、时间戳或换行；写入失败被静默忽略（调试通道不可用时没有更好的去处）。
// Windows 上写入 OutputDebugStringW，其余平台（包括 Android）写入标准输出，不经过 logcat。
func Log(msg string) {
	if msg == "" {
		return
	}
	_, _ = io.WriteString(console, msg)
}

// Console 返回平台调试/控制台通道的 [io.Writer] 视图。
//
// 每次 Write 都会立即刷新，适合作为 xlog 的输出目标（见 xlog.Builder.SetConsole）。
func Console() io.Writer {
	return console
}
