package xsys

import "time"

// processStart 是运行时单调时钟的参考点，供无原生时钟的平台和读取失败时回退使用。
var processStart = time.Now()

// runtimeTicks 返回自 processStart 以来经过的纳秒数（运行时单调读数）。
func runtimeTicks() int64 {
	return time.Since(processStart).Nanoseconds()
}

// Clocktime 返回单调时钟的当前 tick 计数。
//
// 起点任意，与墙上时间无对应关系；正常运行时不会回退。
// 计算间隔时应与 [ClockFrequency] 配合使用。
func Clocktime() int64 {
	return clocktime()
}

// ClockFrequency 返回 [Clocktime] 每秒的 tick 数。
// 进程生命周期内多次调用返回同一值。
func ClockFrequency() int64 {
	return clockFrequency()
}

// Elapsed 返回两次 [Clocktime] 读数之间经过的秒数。
func Elapsed(t0, t1 int64) float64 {
	return float64(t1-t0) / float64(ClockFrequency())
}

// Sleep 阻塞调用方至少 ms 毫秒。
//
// 调度器可能多睡，但不会少睡；调用无法提前中断。ms 为 0 时立即返回。
func Sleep(ms uint32) {
	if ms == 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
