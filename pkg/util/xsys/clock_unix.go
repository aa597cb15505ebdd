//go:build linux || darwin || freebsd || netbsd || openbsd

package xsys

import "golang.org/x/sys/unix"

// clockGettime 是 unix.ClockGettime 的包级变量，支持测试中 mock 替换以覆盖错误路径。
// 注意：mock 测试不可使用 t.Parallel()，因为替换包级变量会引发竞态。
var clockGettime = unix.ClockGettime

// nanosPerSecond CLOCK_MONOTONIC 读数统一换算为纳秒。
const nanosPerSecond = int64(1_000_000_000)

func clocktime() int64 {
	var ts unix.Timespec
	if err := clockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// CLOCK_MONOTONIC 在这些平台上总是可用，失败时退回运行时单调时钟，单位一致（纳秒）
		return runtimeTicks()
	}
	return ts.Nano()
}

func clockFrequency() int64 {
	return nanosPerSecond
}
