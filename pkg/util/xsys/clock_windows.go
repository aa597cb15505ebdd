//go:build windows

package xsys

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// x/sys/windows 未导出 QueryPerformance* 系列，按 x/sys 的惯例通过 LazyProc 调用。
var (
	modkernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	procQueryPerformanceCounter   = modkernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = modkernel32.NewProc("QueryPerformanceFrequency")
)

// qpcFrequency 缓存 QueryPerformanceFrequency 结果。系统启动后该值固定，只需查询一次。
var qpcFrequency = sync.OnceValue(func() int64 {
	var freq int64
	r, _, _ := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&freq)))
	if r == 0 || freq <= 0 {
		return 0
	}
	return freq
})

func clocktime() int64 {
	if qpcFrequency() == 0 {
		return runtimeTicks()
	}
	var now int64
	r, _, _ := procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&now)))
	if r == 0 {
		return runtimeTicks()
	}
	return now
}

func clockFrequency() int64 {
	if freq := qpcFrequency(); freq > 0 {
		return freq
	}
	// QPC 不可用时 clocktime 使用运行时纳秒读数
	return 1_000_000_000
}
