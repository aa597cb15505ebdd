package xproc

import "sync"

// ResetProcessName 清除进程名称缓存，下次调用 ProcessName 时重新解析。
func ResetProcessName() {
	processName = sync.OnceValue(resolveProcessName)
}
