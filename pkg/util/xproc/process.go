package xproc

import (
	"os"
	"path/filepath"
	"sync"
)

// osExecutable 是 os.Executable 的包级变量，支持测试中 mock。
var osExecutable = os.Executable

// processName 首次调用时解析并缓存进程名称，测试中可重新赋值以清除缓存。
var processName = sync.OnceValue(resolveProcessName)

// ProcessID 返回当前进程 ID，用于在共享的日志文件中区分各次调用。
func ProcessID() int {
	return os.Getpid()
}

// ProcessName 返回当前进程的可执行文件名（不含目录）。
//
// 优先取 [os.Executable]，失败时回退到 os.Args[0]。两者都无效时返回空字符串，
// 空结果同样被缓存。
func ProcessName() string {
	return processName()
}

func resolveProcessName() string {
	if exe, err := osExecutable(); err == nil && exe != "" {
		if name := baseName(exe); name != "" {
			return name
		}
	}
	if len(os.Args) == 0 || os.Args[0] == "" {
		return ""
	}
	return baseName(os.Args[0])
}

// baseName 对 filepath.Base 的特殊结果（"."、".."、分隔符）返回空字符串。
func baseName(path string) string {
	switch name := filepath.Base(path); name {
	case ".", "..", string(filepath.Separator):
		return ""
	default:
		return name
	}
}
