package xpal

import (
	"io"

	"github.com/omeyang/xpal/pkg/util/xdylib"
)

//go:generate mockgen -destination=xpalmock/platform_mock.go -package=xpalmock github.com/omeyang/xpal/pkg/platform/xpal Platform

// Clock 单调计时与休眠
type Clock interface {
	// Clocktime 返回单调时钟读数，单位为 1/ClockFrequency 秒。
	Clocktime() int64
	// ClockFrequency 返回每秒的计时单位数，恒为正。
	ClockFrequency() int64
	// Sleep 挂起当前 goroutine 至少 ms 毫秒。
	Sleep(ms uint32)
}

// Libraries 动态库加载与符号解析
type Libraries interface {
	OpenLibrary(path string) (xdylib.Handle, error)
	CloseLibrary(h xdylib.Handle) error
	LookupSymbol(h xdylib.Handle, name string) (uintptr, error)
}

// Console 平台调试输出
type Console interface {
	Log(msg string)
}

// FileSystem 文件系统查询、修改与枚举。查询不会失败。
type FileSystem interface {
	Exists(path string) bool
	IsDir(path string) bool
	IsFile(path string) bool
	ModTime(path string) (int64, error)

	CreateFile(path string) error
	DeleteFile(path string) error
	CreateDir(path string) error
	DeleteDir(path string) error

	// ListFiles 无法枚举时返回空切片，ReadDirNames 返回分类后的错误。
	ListFiles(path string) []string
	ReadDirNames(path string) ([]string, error)
}

// Environment 进程环境的只读访问
type Environment interface {
	WorkingDirectory() (string, error)
	Getenv(name string) string
	LookupEnv(name string) (string, bool)
}

// Processes 同步执行外部程序
type Processes interface {
	Execute(path, args string, out io.Writer) (int, error)
}

// Platform 平台抽象层的完整能力集合。实现必须可并发使用。
type Platform interface {
	Clock
	Libraries
	Console
	FileSystem
	Environment
	Processes
}
