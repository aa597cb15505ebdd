package xproc

import "errors"

var (
	// ErrInvalidArgument 表示可执行文件路径为空或参数无法解析（如引号不配对）。
	ErrInvalidArgument = errors.New("xproc: invalid argument")

	// ErrSpawnFailed 表示子进程未能启动。此时 Execute 返回的退出码为 -1。
	ErrSpawnFailed = errors.New("xproc: spawn failed")

	// ErrNotFound 表示可执行文件不存在，总是与 [ErrSpawnFailed] 一起出现。
	ErrNotFound = errors.New("xproc: executable not found")

	// ErrOutput 表示子进程已运行结束，但向输出目标写入失败。
	ErrOutput = errors.New("xproc: write output failed")
)
