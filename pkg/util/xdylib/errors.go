package xdylib

import "errors"

var (
	// ErrInvalidArgument 表示路径或符号名为空，或包含空字节。
	ErrInvalidArgument = errors.New("xdylib: invalid argument")

	// ErrNotFound 表示动态库文件不存在。
	ErrNotFound = errors.New("xdylib: library not found")

	// ErrLoadFailed 表示系统加载器拒绝加载（格式错误、依赖缺失、架构不匹配等）。
	ErrLoadFailed = errors.New("xdylib: load failed")

	// ErrSymbolNotFound 表示库中不存在指定的导出符号。
	ErrSymbolNotFound = errors.New("xdylib: symbol not found")

	// ErrInvalidHandle 表示传入了零值句柄。
	ErrInvalidHandle = errors.New("xdylib: invalid handle")

	// ErrUnsupportedPlatform 表示当前平台不支持动态库加载。
	ErrUnsupportedPlatform = errors.New("xdylib: unsupported platform")
)
