package xlog

import (
	"log/slog"
	"time"
)

// 标准属性键
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyPath      = "path"
	KeyExitCode  = "exit_code"
)

// Err 错误属性；err 为 nil 时返回空属性，slog 会忽略它。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 以可读形式（如 "1.5ms"）记录耗时。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 组件名
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 操作名
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Path 文件系统路径或库路径
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// ExitCode 子进程退出码
func ExitCode(code int) slog.Attr {
	return slog.Int(KeyExitCode, code)
}

// Count 计数
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}
