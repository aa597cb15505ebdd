package xenv

import "errors"

// ErrWorkingDirectory 表示无法获取当前工作目录（如目录已被删除）。
var ErrWorkingDirectory = errors.New("xenv: working directory unavailable")
