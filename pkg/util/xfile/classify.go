package xfile

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// checkPath 校验所有操作共用的路径前置条件。
func checkPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if containsNullByte(path) {
		return fmt.Errorf("%q: %w", path, ErrNullByte)
	}
	return nil
}

// containsNullByte 检测路径是否包含空字节。
func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// wrapOp 将系统错误归类为包内哨兵错误，同时保留原始错误。
// 格式："<哨兵>: <op> <path>: <系统错误>"。
func wrapOp(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s %s: %w", classify(err), op, path, err)
}

// wrapAs 以指定哨兵包装系统错误，用于需要覆盖默认分类的场景。
func wrapAs(sentinel error, op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", sentinel, op, path, err)
}

// classify 将系统错误映射到错误分类。
//
// 平台特有的错误码先由 classifyPlatform 处理：syscall.Errno 会把 ENOTEMPTY
// （Windows 上为 ERROR_DIR_NOT_EMPTY）同时视为 fs.ErrExist，必须先于通用类别匹配。
func classify(err error) error {
	if sentinel := classifyPlatform(err); sentinel != nil {
		return sentinel
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	default:
		return ErrIO
	}
}
