package xdylib

import "os"

// writeEmpty 创建空文件（仅用于测试）。
func writeEmpty(path string) error {
	return os.WriteFile(path, nil, 0o600)
}
