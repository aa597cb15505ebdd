package xfile

import (
	"errors"
	"os"
	"path/filepath"
)

// EnsureDir 确保文件 filename 的父目录存在，缺失的各级目录逐层用 [CreateDir] 创建。
//
// 已存在的目录（包括指向目录的符号链接）不会报错，也不会修改其权限。
// 路径中某一级被非目录条目占用时返回错误。
//
// 本函数不会拒绝 ".." 路径段；不可信输入应先经 [SanitizePath] 校验。
func EnsureDir(filename string) error {
	if err := checkPath(filename); err != nil {
		return err
	}
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	return ensureDirChain(dir)
}

func ensureDirChain(dir string) error {
	if isDirOrLinkToDir(dir) {
		return nil
	}
	if parent := filepath.Dir(dir); parent != dir {
		if err := ensureDirChain(parent); err != nil {
			return err
		}
	}
	if err := CreateDir(dir); err != nil {
		// 并发创建或指向目录的符号链接
		if errors.Is(err, ErrAlreadyExists) && isDirOrLinkToDir(dir) {
			return nil
		}
		return err
	}
	return nil
}

// isDirOrLinkToDir 与 IsDir 不同，跟随符号链接。
// 父目录链上常见符号链接（如 macOS 的 /var -> /private/var），不能因此拒绝。
func isDirOrLinkToDir(dir string) bool {
	if IsDir(dir) {
		return true
	}
	fi, err := os.Stat(dir)
	return err == nil && fi.IsDir()
}
