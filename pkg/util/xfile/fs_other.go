//go:build !unix && !windows

package xfile

import (
	"os"
)

// 无 x/sys 支持的平台（wasip1、js、plan9）退回 os 包实现，语义保持一致。

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	fi, err := os.Lstat(path)
	return err == nil && fi.Mode().IsDir()
}

func isFile(path string) bool {
	fi, err := os.Lstat(path)
	return err == nil && fi.Mode().IsRegular()
}

func modTime(path string) (int64, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return 0, wrapOp("lstat", path, err)
	}
	return fi.ModTime().Unix(), nil
}

func createFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePerm)
	if err != nil {
		return wrapOp("create", path, err)
	}
	return wrapOp("close", path, f.Close())
}

func deleteFile(path string) error {
	if fi, err := os.Lstat(path); err == nil && !fi.Mode().IsRegular() {
		return wrapAs(ErrNotFile, "remove", path, os.ErrInvalid)
	}
	return wrapOp("remove", path, os.Remove(path))
}

func createDir(path string) error {
	return wrapOp("mkdir", path, os.Mkdir(path, DefaultDirPerm))
}

func deleteDir(path string) error {
	if Exists(path) && !isDir(path) {
		return wrapAs(ErrNotDir, "remove", path, os.ErrInvalid)
	}
	return wrapOp("remove", path, os.Remove(path))
}

func classifyPlatform(error) error {
	return nil
}
