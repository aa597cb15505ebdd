//go:build unix

package xfile

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// 系统调用函数变量，支持测试中 mock 替换以覆盖错误路径。
// 注意：mock 测试不可使用 t.Parallel()，因为替换包级变量会引发竞态。
var (
	sysAccess = unix.Access
	sysLstat  = unix.Lstat
	sysOpen   = unix.Open
	sysClose  = unix.Close
	sysUnlink = unix.Unlink
	sysMkdir  = unix.Mkdir
	sysRmdir  = unix.Rmdir
)

func exists(path string) bool {
	return sysAccess(path, unix.F_OK) == nil
}

// lstatType 返回 lstat 得到的文件类型位（S_IFMT 部分）。
func lstatType(path string) (uint32, bool) {
	var st unix.Stat_t
	if err := sysLstat(path, &st); err != nil {
		return 0, false
	}
	return uint32(st.Mode) & unix.S_IFMT, true
}

func isDir(path string) bool {
	typ, ok := lstatType(path)
	return ok && typ == unix.S_IFDIR
}

func isFile(path string) bool {
	typ, ok := lstatType(path)
	return ok && typ == unix.S_IFREG
}

func modTime(path string) (int64, error) {
	var st unix.Stat_t
	if err := sysLstat(path, &st); err != nil {
		return 0, wrapOp("lstat", path, err)
	}
	return int64(st.Mtim.Sec), nil
}

func createFile(path string) error {
	fd, err := sysOpen(path, unix.O_WRONLY|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, DefaultFilePerm)
	if err != nil {
		return wrapOp("create", path, err)
	}
	if err := sysClose(fd); err != nil {
		return wrapOp("close", path, err)
	}
	return nil
}

func deleteFile(path string) error {
	// unlink 会删除符号链接等非普通文件，先按 lstat 类型拒绝
	typ, ok := lstatType(path)
	if ok && typ != unix.S_IFREG {
		return wrapAs(ErrNotFile, "unlink", path, fs.ErrInvalid)
	}
	err := sysUnlink(path)
	if err == nil {
		return nil
	}
	// lstat 与 unlink 之间被替换为目录时：Linux 返回 EISDIR，macOS/BSD 返回 EPERM
	if isDir(path) {
		return wrapAs(ErrNotFile, "unlink", path, err)
	}
	return wrapOp("unlink", path, err)
}

func createDir(path string) error {
	return wrapOp("mkdir", path, sysMkdir(path, DefaultDirPerm))
}

func deleteDir(path string) error {
	err := sysRmdir(path)
	if err == nil {
		return nil
	}
	// POSIX 允许非空目录的 rmdir 返回 EEXIST（Solaris、AIX）
	if errors.Is(err, unix.EEXIST) {
		return wrapAs(ErrNotEmpty, "rmdir", path, err)
	}
	return wrapOp("rmdir", path, err)
}

// classifyPlatform 归类 unix 特有的错误码，无法归类时返回 nil。
func classifyPlatform(err error) error {
	switch {
	case errors.Is(err, unix.ENOTEMPTY):
		return ErrNotEmpty
	case errors.Is(err, unix.ENOTDIR):
		return ErrNotDir
	case errors.Is(err, unix.EISDIR):
		return ErrNotFile
	case errors.Is(err, unix.ENAMETOOLONG), errors.Is(err, unix.ELOOP):
		return ErrInvalidPath
	default:
		return nil
	}
}
