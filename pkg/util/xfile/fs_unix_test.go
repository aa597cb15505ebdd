//go:build unix

package xfile

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// 注意：mock 测试不可使用 t.Parallel()，因为替换包级变量会引发竞态。

func TestModTimeLstatError(t *testing.T) {
	orig := sysLstat
	t.Cleanup(func() { sysLstat = orig })
	sysLstat = func(string, *unix.Stat_t) error { return unix.EIO }

	_, err := ModTime("/any")
	require.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, unix.EIO, "应保留原始系统错误")
}

func TestCreateFileCloseError(t *testing.T) {
	origOpen, origClose := sysOpen, sysClose
	t.Cleanup(func() { sysOpen, sysClose = origOpen, origClose })
	sysOpen = func(string, int, uint32) (int, error) { return 42, nil }
	sysClose = func(int) error { return unix.EBADF }

	err := CreateFile("/any")
	require.ErrorIs(t, err, ErrIO)
	assert.Contains(t, err.Error(), "close")
}

func TestCreateFilePermissionDenied(t *testing.T) {
	orig := sysOpen
	t.Cleanup(func() { sysOpen = orig })
	sysOpen = func(string, int, uint32) (int, error) { return -1, unix.EACCES }

	assert.ErrorIs(t, CreateFile("/any"), ErrPermission)
}

func TestDeleteFileOnDirReportsNotFile(t *testing.T) {
	// macOS/BSD 对目录 unlink 返回 EPERM
	orig := sysUnlink
	t.Cleanup(func() { sysUnlink = orig })
	sysUnlink = func(string) error { return unix.EPERM }

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	assert.ErrorIs(t, DeleteFile(dir), ErrNotFile)
	assert.ErrorIs(t, DeleteFile(file), ErrPermission)
}

func TestDeleteDirEEXIST(t *testing.T) {
	orig := sysRmdir
	t.Cleanup(func() { sysRmdir = orig })
	sysRmdir = func(string) error { return unix.EEXIST }

	assert.ErrorIs(t, DeleteDir("/any"), ErrNotEmpty)
}

func TestExistsAccessError(t *testing.T) {
	orig := sysAccess
	t.Cleanup(func() { sysAccess = orig })
	sysAccess = func(string, uint32) error { return unix.EACCES }

	assert.False(t, Exists(t.TempDir()))
}

func TestClassifyUnix(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "ENOENT", err: unix.ENOENT, want: ErrNotFound},
		{name: "EEXIST", err: unix.EEXIST, want: ErrAlreadyExists},
		{name: "EACCES", err: unix.EACCES, want: ErrPermission},
		{name: "EPERM", err: unix.EPERM, want: ErrPermission},
		{name: "ENOTEMPTY优先于ErrExist", err: unix.ENOTEMPTY, want: ErrNotEmpty},
		{name: "ENOTDIR", err: unix.ENOTDIR, want: ErrNotDir},
		{name: "EISDIR", err: unix.EISDIR, want: ErrNotFile},
		{name: "ENAMETOOLONG", err: unix.ENAMETOOLONG, want: ErrInvalidPath},
		{name: "ELOOP", err: unix.ELOOP, want: ErrInvalidPath},
		{name: "EIO", err: unix.EIO, want: ErrIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestDeleteFileRejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, nil, 0o600))

	tests := []struct {
		name   string
		target string
	}{
		{"指向文件", target},
		{"指向目录", dir},
		{"悬空链接", filepath.Join(dir, "missing")},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := filepath.Join(dir, "link"+strconv.Itoa(i))
			require.NoError(t, os.Symlink(tt.target, link))
			require.False(t, IsFile(link))

			assert.ErrorIs(t, DeleteFile(link), ErrNotFile)
			_, err := os.Lstat(link)
			assert.NoError(t, err, "链接不应被删除")
		})
	}
	assert.True(t, IsFile(target), "链接目标不受影响")
}
