package xenv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingDirectory(t *testing.T) {
	wd, err := WorkingDirectory()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(wd), "应返回绝对路径: %s", wd)

	// os.Getwd 可能返回 $PWD 中的符号链接路径，按文件身份比较
	want, err := os.Getwd()
	require.NoError(t, err)
	assertSameDir(t, want, wd)
}

func assertSameDir(t *testing.T, want, got string) {
	t.Helper()
	wantInfo, err := os.Stat(want)
	require.NoError(t, err)
	gotInfo, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, os.SameFile(wantInfo, gotInfo), "%s 与 %s 不是同一目录", want, got)
}

func TestWorkingDirectoryFollowsChdir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	wd, err := WorkingDirectory()
	require.NoError(t, err)
	// macOS 的临时目录位于 /var -> /private/var 符号链接之下
	assertSameDir(t, dir, wd)
}

func TestWorkingDirectoryError(t *testing.T) {
	// 注意：替换包级变量，不可使用 t.Parallel()
	orig := sysGetwd
	t.Cleanup(func() { sysGetwd = orig })
	cause := errors.New("deleted")
	sysGetwd = func() (string, error) { return "", cause }

	wd, err := WorkingDirectory()
	require.ErrorIs(t, err, ErrWorkingDirectory)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, wd)
}

func TestLookupEnv(t *testing.T) {
	t.Setenv("XPAL_TEST_SET", "value")
	t.Setenv("XPAL_TEST_EMPTY", "")

	tests := []struct {
		name    string
		key     string
		want    string
		wantSet bool
	}{
		{name: "已设置", key: "XPAL_TEST_SET", want: "value", wantSet: true},
		{name: "设置为空", key: "XPAL_TEST_EMPTY", want: "", wantSet: true},
		{name: "未设置", key: "XPAL_TEST_UNSET_7f3a", want: "", wantSet: false},
		{name: "空名称", key: "", want: "", wantSet: false},
		{name: "包含等号", key: "XPAL_TEST_SET=value", want: "", wantSet: false},
		{name: "包含空字节", key: "XPAL_TEST_SET\x00", want: "", wantSet: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupEnv(tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSet, ok)
			assert.Equal(t, tt.want, Getenv(tt.key))
		})
	}
}

func TestGetenvSeesUpdates(t *testing.T) {
	t.Setenv("XPAL_TEST_DYNAMIC", "one")
	assert.Equal(t, "one", Getenv("XPAL_TEST_DYNAMIC"))

	t.Setenv("XPAL_TEST_DYNAMIC", "two")
	assert.Equal(t, "two", Getenv("XPAL_TEST_DYNAMIC"))
}
