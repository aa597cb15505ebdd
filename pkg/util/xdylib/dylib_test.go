package xdylib_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xpal/pkg/util/xdylib"
)

// systemLibrary 返回当前平台上一定存在的系统库及其导出的符号。
func systemLibrary(t *testing.T) (path, sym string) {
	t.Helper()
	switch runtime.GOOS {
	case "linux":
		return "libc.so.6", "getpid"
	case "darwin":
		return "/usr/lib/libSystem.B.dylib", "getpid"
	case "freebsd":
		return "libc.so.7", "getpid"
	case "windows":
		return "kernel32.dll", "GetCurrentProcessId"
	default:
		t.Skipf("no known system library on %s", runtime.GOOS)
		return "", ""
	}
}

// openSystemLibrary 打开系统库，环境不支持时跳过（如 musl 发行版没有 libc.so.6）。
func openSystemLibrary(t *testing.T) (xdylib.Handle, string) {
	t.Helper()
	path, sym := systemLibrary(t)
	h, err := xdylib.Open(path)
	if err != nil {
		t.Skipf("system library %s not loadable here: %v", path, err)
	}
	t.Cleanup(func() {
		assert.NoError(t, xdylib.Close(h))
	})
	return h, sym
}

func TestOpen_NonexistentPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "libnothing.so")
	if runtime.GOOS == "windows" {
		path = filepath.Join(t.TempDir(), "missing", "nothing.dll")
	}

	h, err := xdylib.Open(path)
	require.Error(t, err)
	assert.False(t, h.IsValid(), "失败时应返回零值句柄")
	assert.Equal(t, xdylib.Handle(0), h)

	if runtime.GOOS == "linux" || runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		assert.ErrorIs(t, err, xdylib.ErrNotFound)
	}
}

func TestOpen_InvalidArgument(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"空路径", ""},
		{"空字节", "lib\x00c.so"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := xdylib.Open(tt.path)
			assert.ErrorIs(t, err, xdylib.ErrInvalidArgument)
			assert.False(t, h.IsValid())
		})
	}
}

func TestSymbol_Known(t *testing.T) {
	h, sym := openSystemLibrary(t)
	require.True(t, h.IsValid())

	addr, err := xdylib.Symbol(h, sym)
	require.NoError(t, err)
	assert.NotZero(t, addr)
}

func TestSymbol_Unknown(t *testing.T) {
	h, _ := openSystemLibrary(t)

	addr, err := xdylib.Symbol(h, "xpal_definitely_not_an_exported_symbol")
	assert.ErrorIs(t, err, xdylib.ErrSymbolNotFound)
	assert.Zero(t, addr, "未找到时应返回空地址")
}

func TestSymbol_InvalidArgs(t *testing.T) {
	addr, err := xdylib.Symbol(0, "getpid")
	assert.ErrorIs(t, err, xdylib.ErrInvalidHandle)
	assert.Zero(t, addr)

	h, _ := openSystemLibrary(t)
	_, err = xdylib.Symbol(h, "")
	assert.ErrorIs(t, err, xdylib.ErrInvalidArgument)
}

func TestClose_ZeroHandle(t *testing.T) {
	assert.ErrorIs(t, xdylib.Close(0), xdylib.ErrInvalidHandle)
}

func TestOpen_IndependentHandles(t *testing.T) {
	path, _ := systemLibrary(t)
	h1, err := xdylib.Open(path)
	if err != nil {
		t.Skipf("system library %s not loadable here: %v", path, err)
	}
	h2, err := xdylib.Open(path)
	require.NoError(t, err)

	// 两个句柄各自关闭，互不影响
	require.NoError(t, xdylib.Close(h1))
	require.NoError(t, xdylib.Close(h2))
}
