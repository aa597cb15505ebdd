//go:build windows

package xsys

import (
	"io"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// x/sys/windows 未导出 OutputDebugStringW，与 QueryPerformance* 一样通过 LazyProc 调用。
var procOutputDebugStringW = modkernel32.NewProc("OutputDebugStringW")

// outputDebugString 是 OutputDebugStringW 调用的包级变量，测试中可替换以捕获输出。
// 注意：mock 测试不可使用 t.Parallel()。
var outputDebugString = func(p *uint16) {
	_, _, _ = procOutputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
}

// debugConsole 写入 OutputDebugStringW，可在调试器或 DebugView 中查看。
type debugConsole struct{}

func newConsole() io.Writer {
	return debugConsole{}
}

func (debugConsole) Write(p []byte) (int, error) {
	// OutputDebugStringW 以 NUL 结尾，内嵌的 NUL 会截断消息
	msg := strings.ReplaceAll(string(p), "\x00", "")
	ptr, err := windows.UTF16PtrFromString(msg)
	if err != nil {
		return 0, err
	}
	outputDebugString(ptr)
	return len(p), nil
}
