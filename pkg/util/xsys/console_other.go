//go:build !windows

package xsys

import (
	"io"
	"os"
)

// stdoutConsole 写入标准输出，每次写入后 Sync。Android 也走这里，输出是否进入
// logcat 取决于宿主是否重定向了 stdout。
// 标准输出指向终端或管道时 Sync 返回 EINVAL，忽略即可。
type stdoutConsole struct {
	f *os.File
}

func newConsole() io.Writer {
	return stdoutConsole{f: os.Stdout}
}

func (c stdoutConsole) Write(p []byte) (int, error) {
	n, err := c.f.Write(p)
	_ = c.f.Sync()
	return n, err
}
