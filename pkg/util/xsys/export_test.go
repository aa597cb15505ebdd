package xsys

import "io"

// SetConsoleForTest 替换调试输出通道（仅用于测试），返回恢复函数。
func SetConsoleForTest(w io.Writer) func() {
	old := console
	console = w
	return func() { console = old }
}
