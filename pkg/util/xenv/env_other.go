//go:build !(linux || darwin || freebsd || netbsd || openbsd || windows)

package xenv

import "os"

// 注意：替换以下变量的测试不可使用 t.Parallel()。
var (
	sysGetwd  = os.Getwd
	sysGetenv = os.LookupEnv
)

func getwd() (string, error) {
	return sysGetwd()
}

func lookupEnv(name string) (string, bool) {
	return sysGetenv(name)
}
