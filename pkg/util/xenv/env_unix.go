//go:build linux || darwin || freebsd || netbsd || openbsd

package xenv

import "golang.org/x/sys/unix"

// 注意：替换以下变量的测试不可使用 t.Parallel()。
var (
	sysGetwd  = unix.Getwd
	sysGetenv = unix.Getenv
)

func getwd() (string, error) {
	return sysGetwd()
}

func lookupEnv(name string) (string, bool) {
	return sysGetenv(name)
}
