//go:build windows

package xenv

import "golang.org/x/sys/windows"

// 注意：替换以下变量的测试不可使用 t.Parallel()。
var (
	sysGetwd  = windows.Getwd
	sysGetenv = windows.Getenv
)

func getwd() (string, error) {
	return sysGetwd()
}

// lookupEnv Windows 环境变量名不区分大小写，由 GetEnvironmentVariableW 处理。
func lookupEnv(name string) (string, bool) {
	return sysGetenv(name)
}
