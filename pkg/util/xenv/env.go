package xenv

import (
	"fmt"
	"strings"
)

// WorkingDirectory 返回进程当前工作目录的绝对路径。
func WorkingDirectory() (string, error) {
	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkingDirectory, err)
	}
	return wd, nil
}

// Getenv 返回环境变量 name 的值，未设置时返回空字符串。
// 需要区分"未设置"和"设置为空"时使用 [LookupEnv]。
func Getenv(name string) string {
	v, _ := LookupEnv(name)
	return v
}

// LookupEnv 返回环境变量 name 的值及其是否已设置。
func LookupEnv(name string) (string, bool) {
	if !validName(name) {
		return "", false
	}
	return lookupEnv(name)
}

// validName 空名称、含 '=' 或空字节的名称不可能出现在环境块中。
func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "=\x00")
}
