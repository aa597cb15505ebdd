// xpalctl 是平台抽象层的命令行前端，每个子命令对应一个平台操作。
//
// 用法:
//
//	xpalctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件路径，yaml 或 json（环境变量 XPALCTL_CONFIG）
//	-l, --log-level   日志级别，覆盖配置文件（环境变量 XPALCTL_LOG_LEVEL）
//	--log-format      日志格式 text|json，覆盖配置文件（环境变量 XPALCTL_LOG_FORMAT）
//	--stats           结束时向 stderr 输出各操作的计数
//
// 退出码:
//
//	0: 成功
//	1: 操作失败
//	2: 参数错误（缺少参数、未知命令、无效 flag）
//	exec 命令以子进程的退出码退出。
//
// 示例:
//
//	xpalctl clock
//	xpalctl sleep 250
//	xpalctl touch /tmp/a && xpalctl stat /tmp/a
//	xpalctl ls --strict /var/log
//	xpalctl exec /bin/sh -c '"exit 3"'
//	xpalctl dlsym libc.so.6 getpid strlen
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return newApp(stdout, stderr).run(ctx, args)
}

// exitCode 把命令错误映射为进程退出码。
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		_, _ = fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	_, _ = fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}
