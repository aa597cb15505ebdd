package xproc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strings"
)

// Execute 同步运行 path 指向的程序，阻塞直到子进程退出，返回其退出码。
//
// 子进程的标准输出和标准错误共用一个管道，按产生顺序追加写入 out；
// out 为 nil 时丢弃输出。args 的解析方式与平台相关：
//   - POSIX：按 shell 分词规则拆分（支持引号和反斜杠转义），但不经过 shell，
//     不做变量展开、通配或重定向
//   - Windows：原样作为命令行尾部，拼接在带引号的程序路径之后
//
// 退出码非零不视为错误。子进程被信号终止时返回 128+信号值（POSIX 约定）。
// 子进程无法启动时返回 -1 和包装 [ErrSpawnFailed] 的错误，
// 可执行文件不存在时错误同时包装 [ErrNotFound]。
//
// 调用无法取消，子进程的运行时长完全由子进程决定。
func Execute(path, args string, out io.Writer) (int, error) {
	if path == "" {
		return -1, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	if strings.ContainsRune(path, 0) {
		return -1, fmt.Errorf("%w: path contains null byte", ErrInvalidArgument)
	}

	cmd, err := command(path, args)
	if err != nil {
		return -1, err
	}
	if out != nil {
		// Stdout 与 Stderr 是同一个可比较的 Writer 时，os/exec 只创建一个管道
		cmd.Stdout = out
		cmd.Stderr = out
	}

	err = cmd.Run()
	if cmd.ProcessState == nil {
		return -1, spawnError(path, err)
	}

	code := exitCode(cmd.ProcessState)
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return code, fmt.Errorf("%w: %s: %w", ErrOutput, path, err)
	}
	return code, nil
}

// spawnError 包装启动失败，可执行文件缺失时额外标记 ErrNotFound。
func spawnError(path string, err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w: %s: %w", ErrSpawnFailed, ErrNotFound, path, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrSpawnFailed, path, err)
}
