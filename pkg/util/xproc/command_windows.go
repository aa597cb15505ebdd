//go:build windows

package xproc

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// command 构造 Windows 子进程。CreateProcess 接收完整命令行，
// args 不做任何拆分或转义，由调用方负责引号。
func command(path, args string) (*exec.Cmd, error) {
	cmd := exec.Command(path)
	cmdLine := windows.EscapeArg(path)
	if args != "" {
		cmdLine += " " + args
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: cmdLine}
	return cmd, nil
}
