//go:build unix

package xproc

import (
	"os"
	"syscall"
)

// signalExitBase 被信号终止的子进程按 shell 约定报告 128+信号值。
const signalExitBase = 128

func exitCode(ps *os.ProcessState) int {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return signalExitBase + int(ws.Signal())
	}
	return ps.ExitCode()
}
