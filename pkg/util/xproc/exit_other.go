//go:build !unix

package xproc

import "os"

func exitCode(ps *os.ProcessState) int {
	return ps.ExitCode()
}
