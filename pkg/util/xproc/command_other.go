//go:build !windows

package xproc

import (
	"fmt"
	"os/exec"

	"github.com/google/shlex"
)

// splitArgs 是 shlex.Split 的包级变量，支持测试中 mock。
var splitArgs = shlex.Split

func command(path, args string) (*exec.Cmd, error) {
	argv, err := splitArgs(args)
	if err != nil {
		return nil, fmt.Errorf("%w: parse args %q: %w", ErrInvalidArgument, args, err)
	}
	return exec.Command(path, argv...), nil
}
