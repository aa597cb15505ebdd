//go:build linux || darwin || freebsd || netbsd || openbsd

package xsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// 注意：此测试替换包级变量 clockGettime，不可使用 t.Parallel()。
func TestClocktime_FallbackOnError(t *testing.T) {
	orig := clockGettime
	defer func() { clockGettime = orig }()

	clockGettime = func(int32, *unix.Timespec) error { return unix.EINVAL }

	t0 := clocktime()
	t1 := clocktime()
	assert.GreaterOrEqual(t, t1, t0)
	assert.GreaterOrEqual(t, t0, int64(0))
}

func TestClockFrequency_Nanoseconds(t *testing.T) {
	assert.Equal(t, int64(1_000_000_000), clockFrequency())
}
