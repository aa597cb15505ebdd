package xrotate

import "io"

var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器。所有实现都必须并发安全。
//
// Close 之后 Write、Rotate 以及再次 Close 都返回 [ErrClosed]。
type Rotator interface {
	// Write 写入数据，达到大小上限时自动轮转。
	Write(p []byte) (n int, err error)

	// Close 关闭当前文件。
	Close() error

	// Rotate 立即轮转：当前文件改名为带时间戳的备份，再打开新文件。
	Rotate() error
}
