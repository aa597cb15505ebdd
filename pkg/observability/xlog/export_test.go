package xlog

// ErrorCount 返回 logger 的内部写失败计数（仅用于测试）。
func ErrorCount(l Logger) uint64 {
	if xl, ok := l.(*xlogger); ok {
		return xl.errorCount.Load()
	}
	return 0
}
