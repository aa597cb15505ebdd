package xproc

import "testing"

func BenchmarkProcessID(b *testing.B) {
	for b.Loop() {
		_ = ProcessID()
	}
}

func BenchmarkProcessName(b *testing.B) {
	for b.Loop() {
		_ = ProcessName()
	}
}

// BenchmarkProcessName_ColdStart 每次迭代都重新解析，对照缓存命中的 BenchmarkProcessName。
func BenchmarkProcessName_ColdStart(b *testing.B) {
	for b.Loop() {
		ResetProcessName()
		_ = ProcessName()
	}
}

func BenchmarkCommand(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = command("/usr/bin/env", `-i "A=1 2" B='x y' tool --flag`)
	}
}
