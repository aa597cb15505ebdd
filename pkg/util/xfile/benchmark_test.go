package xfile

import (
	"path/filepath"
	"testing"
)

// =============================================================================
// 性能测试（Benchmark）
// =============================================================================

func BenchmarkExists(b *testing.B) {
	dir := b.TempDir()
	b.ReportAllocs()
	for b.Loop() {
		_ = Exists(dir)
	}
}

func BenchmarkIsFile(b *testing.B) {
	path := filepath.Join(b.TempDir(), "f")
	if err := CreateFile(path); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = IsFile(path)
	}
}

func BenchmarkListFiles(b *testing.B) {
	dir := b.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		if err := CreateFile(filepath.Join(dir, name)); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = ListFiles(dir)
	}
}

func BenchmarkSanitizePath(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = SanitizePath("/var/log/application/service/../module/app.log")
	}
}
