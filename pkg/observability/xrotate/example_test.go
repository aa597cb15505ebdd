package xrotate_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/omeyang/xpal/pkg/observability/xrotate"
)

func ExampleNewLumberjack() {
	tmpDir, err := os.MkdirTemp("", "xrotate-example-*")
	if err != nil {
		fmt.Println("创建临时目录失败:", err)
		return
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	r, err := xrotate.NewLumberjack(filepath.Join(tmpDir, "logs", "xpalctl.log"),
		xrotate.WithMaxSize(10),
		xrotate.WithMaxBackups(3),
	)
	if err != nil {
		fmt.Println("创建失败:", err)
		return
	}
	defer func() { _ = r.Close() }()

	_, _ = r.Write([]byte("hello xrotate\n"))
	fmt.Println("写入成功")
	// Output: 写入成功
}
