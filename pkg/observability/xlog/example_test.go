package xlog_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/omeyang/xpal/pkg/observability/xlog"
)

func ExampleNew() {
	logger, cleanup, err := xlog.New().
		SetOutput(os.Stdout).
		SetLevelString("debug").
		SetReplaceAttr(func(_ []string, a slog.Attr) slog.Attr {
			// 去掉时间，保证输出稳定
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}).
		Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	defer func() { _ = cleanup() }()

	logger.With(xlog.Component("xfile")).Debug(context.Background(), "created",
		xlog.Operation("create_file"), xlog.Path("/tmp/a"))
	// Output: level=DEBUG msg=created component=xfile operation=create_file path=/tmp/a
}

func ExampleParseLevel() {
	l, err := xlog.ParseLevel("warning")
	fmt.Println(l, err)
	// Output: WARN <nil>
}
