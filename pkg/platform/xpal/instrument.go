package xpal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/omeyang/xpal/pkg/observability/xlog"
	"github.com/omeyang/xpal/pkg/observability/xmetrics"
	"github.com/omeyang/xpal/pkg/util/xdylib"
)

// 操作名，与日志 operation 字段和指标 operation 属性一致
const (
	OpLibraryOpen   = "library_open"
	OpLibraryClose  = "library_close"
	OpLibrarySymbol = "library_symbol"
	OpCreateFile    = "create_file"
	OpDeleteFile    = "delete_file"
	OpCreateDir     = "create_directory"
	OpDeleteDir     = "delete_directory"
	OpExecute       = "execute_process"
)

// instrumented 只覆盖修改状态或触达外部的操作，查询直接由嵌入的 Platform 处理。
type instrumented struct {
	Platform
	logger   xlog.Logger
	observer xmetrics.Observer
}

// Instrument 包装 p：每次修改文件系统、加载/卸载/解析动态库或执行子进程时，
// 记录一条 Debug 日志（失败时为 Warn）并结束一个 xmetrics Span。
// 查询类操作和 Sleep、Log 不做记录。p 为 nil 时包装 [Native]。
func Instrument(p Platform, opts ...Option) Platform {
	if p == nil {
		p = Native()
	}
	o := &instrumentOptions{observer: xmetrics.NoopObserver{}}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	logger := o.logger
	if logger == nil {
		logger = xlog.Default()
	}
	return &instrumented{
		Platform: p,
		logger:   logger.With(xlog.Component(Component)),
		observer: o.observer,
	}
}

// observe 执行 fn 并记录结果。fn 返回的 attrs 追加到日志和 Span。
func (p *instrumented) observe(op, path string, fn func() ([]slog.Attr, error)) error {
	ctx, span := xmetrics.Start(context.Background(), p.observer, xmetrics.SpanOptions{
		Component: Component,
		Operation: op,
		Attrs:     []xmetrics.Attr{xmetrics.String(xlog.KeyPath, path)},
	})
	start := time.Now()
	extra, err := fn()
	elapsed := time.Since(start)

	spanAttrs := make([]xmetrics.Attr, 0, len(extra))
	for _, a := range extra {
		spanAttrs = append(spanAttrs, xmetrics.Attr{Key: a.Key, Value: a.Value.Any()})
	}
	span.End(xmetrics.Result{Err: err, Attrs: spanAttrs})

	attrs := append([]slog.Attr{
		xlog.Operation(op),
		xlog.Path(path),
		xlog.Duration(elapsed),
	}, extra...)
	if err != nil {
		p.logger.Warn(ctx, "platform operation failed", append(attrs, xlog.Err(err))...)
	} else {
		p.logger.Debug(ctx, "platform operation", attrs...)
	}
	return err
}

func (p *instrumented) OpenLibrary(path string) (xdylib.Handle, error) {
	var h xdylib.Handle
	err := p.observe(OpLibraryOpen, path, func() ([]slog.Attr, error) {
		var err error
		h, err = p.Platform.OpenLibrary(path)
		return nil, err
	})
	return h, err
}

func (p *instrumented) CloseLibrary(h xdylib.Handle) error {
	return p.observe(OpLibraryClose, "", func() ([]slog.Attr, error) {
		return nil, p.Platform.CloseLibrary(h)
	})
}

func (p *instrumented) LookupSymbol(h xdylib.Handle, name string) (uintptr, error) {
	var addr uintptr
	err := p.observe(OpLibrarySymbol, "", func() ([]slog.Attr, error) {
		var err error
		addr, err = p.Platform.LookupSymbol(h, name)
		return []slog.Attr{slog.String("symbol", name)}, err
	})
	return addr, err
}

func (p *instrumented) CreateFile(path string) error {
	return p.observe(OpCreateFile, path, func() ([]slog.Attr, error) {
		return nil, p.Platform.CreateFile(path)
	})
}

func (p *instrumented) DeleteFile(path string) error {
	return p.observe(OpDeleteFile, path, func() ([]slog.Attr, error) {
		return nil, p.Platform.DeleteFile(path)
	})
}

func (p *instrumented) CreateDir(path string) error {
	return p.observe(OpCreateDir, path, func() ([]slog.Attr, error) {
		return nil, p.Platform.CreateDir(path)
	})
}

func (p *instrumented) DeleteDir(path string) error {
	return p.observe(OpDeleteDir, path, func() ([]slog.Attr, error) {
		return nil, p.Platform.DeleteDir(path)
	})
}

func (p *instrumented) Execute(path, args string, out io.Writer) (int, error) {
	var code int
	err := p.observe(OpExecute, path, func() ([]slog.Attr, error) {
		var err error
		code, err = p.Platform.Execute(path, args, out)
		return []slog.Attr{xlog.ExitCode(code)}, err
	})
	return code, err
}
