package xlog

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

var _ LoggerWithLevel = (*xlogger)(nil)

type xlogger struct {
	handler   slog.Handler
	levelVar  *slog.LevelVar
	addSource bool
	onError   func(error)

	// 以下字段在派生 logger 间共享
	errorCount *atomic.Uint64
	inOnError  *atomic.Bool
}

// logAt 写一条记录。skip 为 logAt 之上需要跳过的栈帧数，用于定位调用方。
//
//go:noinline
func (l *xlogger) logAt(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr, skip int) {
	if !l.handler.Enabled(ctx, level) {
		return
	}
	var pc uintptr
	if l.addSource {
		var pcs [1]uintptr
		// runtime.Callers、logAt 本身，再加上调用链中的中间帧
		runtime.Callers(2+skip, pcs[:])
		pc = pcs[0]
	}
	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)
	if err := l.handler.Handle(ctx, r); err != nil {
		l.handleError(err)
	}
}

func (l *xlogger) handleError(err error) {
	l.errorCount.Add(1)
	if l.onError == nil || !l.inOnError.CompareAndSwap(false, true) {
		return
	}
	defer l.inOnError.Store(false)
	defer func() {
		if recover() != nil {
			l.errorCount.Add(1)
		}
	}()
	l.onError(err)
}

func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logAt(ctx, slog.LevelDebug, msg, attrs, 1)
}

func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logAt(ctx, slog.LevelInfo, msg, attrs, 1)
}

func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logAt(ctx, slog.LevelWarn, msg, attrs, 1)
}

func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logAt(ctx, slog.LevelError, msg, attrs, 1)
}

func (l *xlogger) derive(h slog.Handler) *xlogger {
	c := *l
	c.handler = h
	return &c
}

func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return l.derive(l.handler.WithAttrs(attrs))
}

func (l *xlogger) WithGroup(name string) Logger {
	if name == "" {
		return l
	}
	return l.derive(l.handler.WithGroup(name))
}

func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	return l.handler.Enabled(ctx, slog.Level(level))
}
