package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/omeyang/xpal/pkg/observability/xrotate"
	"github.com/omeyang/xpal/pkg/util/xsys"
)

// 输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ReplaceAttrFunc 属性替换函数，返回空 Key 的 Attr 表示移除该属性。
type ReplaceAttrFunc func(groups []string, a slog.Attr) slog.Attr

// Builder 日志配置构建器，一次性使用。
type Builder struct {
	output      io.Writer
	levelVar    *slog.LevelVar
	format      string
	addSource   bool
	replaceAttr ReplaceAttrFunc
	rotator     xrotate.Rotator
	onError     func(error)
	err         error
}

// New 创建构建器，默认输出到 stderr，Info 级别，text 格式。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   FormatText,
	}
}

// SetOutput 设置输出目标。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if b.err != nil {
		return b
	}
	if w == nil {
		b.err = fmt.Errorf("xlog: nil output")
		return b
	}
	b.output = w
	return b
}

// SetConsole 为 true 时输出到平台调试通道（见 xsys.Console）。
func (b *Builder) SetConsole(enable bool) *Builder {
	if b.err != nil || !enable {
		return b
	}
	b.output = xsys.Console()
	return b
}

// SetLevel 设置初始级别。
func (b *Builder) SetLevel(level Level) *Builder {
	if b.err != nil {
		return b
	}
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 以字符串设置初始级别，见 [ParseLevel]。
func (b *Builder) SetLevelString(s string) *Builder {
	if b.err != nil {
		return b
	}
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json。空字符串视为 text。
func (b *Builder) SetFormat(format string) *Builder {
	if b.err != nil {
		return b
	}
	switch normalized := strings.ToLower(strings.TrimSpace(format)); normalized {
	case "", FormatText:
		b.format = FormatText
	case FormatJSON:
		b.format = FormatJSON
	default:
		b.err = fmt.Errorf("xlog: unknown format %q", format)
	}
	return b
}

// SetAddSource 是否记录调用位置。
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetRotation 输出到轮转文件，cleanup 函数负责关闭它。
func (b *Builder) SetRotation(filename string, opts ...xrotate.Option) *Builder {
	if b.err != nil {
		return b
	}
	rotator, err := xrotate.NewLumberjack(filename, opts...)
	if err != nil {
		b.err = err
		return b
	}
	b.rotator = rotator
	b.output = rotator
	return b
}

// SetOnError 设置写日志失败时的回调。
//
// 回调同步执行，panic 被隔离；回调内再次触发的写失败不会重入回调。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// SetReplaceAttr 设置属性替换函数，用于重命名、脱敏或过滤字段。
func (b *Builder) SetReplaceAttr(fn ReplaceAttrFunc) *Builder {
	b.replaceAttr = fn
	return b
}

// Build 返回 Logger 和幂等的 cleanup 函数。
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		// 配置失败时轮转文件已打开，不能泄漏
		if b.rotator != nil {
			_ = b.rotator.Close()
		}
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:       b.levelVar,
		AddSource:   b.addSource,
		ReplaceAttr: b.replaceAttr,
	}
	var handler slog.Handler
	if b.format == FormatJSON {
		handler = slog.NewJSONHandler(b.output, opts)
	} else {
		handler = slog.NewTextHandler(b.output, opts)
	}

	logger := &xlogger{
		handler:    handler,
		levelVar:   b.levelVar,
		addSource:  b.addSource,
		onError:    b.onError,
		errorCount: new(atomic.Uint64),
		inOnError:  new(atomic.Bool),
	}

	rotator := b.rotator
	cleanup := sync.OnceValue(func() error {
		if rotator == nil {
			return nil
		}
		return rotator.Close()
	})
	return logger, cleanup, nil
}
