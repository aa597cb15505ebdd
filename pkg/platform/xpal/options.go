package xpal

import (
	"github.com/omeyang/xpal/pkg/observability/xlog"
	"github.com/omeyang/xpal/pkg/observability/xmetrics"
)

// Component 日志和指标中的组件名
const Component = "xpal"

type instrumentOptions struct {
	logger   xlog.Logger
	observer xmetrics.Observer
}

// Option Instrument 选项
type Option func(*instrumentOptions)

// WithLogger 设置日志输出，默认使用 xlog.Default()。nil 被忽略。
func WithLogger(l xlog.Logger) Option {
	return func(o *instrumentOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver 设置观测器，默认不记录指标。nil 被忽略。
func WithObserver(obs xmetrics.Observer) Option {
	return func(o *instrumentOptions) {
		if obs != nil {
			o.observer = obs
		}
	}
}
