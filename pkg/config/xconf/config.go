package xconf

import "github.com/knadh/koanf/v2"

// Format 配置格式
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 已加载的配置。
type Config interface {
	// Client 返回底层 koanf 实例。
	Client() *koanf.Koanf

	// Unmarshal 将 path 下的配置解码到 target，path 为空时解码全部。
	Unmarshal(path string, target any) error

	// Reload 重新读取配置文件，并发安全。
	Reload() error

	// Path 配置文件路径，字节数据创建时为空。
	Path() string

	// Format 配置格式。
	Format() Format
}

// Option 加载选项
type Option func(*options)

type options struct {
	delim string
	tag   string
}

func defaultOptions() *options {
	return &options{delim: ".", tag: "koanf"}
}

// WithDelim 设置键分隔符，默认 "."。
func WithDelim(delim string) Option {
	return func(o *options) {
		if delim != "" {
			o.delim = delim
		}
	}
}

// WithTag 设置 Unmarshal 使用的结构体标签，默认 "koanf"。
func WithTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.tag = tag
		}
	}
}
