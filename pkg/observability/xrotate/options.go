package xrotate

import "fmt"

// 默认值面向命令行工具的本地日志，体量远小于服务端。
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 28
	DefaultCompress   = false
	DefaultLocalTime  = true
)

// 取值上限
const (
	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

type config struct {
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
	localTime  bool
}

func defaultConfig() config {
	return config{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		maxAgeDays: DefaultMaxAgeDays,
		compress:   DefaultCompress,
		localTime:  DefaultLocalTime,
	}
}

// Option 配置选项
type Option func(*config)

// WithMaxSize 单个文件的大小上限（MB）
func WithMaxSize(mb int) Option {
	return func(c *config) { c.maxSizeMB = mb }
}

// WithMaxBackups 保留的备份数量，0 表示只按天数清理
func WithMaxBackups(n int) Option {
	return func(c *config) { c.maxBackups = n }
}

// WithMaxAge 备份保留天数，0 表示只按数量清理
func WithMaxAge(days int) Option {
	return func(c *config) { c.maxAgeDays = days }
}

// WithCompress 是否 gzip 压缩备份
func WithCompress(compress bool) Option {
	return func(c *config) { c.compress = compress }
}

// WithLocalTime 备份文件名中的时间戳使用本地时间（否则 UTC）
func WithLocalTime(local bool) Option {
	return func(c *config) { c.localTime = local }
}

func (c *config) validate() error {
	if c.maxSizeMB <= 0 || c.maxSizeMB > maxSizeMB {
		return fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, c.maxSizeMB, maxSizeMB)
	}
	if c.maxBackups < 0 || c.maxBackups > maxBackups {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, c.maxBackups, maxBackups)
	}
	if c.maxAgeDays < 0 || c.maxAgeDays > maxAgeDays {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxAge, c.maxAgeDays, maxAgeDays)
	}
	if c.maxBackups == 0 && c.maxAgeDays == 0 {
		return ErrNoCleanupPolicy
	}
	return nil
}
