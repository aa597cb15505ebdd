package main

import (
	"fmt"
	"io"

	"github.com/omeyang/xpal/pkg/config/xconf"
	"github.com/omeyang/xpal/pkg/observability/xlog"
	"github.com/omeyang/xpal/pkg/observability/xrotate"
)

type config struct {
	Log  logConfig  `koanf:"log"`
	Exec execConfig `koanf:"exec"`
}

type logConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	Console    bool   `koanf:"console"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
}

type execConfig struct {
	PrintExitCode bool `koanf:"print_exit_code"`
}

func defaultConfig() config {
	return config{
		Log: logConfig{
			Level:      "warn",
			Format:     xlog.FormatText,
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Exec: execConfig{PrintExitCode: true},
	}
}

// loadConfig 读取 path 覆盖默认值，path 为空时只返回默认值。
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	c, err := xconf.New(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := c.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// newLogger 按配置构建日志：file 优先于 console，都未设置时写 fallback。
func newLogger(cfg logConfig, fallback io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(fallback).
		SetLevelString(cfg.Level).
		SetFormat(cfg.Format)
	switch {
	case cfg.File != "":
		b.SetRotation(cfg.File,
			xrotate.WithMaxSize(cfg.MaxSizeMB),
			xrotate.WithMaxBackups(cfg.MaxBackups),
		)
	case cfg.Console:
		b.SetConsole(true)
	}
	return b.Build()
}
