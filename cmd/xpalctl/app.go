package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/omeyang/xpal/pkg/observability/xmetrics"
	"github.com/omeyang/xpal/pkg/platform/xpal"
	"github.com/omeyang/xpal/pkg/util/xproc"
)

// app 保存一次运行期间的共享状态，由根命令的 Before/After 建立和释放。
type app struct {
	stdout io.Writer
	stderr io.Writer

	// newPlatform 返回被包装的平台实现，测试中替换为 mock。
	newPlatform func() xpal.Platform

	cfg      config
	p        xpal.Platform
	cleanup  func() error
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:      stdout,
		stderr:      stderr,
		newPlatform: xpal.Native,
	}
}

func (a *app) run(ctx context.Context, args []string) int {
	return exitCode(a.command().Run(ctx, args), a.stderr)
}

func (a *app) command() *cli.Command {
	cmd := &cli.Command{
		Name:      "xpalctl",
		Usage:     "平台抽象层命令行工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（yaml 或 json）",
				Sources: cli.EnvVars("XPALCTL_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "日志级别 debug|info|warn|error",
				Sources: cli.EnvVars("XPALCTL_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "日志格式 text|json",
				Sources: cli.EnvVars("XPALCTL_LOG_FORMAT"),
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "结束时输出各操作的计数",
			},
		},
		Commands: a.commands(),
		Before:   a.before,
		After:    a.after,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				return usagef("未知命令: %s", cmd.Args().First())
			}
			return cli.ShowAppHelp(cmd)
		},
		// 不允许 urfave/cli 直接 os.Exit，退出码统一由 exitCode 映射
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	setUsageErrorHandler(cmd)
	return cmd
}

// setUsageErrorHandler 把 flag 解析错误统一转换为 usageError。
func setUsageErrorHandler(cmd *cli.Command) {
	cmd.OnUsageError = func(_ context.Context, _ *cli.Command, err error, _ bool) error {
		return &usageError{msg: err.Error()}
	}
	for _, sub := range cmd.Commands {
		setUsageErrorHandler(sub)
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if format := cmd.String("log-format"); format != "" {
		cfg.Log.Format = format
	}
	a.cfg = cfg

	logger, cleanup, err := newLogger(cfg.Log, a.stderr)
	if err != nil {
		return ctx, fmt.Errorf("init logger: %w", err)
	}
	a.cleanup = cleanup

	var observer xmetrics.Observer = xmetrics.NoopObserver{}
	if cmd.Bool("stats") {
		a.reader = sdkmetric.NewManualReader()
		a.provider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(a.reader))
		observer, err = xmetrics.NewOTelObserver(xmetrics.WithMeterProvider(a.provider))
		if err != nil {
			return ctx, fmt.Errorf("init observer: %w", err)
		}
	}

	// 日志文件可能由多次调用共享，每条记录带上进程标识
	procLogger := logger.With(
		slog.Int("pid", xproc.ProcessID()),
		slog.String("process", xproc.ProcessName()),
	)
	a.p = xpal.Instrument(a.newPlatform(),
		xpal.WithLogger(procLogger),
		xpal.WithObserver(observer),
	)
	procLogger.Debug(ctx, "xpalctl started", slog.String("command", cmd.Args().First()))
	return ctx, nil
}

func (a *app) after(ctx context.Context, _ *cli.Command) error {
	var errs []error
	if a.reader != nil {
		errs = append(errs, writeStats(ctx, a.reader, a.stderr))
		errs = append(errs, a.provider.Shutdown(ctx))
	}
	if a.cleanup != nil {
		errs = append(errs, a.cleanup())
	}
	return errors.Join(errs...)
}
