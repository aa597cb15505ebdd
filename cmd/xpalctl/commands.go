package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xpal/pkg/util/xsys"
)

func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "clock",
			Usage:  "输出单调时钟读数和频率",
			Action: a.cmdClock,
		},
		{
			Name:      "sleep",
			Usage:     "休眠指定毫秒数并输出实际耗时",
			ArgsUsage: "<ms>",
			Action:    a.cmdSleep,
		},
		{
			Name:      "log",
			Usage:     "写入平台调试通道",
			ArgsUsage: "<message...>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "no-newline", Aliases: []string{"n"}, Usage: "不追加换行"},
			},
			Action: a.cmdLog,
		},
		{
			Name:      "stat",
			Usage:     "查询路径是否存在及类型",
			ArgsUsage: "<path>",
			Action:    a.cmdStat,
		},
		{
			Name:      "mtime",
			Usage:     "输出修改时间（平台原生单位）",
			ArgsUsage: "<path>",
			Action:    a.cmdModTime,
		},
		{
			Name:      "touch",
			Usage:     "创建空文件，已存在时失败",
			ArgsUsage: "<path>",
			Action:    a.pathAction(func(p string) error { return a.p.CreateFile(p) }),
		},
		{
			Name:      "rm",
			Usage:     "删除文件",
			ArgsUsage: "<path>",
			Action:    a.pathAction(func(p string) error { return a.p.DeleteFile(p) }),
		},
		{
			Name:      "mkdir",
			Usage:     "创建目录，父目录必须存在",
			ArgsUsage: "<path>",
			Action:    a.pathAction(func(p string) error { return a.p.CreateDir(p) }),
		},
		{
			Name:      "rmdir",
			Usage:     "删除空目录",
			ArgsUsage: "<path>",
			Action:    a.pathAction(func(p string) error { return a.p.DeleteDir(p) }),
		},
		{
			Name:      "ls",
			Usage:     "列出目录的直接子条目",
			ArgsUsage: "[dir]",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "strict", Aliases: []string{"s"}, Usage: "目录无法枚举时报错"},
			},
			Action: a.cmdList,
		},
		{
			Name:   "cwd",
			Usage:  "输出当前工作目录",
			Action: a.cmdWorkingDirectory,
		},
		{
			Name:      "env",
			Usage:     "输出环境变量的值，未设置时退出码为 1",
			ArgsUsage: "<name>",
			Action:    a.cmdEnv,
		},
		{
			Name:      "exec",
			Usage:     "执行程序，以其退出码退出",
			ArgsUsage: "<program> [args...]",
			// 程序参数原样透传，不解析为 xpalctl 的 flag
			SkipFlagParsing: true,
			Action:          a.cmdExec,
		},
		{
			Name:      "dlsym",
			Usage:     "加载动态库并解析导出符号地址",
			ArgsUsage: "<library> <symbol...>",
			Action:    a.cmdSymbol,
		},
	}
}

// exactArgs 校验位置参数个数。
func exactArgs(cmd *cli.Command, n int) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) != n {
		return nil, usagef("%s 需要 %d 个参数，实际 %d 个（用法: %s %s）",
			cmd.Name, n, len(args), cmd.Name, cmd.ArgsUsage)
	}
	return args, nil
}

func (a *app) println(args ...any) {
	_, _ = fmt.Fprintln(a.stdout, args...)
}

func (a *app) cmdClock(_ context.Context, cmd *cli.Command) error {
	if _, err := exactArgs(cmd, 0); err != nil {
		return err
	}
	a.println("clocktime:", a.p.Clocktime())
	a.println("frequency:", a.p.ClockFrequency())
	return nil
}

func (a *app) cmdSleep(_ context.Context, cmd *cli.Command) error {
	args, err := exactArgs(cmd, 1)
	if err != nil {
		return err
	}
	ms, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return usagef("无效的毫秒数 %q", args[0])
	}
	t0 := a.p.Clocktime()
	a.p.Sleep(uint32(ms))
	t1 := a.p.Clocktime()
	a.println(fmt.Sprintf("slept: %.3fs", xsys.Elapsed(t0, t1)))
	return nil
}

func (a *app) cmdLog(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return usagef("log 需要消息内容")
	}
	msg := strings.Join(cmd.Args().Slice(), " ")
	if !cmd.Bool("no-newline") {
		msg += "\n"
	}
	a.p.Log(msg)
	return nil
}

func (a *app) cmdStat(_ context.Context, cmd *cli.Command) error {
	args, err := exactArgs(cmd, 1)
	if err != nil {
		return err
	}
	path := args[0]
	a.println(fmt.Sprintf("exists=%t dir=%t file=%t",
		a.p.Exists(path), a.p.IsDir(path), a.p.IsFile(path)))
	return nil
}

func (a *app) cmdModTime(_ context.Context, cmd *cli.Command) error {
	args, err := exactArgs(cmd, 1)
	if err != nil {
		return err
	}
	mt, err := a.p.ModTime(args[0])
	if err != nil {
		return err
	}
	a.println(mt)
	return nil
}

// pathAction 包装只接受一个路径参数、无输出的修改操作。
func (a *app) pathAction(fn func(path string) error) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		args, err := exactArgs(cmd, 1)
		if err != nil {
			return err
		}
		return fn(args[0])
	}
}

func (a *app) cmdList(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 1 {
		return usagef("ls 最多接受 1 个参数")
	}
	dir := cmd.Args().First()
	if dir == "" {
		wd, err := a.p.WorkingDirectory()
		if err != nil {
			return err
		}
		dir = wd
	}

	var names []string
	if cmd.Bool("strict") {
		var err error
		if names, err = a.p.ReadDirNames(dir); err != nil {
			return err
		}
	} else {
		names = a.p.ListFiles(dir)
	}
	for _, name := range names {
		a.println(name)
	}
	return nil
}

func (a *app) cmdWorkingDirectory(_ context.Context, cmd *cli.Command) error {
	if _, err := exactArgs(cmd, 0); err != nil {
		return err
	}
	wd, err := a.p.WorkingDirectory()
	if err != nil {
		return err
	}
	a.println(wd)
	return nil
}

func (a *app) cmdEnv(_ context.Context, cmd *cli.Command) error {
	args, err := exactArgs(cmd, 1)
	if err != nil {
		return err
	}
	value, ok := a.p.LookupEnv(args[0])
	if !ok {
		return &exitError{code: 1}
	}
	a.println(value)
	return nil
}

func (a *app) cmdExec(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return usagef("exec 需要程序路径")
	}
	all := cmd.Args().Slice()
	code, err := a.p.Execute(all[0], strings.Join(all[1:], " "), a.stdout)
	if err != nil {
		return err
	}
	if a.cfg.Exec.PrintExitCode {
		_, _ = fmt.Fprintf(a.stderr, "exit code: %d\n", code)
	}
	if code != 0 {
		return &exitError{code: code}
	}
	return nil
}

func (a *app) cmdSymbol(_ context.Context, cmd *cli.Command) (err error) {
	if cmd.NArg() < 2 {
		return usagef("dlsym 需要库路径和至少一个符号名")
	}
	all := cmd.Args().Slice()
	h, err := a.p.OpenLibrary(all[0])
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.p.CloseLibrary(h))
	}()

	for _, name := range all[1:] {
		addr, err := a.p.LookupSymbol(h, name)
		if err != nil {
			return err
		}
		a.println(fmt.Sprintf("%s 0x%x", name, addr))
	}
	return nil
}
