package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI 运行 xpalctl 并返回退出码、stdout 和 stderr。
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"xpalctl"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_FileLifecycle(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	file := filepath.Join(sub, "a.txt")

	steps := []struct {
		name string
		args []string
		out  string
	}{
		{"创建目录", []string{"mkdir", sub}, ""},
		{"创建文件", []string{"touch", file}, ""},
		{"查询文件", []string{"stat", file}, "exists=true dir=false file=true\n"},
		{"查询目录", []string{"stat", sub}, "exists=true dir=true file=false\n"},
		{"列出目录", []string{"ls", sub}, "a.txt\n"},
		{"严格列出", []string{"ls", "--strict", sub}, "a.txt\n"},
		{"删除文件", []string{"rm", file}, ""},
		{"删除目录", []string{"rmdir", sub}, ""},
		{"查询已删除", []string{"stat", sub}, "exists=false dir=false file=false\n"},
	}
	for _, s := range steps {
		code, stdout, stderr := runCLI(t, s.args...)
		require.Equal(t, 0, code, "%s: stderr=%s", s.name, stderr)
		assert.Equal(t, s.out, stdout, s.name)
	}
}

func TestRun_ModTime(t *testing.T) {
	file := filepath.Join(t.TempDir(), "m")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	code, stdout, _ := runCLI(t, "mtime", file)
	require.Equal(t, 0, code)
	assert.NotEqual(t, "0\n", stdout)

	code, stdout, stderr := runCLI(t, "mtime", file+".missing")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "错误:")
}

func TestRun_OperationFailures(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{"文件已存在", []string{"touch", file}},
		{"删除非空目录", []string{"rmdir", dir}},
		{"删除不存在的文件", []string{"rm", filepath.Join(dir, "missing")}},
		{"严格列出不存在的目录", []string{"ls", "--strict", filepath.Join(dir, "missing")}},
		{"加载不存在的库", []string{"dlsym", filepath.Join(dir, "missing.so"), "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "错误:")
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"未知命令", []string{"frobnicate"}},
		{"未知 flag", []string{"--no-such-flag", "clock"}},
		{"缺少路径", []string{"stat"}},
		{"多余参数", []string{"cwd", "x"}},
		{"无效毫秒数", []string{"sleep", "abc"}},
		{"负毫秒数", []string{"sleep", "-1"}},
		{"空日志", []string{"log"}},
		{"缺少程序", []string{"exec"}},
		{"缺少符号", []string{"dlsym", "libc.so.6"}},
		{"ls 参数过多", []string{"ls", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, tt.args...)
			assert.Equal(t, 2, code)
		})
	}
}

func TestRun_ListMissingIsSilent(t *testing.T) {
	code, stdout, _ := runCLI(t, "ls", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
}

func TestRun_Clock(t *testing.T) {
	code, stdout, _ := runCLI(t, "clock")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "clocktime: ")
	assert.Contains(t, stdout, "frequency: ")
}

func TestRun_Sleep(t *testing.T) {
	code, stdout, _ := runCLI(t, "sleep", "5")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "slept: "), stdout)
}

func TestRun_Env(t *testing.T) {
	t.Setenv("XPALCTL_TEST_VALUE", "hello")

	code, stdout, _ := runCLI(t, "env", "XPALCTL_TEST_VALUE")
	require.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout)

	code, stdout, stderr := runCLI(t, "env", "XPALCTL_TEST_UNSET_VALUE")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr, "未设置的变量只通过退出码报告")
}

func TestRun_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	code, stdout, _ := runCLI(t, "cwd")
	require.Equal(t, 0, code)

	want, err := os.Stat(dir)
	require.NoError(t, err)
	got, err := os.Stat(strings.TrimSpace(stdout))
	require.NoError(t, err)
	assert.True(t, os.SameFile(want, got))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "here"), nil, 0o600))
	code, stdout, _ = runCLI(t, "ls")
	require.Equal(t, 0, code)
	assert.Equal(t, "here\n", stdout, "未指定目录时列出工作目录")
}

func TestRun_Exec(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("使用 POSIX shell")
	}

	code, stdout, stderr := runCLI(t, "exec", "sh", "-c", `"echo out; exit 3"`)
	assert.Equal(t, 3, code, "以子进程退出码退出")
	assert.Equal(t, "out\n", stdout)
	assert.Contains(t, stderr, "exit code: 3")

	code, _, stderr = runCLI(t, "exec", "sh", "-c", "true")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "exit code: 0")

	code, _, stderr = runCLI(t, "exec", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, code, "无法启动时按普通失败处理")
	assert.Contains(t, stderr, "错误:")
}

func TestRun_Stats(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "s")

	code, _, stderr := runCLI(t, "--stats", "touch", file)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "stats: operation=create_file status=ok count=1")

	code, _, stderr = runCLI(t, "--stats", "touch", file)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "stats: operation=create_file status=error count=1")
}

func TestRun_LogLevelFlag(t *testing.T) {
	file := filepath.Join(t.TempDir(), "l")

	code, _, stderr := runCLI(t, "--log-level", "debug", "--log-format", "json", "touch", file)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, `"operation":"create_file"`)
	assert.Contains(t, stderr, `"pid":`+strconv.Itoa(os.Getpid()), "日志记录带进程 ID")
	assert.Contains(t, stderr, `"process":"`, "日志记录带进程名")

	code, _, _ = runCLI(t, "--log-level", "verbose", "clock")
	assert.Equal(t, 1, code, "无效级别在初始化阶段失败")
}

func TestRun_HelpAndVersion(t *testing.T) {
	code, stdout, _ := runCLI(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "xpalctl")

	code, stdout, _ = runCLI(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, Version)
}

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, exitCode(nil, &stderr))
	assert.Equal(t, 7, exitCode(&exitError{code: 7}, &stderr))
	assert.Empty(t, stderr.String())

	assert.Equal(t, 2, exitCode(usagef("bad %s", "arg"), &stderr))
	assert.Contains(t, stderr.String(), "参数错误: bad arg")

	stderr.Reset()
	assert.Equal(t, 1, exitCode(os.ErrPermission, &stderr))
	assert.Contains(t, stderr.String(), "错误:")
}
