// Package xrotate 提供按大小轮转的日志文件输出。
//
// [Rotator] 是带 Rotate 方法的 io.WriteCloser，可直接作为 xlog 的输出目标。
// 当前唯一实现 [NewLumberjack] 基于 gopkg.in/natefinch/lumberjack.v2。
//
// 文件名先经 xfile.SanitizePath 校验（拒绝相对路径穿越和目录路径），
// 缺失的父目录由 xfile.EnsureDir 逐级创建。
package xrotate
