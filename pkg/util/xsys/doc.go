// Package xsys 提供与操作系统相关的底层原语：单调时钟、线程休眠和调试输出通道。
//
// # 功能概览
//
//   - [Clocktime]: 读取单调时钟的 tick 计数（起点任意，不受墙上时间调整影响）
//   - [ClockFrequency]: 返回同一时钟源每秒的 tick 数，进程生命周期内恒定
//   - [Elapsed]: 按 (t1 - t0) / ClockFrequency() 计算经过的秒数
//   - [Sleep]: 阻塞调用方至少指定的毫秒数，不可取消
//   - [Log]、[Console]: 平台调试/控制台输出通道
//
// # 平台支持
//
// 时钟在 Linux、macOS 和 BSD 上通过 golang.org/x/sys/unix 读取 CLOCK_MONOTONIC（纳秒），
// 在 Windows 上使用 QueryPerformanceCounter，其余平台回退到 Go 运行时的单调时钟。
// tick 的单位依平台而定，只能与同平台的 [ClockFrequency] 配合使用。
//
// 调试输出在 Windows 上写入 OutputDebugString，其余平台写入标准输出并立即刷新。
// 本层不添加级别、时间戳或换行。
package xsys
