// Package util 提供与操作系统直接交互的底层子包。
//
// 子包列表：
//   - xsys: 单调时钟、休眠、平台调试输出通道
//   - xdylib: 动态库加载与符号解析（无 cgo）
//   - xfile: 文件系统查询、修改、目录枚举和路径处理
//   - xenv: 工作目录和环境变量
//   - xproc: 子进程执行，进程 ID 和名称
//
// 设计原则：
//   - 错误统一归类为包级哨兵错误，可用 errors.Is 判断
//   - 系统调用通过包级变量间接调用，便于测试覆盖错误路径
//   - 跨平台兼容，unix/windows 之外的平台退回标准库实现
package util
