// Package xfile 提供跨平台的文件系统查询、变更和目录枚举。
//
// # 功能概览
//
// 查询（永不失败，无法 stat 时返回 false）：
//
//   - [Exists]: 路径处存在任意类型的条目
//   - [IsDir]: 路径是目录，且不是符号链接
//   - [IsFile]: 路径是普通文件，且不是符号链接
//   - [ModTime]: 最后修改时间；路径不存在时返回 [ErrNotFound]
//
// 变更（单层、非递归，每个操作对应一次系统调用）：
//
//   - [CreateFile]: 新建空文件，已存在则失败
//   - [DeleteFile]: 删除普通文件
//   - [CreateDir]: 以默认权限新建目录，不创建父目录
//   - [DeleteDir]: 删除空目录
//
// 枚举：
//
//   - [ListFiles]: 直接子条目名称，不含 "." 和 ".."；无法打开时返回空切片
//   - [ReadDirNames]: 同上，但返回可区分的错误
//   - [Entries]: 惰性、一次性的迭代器视图
//
// # 符号链接
//
// 符号链接既不是文件也不是目录：[IsFile] 和 [IsDir] 对其都返回 false，
// 调用方因此看到一个无别名的文件系统树。[Exists] 按系统 access 语义跟随链接，
// 悬空链接视为不存在。
//
// # 修改时间单位
//
// [ModTime] 返回平台原生的整数时间：POSIX 为 Unix 纪元以来的秒数（st_mtime），
// Windows 为 FILETIME（1601 年以来的 100ns 间隔数）。仅适合同平台内比较。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断，原始系统错误保留在错误链中：
//
//	if err := xfile.CreateFile(p); errors.Is(err, xfile.ErrAlreadyExists) {
//	    // 文件已存在
//	}
//
// # 并发
//
// 本包没有内部状态。对同一路径的并发变更，结果由操作系统决定；
// "先查询再变更"的组合不具备原子性。
//
// # 辅助函数
//
// [SanitizePath] 和 [EnsureDir] 供日志轮转等上层组件使用，不属于单层操作契约。
package xfile
