// Package xdylib 提供跨平台的动态库加载、卸载和符号解析。
//
// # 功能概览
//
//   - [Open]: 加载动态库，返回不透明的 [Handle]（失败时为零值）
//   - [Close]: 卸载由 [Open] 返回的句柄
//   - [Symbol]: 解析导出符号的地址（未找到时为 0）
//
// # 平台支持
//
// Linux、macOS 通过 github.com/ebitengine/purego 调用 dlopen/dlsym/dlclose，
// 无需 cgo；默认使用 RTLD_LAZY 延迟绑定。FreeBSD 上 purego 依赖 cgo，
// 以 CGO_ENABLED=0 构建时与其他平台一样返回 [ErrUnsupportedPlatform]。Windows 使用 LoadLibrary/GetProcAddress/FreeLibrary。
// 其他平台返回 [ErrUnsupportedPlatform]。
//
// 路径原样交给系统加载器，相对路径按平台默认搜索规则解析。
//
// # 所有权与并发
//
// 句柄从 [Open] 成功起归调用方所有，直到 [Close]。关闭后继续使用属于未定义行为。
// 句柄不做引用计数：同一路径多次 [Open] 的结果遵循平台加载器语义。
// 对同一句柄的并发 Open/Close/Symbol 需由调用方串行化。
//
// # 类型安全
//
// [Symbol] 只返回地址，不做任何类型检查，调用方负责转换为正确的函数或数据类型
// （例如配合 purego.RegisterFunc 使用）。
//
// # 错误处理
//
//	h, err := xdylib.Open("libplugin.so")
//	if errors.Is(err, xdylib.ErrNotFound) {
//	    // 库文件不存在
//	}
package xdylib
