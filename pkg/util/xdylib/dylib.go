package xdylib

import (
	"fmt"
	"strings"
)

// Handle 是已加载动态库的不透明句柄。零值表示"无效/未加载"。
type Handle uintptr

// IsValid 报告句柄是否非零。
func (h Handle) IsValid() bool {
	return h != 0
}

// Open 加载 path 处的动态库。
//
// 失败时返回零值 [Handle] 和错误：文件不存在包装 [ErrNotFound]，
// 加载器拒绝包装 [ErrLoadFailed]，平台不支持返回 [ErrUnsupportedPlatform]。
func Open(path string) (Handle, error) {
	if err := validateName("path", path); err != nil {
		return 0, err
	}
	return open(path)
}

// Close 卸载由 [Open] 返回的句柄。
//
// 零值句柄返回 [ErrInvalidHandle]；重复关闭或传入伪造句柄属于未定义行为。
func Close(h Handle) error {
	if !h.IsValid() {
		return ErrInvalidHandle
	}
	return closeHandle(h)
}

// Symbol 返回 h 中导出符号 name 的地址。
//
// 未找到时返回 0 和包装 [ErrSymbolNotFound] 的错误。地址不做类型检查。
func Symbol(h Handle, name string) (uintptr, error) {
	if !h.IsValid() {
		return 0, ErrInvalidHandle
	}
	if err := validateName("symbol", name); err != nil {
		return 0, err
	}
	return symbol(h, name)
}

// validateName 拒绝空值和包含空字节的参数。
// C 加载器在空字节处截断字符串，会导致 Go 侧与加载器看到的名称不一致。
func validateName(kind, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required: %w", kind, ErrInvalidArgument)
	}
	if strings.ContainsRune(v, 0) {
		return fmt.Errorf("%s contains null byte: %w", kind, ErrInvalidArgument)
	}
	return nil
}
