package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// hasDotDotSegment 检测路径中是否包含 ".." 作为独立路径段。
// 同时将 '/' 和 '\' 视为分隔符，以检测 Windows 风格路径穿越（即使在 Linux 上）。
// 以 ".." 开头的合法文件名（如 "..config"）不会被误判。
func hasDotDotSegment(path string) bool {
	i := 0
	for i < len(path) {
		if path[i] == '/' || path[i] == '\\' {
			i++
			continue
		}
		j := i
		for j < len(path) && path[j] != '/' && path[j] != '\\' {
			j++
		}
		if j-i == 2 && path[i] == '.' && path[i+1] == '.' {
			return true
		}
		i = j
	}
	return false
}

// SanitizePath 对文件路径做格式检查和规范化。
//
//   - 拒绝空路径和包含空字节的路径
//   - 拒绝显式目录路径（尾随 "/" 或 "\"）
//   - 规范化（消除 "." 和冗余分隔符）
//   - 拒绝规范化后仍含 ".." 路径段的相对路径
//
// 绝对路径中的 ".." 由 filepath.Clean 正常解析（"/var/log/../etc" -> "/etc"）。
// 本函数只做格式净化，不限制目标目录。
func SanitizePath(filename string) (string, error) {
	if err := checkPath(filename); err != nil {
		return "", err
	}

	// 必须在 Clean 之前检查，Clean 会移除尾部分隔符
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("path is a directory: %w", ErrInvalidPath)
	}

	cleaned := filepath.Clean(filename)
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("path traversal in filename: %w", ErrPathTraversal)
	}

	base := filepath.Base(cleaned)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("no file name specified: %w", ErrInvalidPath)
	}
	return cleaned, nil
}
