package xfile

// Exists 报告 path 处是否存在任意类型的条目。
// 永不失败：无法判断时返回 false。
func Exists(path string) bool {
	if checkPath(path) != nil {
		return false
	}
	return exists(path)
}

// IsDir 报告 path 是否存在、是目录且不是符号链接。
func IsDir(path string) bool {
	if checkPath(path) != nil {
		return false
	}
	return isDir(path)
}

// IsFile 报告 path 是否存在、是普通文件且不是符号链接。
func IsFile(path string) bool {
	if checkPath(path) != nil {
		return false
	}
	return isFile(path)
}

// ModTime 返回 path 的最后修改时间（平台原生单位，见包文档）。
//
// 路径不存在时返回 0 和包装 [ErrNotFound] 的错误，而不是断言失败。
// 与查询函数一致，不跟随符号链接。
func ModTime(path string) (int64, error) {
	if err := checkPath(path); err != nil {
		return 0, err
	}
	return modTime(path)
}
