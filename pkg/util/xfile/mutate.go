package xfile

// 默认权限，实际权限受 umask 影响。
const (
	// DefaultFilePerm CreateFile 使用的权限
	DefaultFilePerm = 0o644

	// DefaultDirPerm CreateDir 使用的权限
	DefaultDirPerm = 0o755
)

// CreateFile 在 path 处新建一个空的普通文件。
//
// 采用"新建，已存在即失败"语义：已存在返回 [ErrAlreadyExists]，
// 父目录不存在返回 [ErrNotFound]。
func CreateFile(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	return createFile(path)
}

// DeleteFile 删除 path 处的普通文件。
//
// 不存在返回 [ErrNotFound]；目标不是普通文件（目录、符号链接等）返回 [ErrNotFile]，
// 符号链接本身不会被删除。
func DeleteFile(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	return deleteFile(path)
}

// CreateDir 以默认权限在 path 处新建目录，不创建父目录。
//
// 已存在返回 [ErrAlreadyExists]，父目录不存在返回 [ErrNotFound]。
func CreateDir(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	return createDir(path)
}

// DeleteDir 删除 path 处的空目录，不递归。
//
// 非空返回 [ErrNotEmpty]，不存在返回 [ErrNotFound]，目标不是目录返回 [ErrNotDir]。
func DeleteDir(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	return deleteDir(path)
}
