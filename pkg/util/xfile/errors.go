package xfile

import "errors"

var (
	// ErrEmptyPath 表示必需的路径参数为空。
	ErrEmptyPath = errors.New("xfile: path is required")

	// ErrNullByte 表示路径中包含空字节（\x00），内核会在空字节处截断路径，
	// 导致 Go 代码与操作系统看到的路径不一致。
	ErrNullByte = errors.New("xfile: path contains null byte")

	// ErrInvalidPath 表示路径格式无效（如目录路径、名称过长等）。
	ErrInvalidPath = errors.New("xfile: invalid path")

	// ErrPathTraversal 表示检测到相对路径穿越（".." 路径段）。
	ErrPathTraversal = errors.New("xfile: path traversal detected")

	// ErrNotFound 表示路径不存在（或父目录不存在）。
	ErrNotFound = errors.New("xfile: no such file or directory")

	// ErrAlreadyExists 表示创建的目标已存在。
	ErrAlreadyExists = errors.New("xfile: already exists")

	// ErrPermission 表示权限不足。
	ErrPermission = errors.New("xfile: permission denied")

	// ErrNotEmpty 表示删除的目录非空。
	ErrNotEmpty = errors.New("xfile: directory not empty")

	// ErrNotFile 表示目标不是普通文件（如对目录调用 DeleteFile）。
	ErrNotFile = errors.New("xfile: not a file")

	// ErrNotDir 表示目标不是目录（如对文件调用 DeleteDir）。
	ErrNotDir = errors.New("xfile: not a directory")

	// ErrIO 表示其他系统级 I/O 失败。
	ErrIO = errors.New("xfile: i/o failure")
)
