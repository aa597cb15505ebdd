//go:build windows

package xfile

import (
	"errors"
	"io/fs"
	"unsafe"

	"golang.org/x/sys/windows"
)

// attributes 返回 GetFileAttributesW 的结果；路径不存在或无法查询时 ok 为 false。
func attributes(path string) (uint32, bool) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil || attrs == windows.INVALID_FILE_ATTRIBUTES {
		return 0, false
	}
	return attrs, true
}

func exists(path string) bool {
	_, ok := attributes(path)
	return ok
}

// isReparse 报告条目是否是重解析点（符号链接、目录联接等），这类条目不计为文件或目录。
func isReparse(attrs uint32) bool {
	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0
}

func isDir(path string) bool {
	attrs, ok := attributes(path)
	return ok && attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 && !isReparse(attrs)
}

func isFile(path string) bool {
	attrs, ok := attributes(path)
	return ok &&
		attrs&windows.FILE_ATTRIBUTE_DIRECTORY == 0 &&
		attrs&windows.FILE_ATTRIBUTE_DEVICE == 0 &&
		!isReparse(attrs)
}

// modTime 返回原始 FILETIME（1601-01-01 起的 100ns 间隔数）。
func modTime(path string) (int64, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, wrapAs(ErrInvalidPath, "GetFileAttributesEx", path, err)
	}
	var data windows.Win32FileAttributeData
	if err := windows.GetFileAttributesEx(p, windows.GetFileExInfoStandard, (*byte)(unsafe.Pointer(&data))); err != nil {
		return 0, wrapOp("GetFileAttributesEx", path, err)
	}
	ft := data.LastWriteTime
	return int64(uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)), nil
}

func createFile(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return wrapAs(ErrInvalidPath, "CreateFile", path, err)
	}
	h, err := windows.CreateFile(p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0,
		nil,
		windows.CREATE_NEW,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		// 目标是已存在的目录时 CreateFile 返回 ERROR_ACCESS_DENIED
		if isDir(path) {
			return wrapAs(ErrAlreadyExists, "CreateFile", path, err)
		}
		return wrapOp("CreateFile", path, err)
	}
	if err := windows.CloseHandle(h); err != nil {
		return wrapOp("CloseHandle", path, err)
	}
	return nil
}

func deleteFile(path string) error {
	// DeleteFile 会删除文件符号链接，先按属性拒绝非普通文件
	if exists(path) && !isFile(path) {
		return wrapAs(ErrNotFile, "DeleteFile", path, fs.ErrInvalid)
	}
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return wrapAs(ErrInvalidPath, "DeleteFile", path, err)
	}
	err = windows.DeleteFile(p)
	if err == nil {
		return nil
	}
	// 对目录调用 DeleteFile 返回 ERROR_ACCESS_DENIED，与真正的权限问题区分开
	if isDir(path) {
		return wrapAs(ErrNotFile, "DeleteFile", path, err)
	}
	return wrapOp("DeleteFile", path, err)
}

func createDir(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return wrapAs(ErrInvalidPath, "CreateDirectory", path, err)
	}
	return wrapOp("CreateDirectory", path, windows.CreateDirectory(p, nil))
}

func deleteDir(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return wrapAs(ErrInvalidPath, "RemoveDirectory", path, err)
	}
	return wrapOp("RemoveDirectory", path, windows.RemoveDirectory(p))
}

// classifyPlatform 归类 Windows 特有的错误码，无法归类时返回 nil。
func classifyPlatform(err error) error {
	switch {
	case errors.Is(err, windows.ERROR_DIR_NOT_EMPTY):
		return ErrNotEmpty
	case errors.Is(err, windows.ERROR_DIRECTORY):
		return ErrNotDir
	case errors.Is(err, windows.ERROR_INVALID_NAME), errors.Is(err, windows.ERROR_FILENAME_EXCED_RANGE):
		return ErrInvalidPath
	default:
		return nil
	}
}
