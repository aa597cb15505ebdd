package xfile

import (
	"iter"
	"os"
)

// entriesBatch Entries 每批读取的条目数。
const entriesBatch = 64

// ListFiles 返回 path 下的直接子条目名称（文件和目录），不含 "." 和 ".."。
//
// 顺序为操作系统的枚举顺序，不保证排序。path 无法作为目录打开时返回空切片，
// 不区分"空目录"和"无法打开"；需要区分时使用 [ReadDirNames]。
// 结果是调用时刻的快照，枚举期间的并发修改由平台决定是否可见。
func ListFiles(path string) []string {
	names, err := ReadDirNames(path)
	if err != nil || names == nil {
		return []string{}
	}
	return names
}

// ReadDirNames 与 [ListFiles] 相同，但在无法枚举时返回分类后的错误
// （如 [ErrNotFound]、[ErrNotDir]、[ErrPermission]）。
func ReadDirNames(path string) ([]string, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapOp("opendir", path, err)
	}
	defer func() { _ = f.Close() }()

	// Readdirnames 已跳过 "." 和 ".."，并保持系统枚举顺序
	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, wrapOp("readdir", path, err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Entries 返回 path 子条目名称的惰性迭代器。
//
// 目录在首次迭代时才打开，按批读取；迭代器只能消费一次，再次 range 不产生任何元素。
// 无法打开或读取出错时提前结束，不报告错误。迭代器不可并发使用。
func Entries(path string) iter.Seq[string] {
	consumed := false
	return func(yield func(string) bool) {
		if consumed {
			return
		}
		consumed = true
		if checkPath(path) != nil {
			return
		}
		f, err := os.Open(path)
		if err != nil {
			return
		}
		defer func() { _ = f.Close() }()

		for {
			names, err := f.Readdirnames(entriesBatch)
			for _, name := range names {
				if !yield(name) {
					return
				}
			}
			if err != nil {
				// io.EOF 表示枚举结束，其他错误同样终止
				return
			}
		}
	}
}
