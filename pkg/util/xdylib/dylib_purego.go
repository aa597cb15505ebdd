//go:build (darwin || linux || (freebsd && cgo)) && !android

package xdylib

import (
	"fmt"
	"strings"

	"github.com/ebitengine/purego"

	"github.com/omeyang/xpal/pkg/util/xfile"
)

// 系统调用函数变量，支持测试中 mock 替换以覆盖错误路径。
// 注意：mock 测试不可使用 t.Parallel()，因为替换包级变量会引发竞态。
var (
	dlopen  = purego.Dlopen
	dlsym   = purego.Dlsym
	dlclose = purego.Dlclose
)

// openMode 延迟绑定，符号仅对本句柄可见。
const openMode = purego.RTLD_LAZY | purego.RTLD_LOCAL

func open(path string) (Handle, error) {
	h, err := dlopen(path, openMode)
	if err != nil {
		return 0, classifyOpenError(path, err)
	}
	return Handle(h), nil
}

func closeHandle(h Handle) error {
	if err := dlclose(uintptr(h)); err != nil {
		return fmt.Errorf("xdylib: dlclose: %w", err)
	}
	return nil
}

func symbol(h Handle, name string) (uintptr, error) {
	addr, err := dlsym(uintptr(h), name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, name, err)
	}
	return addr, nil
}

// classifyOpenError 区分"文件不存在"与"加载失败"。
//
// 含路径分隔符的参数由加载器直接按路径打开，可以通过文件查询判定；
// 裸库名走搜索路径，只能依据 dlerror 文本判断。
func classifyOpenError(path string, err error) error {
	if strings.ContainsRune(path, '/') && !xfile.Exists(path) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	msg := err.Error()
	if strings.Contains(msg, "No such file") || strings.Contains(msg, "not found") {
		return fmt.Errorf("%w: %s: %s", ErrNotFound, path, msg)
	}
	return fmt.Errorf("%w: %s: %s", ErrLoadFailed, path, msg)
}
