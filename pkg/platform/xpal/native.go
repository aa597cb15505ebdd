package xpal

import (
	"io"

	"github.com/omeyang/xpal/pkg/util/xdylib"
	"github.com/omeyang/xpal/pkg/util/xenv"
	"github.com/omeyang/xpal/pkg/util/xfile"
	"github.com/omeyang/xpal/pkg/util/xproc"
	"github.com/omeyang/xpal/pkg/util/xsys"
)

var _ Platform = native{}

// native 直接委托给 util 包，平台由构建目标决定。
type native struct{}

// Native 返回当前构建目标的平台实现。无状态，可任意复制。
func Native() Platform {
	return native{}
}

func (native) Clocktime() int64 {
	return xsys.Clocktime()
}

func (native) ClockFrequency() int64 {
	return xsys.ClockFrequency()
}

func (native) Sleep(ms uint32) {
	xsys.Sleep(ms)
}

func (native) OpenLibrary(path string) (xdylib.Handle, error) {
	return xdylib.Open(path)
}

func (native) CloseLibrary(h xdylib.Handle) error {
	return xdylib.Close(h)
}

func (native) LookupSymbol(h xdylib.Handle, name string) (uintptr, error) {
	return xdylib.Symbol(h, name)
}

func (native) Log(msg string) {
	xsys.Log(msg)
}

func (native) Exists(path string) bool {
	return xfile.Exists(path)
}

func (native) IsDir(path string) bool {
	return xfile.IsDir(path)
}

func (native) IsFile(path string) bool {
	return xfile.IsFile(path)
}

func (native) ModTime(path string) (int64, error) {
	return xfile.ModTime(path)
}

func (native) CreateFile(path string) error {
	return xfile.CreateFile(path)
}

func (native) DeleteFile(path string) error {
	return xfile.DeleteFile(path)
}

func (native) CreateDir(path string) error {
	return xfile.CreateDir(path)
}

func (native) DeleteDir(path string) error {
	return xfile.DeleteDir(path)
}

func (native) ListFiles(path string) []string {
	return xfile.ListFiles(path)
}

func (native) ReadDirNames(path string) ([]string, error) {
	return xfile.ReadDirNames(path)
}

func (native) WorkingDirectory() (string, error) {
	return xenv.WorkingDirectory()
}

func (native) Getenv(name string) string {
	return xenv.Getenv(name)
}

func (native) LookupEnv(name string) (string, bool) {
	return xenv.LookupEnv(name)
}

func (native) Execute(path, args string, out io.Writer) (int, error) {
	return xproc.Execute(path, args, out)
}
