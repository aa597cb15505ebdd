//go:build !windows && !((darwin || linux || (freebsd && cgo)) && !android)

package xdylib

func open(string) (Handle, error) {
	return 0, ErrUnsupportedPlatform
}

func closeHandle(Handle) error {
	return ErrUnsupportedPlatform
}

func symbol(Handle, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}
