//go:build windows

package xdylib

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

func open(path string) (Handle, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		if errors.Is(err, windows.ERROR_MOD_NOT_FOUND) || errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
			return 0, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		return 0, fmt.Errorf("%w: %s: %w", ErrLoadFailed, path, err)
	}
	return Handle(h), nil
}

func closeHandle(h Handle) error {
	if err := windows.FreeLibrary(windows.Handle(h)); err != nil {
		return fmt.Errorf("xdylib: FreeLibrary: %w", err)
	}
	return nil
}

func symbol(h Handle, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(h), name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, name, err)
	}
	return addr, nil
}
