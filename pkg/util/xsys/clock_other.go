//go:build !(linux || darwin || freebsd || netbsd || openbsd || windows)

package xsys

func clocktime() int64 {
	return runtimeTicks()
}

func clockFrequency() int64 {
	return 1_000_000_000
}
