package platform

import "runtime"

// Platform identifies the OS and architecture the binary runs on.
type Platform struct {
	OS   string
	Arch string
}

// Detect returns the current platform.
func Detect() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}
