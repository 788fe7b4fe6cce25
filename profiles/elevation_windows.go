//go:build windows
// +build windows

package profiles

import "golang.org/x/sys/windows"

// Elevated reports whether the process token carries admin elevation.
func Elevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
