//go:build !windows

package util

func IsRunFromGUI() bool {
	// On non-Windows, always return false.
	// Only Windows users tend to double-click the binary; on Linux the
	// tool is expected to be run from a shell.
	return false
}
