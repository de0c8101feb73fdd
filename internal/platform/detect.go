// Package platform reports the host operating system for the few
// places the sync engine has to behave differently across them, such
// as locating a preset tool's virtualenv directory.
package platform

import "runtime"

// OS represents a supported operating system.
type OS string

const (
	MacOS   OS = "darwin"
	Linux   OS = "linux"
	Windows OS = "windows"
	Unknown OS = "unknown"
)

// Detect returns the current operating system.
func Detect() OS {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Unknown
	}
}

// IsMacOS returns true if running on macOS.
func IsMacOS() bool {
	return Detect() == MacOS
}

// IsLinux returns true if running on Linux.
func IsLinux() bool {
	return Detect() == Linux
}

// IsWindows returns true if running on Windows.
func IsWindows() bool {
	return Detect() == Windows
}

// IsSupported returns true if the current OS is one repoctl actively
// supports.
func IsSupported() bool {
	switch Detect() {
	case MacOS, Linux, Windows:
		return true
	default:
		return false
	}
}
