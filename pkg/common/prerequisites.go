package common

import (
	"os"
	"os/exec"
)

// CheckExecutableExists checks if a command is available in the system PATH.
//
// Parameters:
//   - executableName: The name of the executable to check
//
// Returns:
//   - true if the executable exists and is accessible, false otherwise
func CheckExecutableExists(executableName string) bool {
	_, err := exec.LookPath(executableName)
	return err == nil
}

// CheckAppBundleExists checks if a macOS application bundle is installed at
// the given path (e.g. "/Applications/Ghostty.app").
//
// Returns:
//   - true if the path exists and is a directory, false otherwise
func CheckAppBundleExists(bundlePath string) bool {
	info, err := os.Stat(bundlePath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
