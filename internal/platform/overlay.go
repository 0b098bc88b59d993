package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// OverlayBinaryPrefix is the file name prefix of the bundled overlay executables
const OverlayBinaryPrefix = "overlay"

// Platform and architecture names used in overlay binary file names
var (
	platformNames = map[string]string{
		OSWindows: "win32",
	}
	archNames = map[string]string{
		"amd64": "x64",
		"386":   "ia32",
	}
)

// BinaryPlatform maps a GOOS value to the platform name used in binary file names
func BinaryPlatform(goos string) string {
	if name, ok := platformNames[goos]; ok {
		return name
	}
	return goos
}

// BinaryArch maps a GOARCH value to the architecture name used in binary file names
func BinaryArch(goarch string) string {
	if name, ok := archNames[goarch]; ok {
		return name
	}
	return goarch
}

// OverlayBinaryName returns the overlay executable name, e.g. overlay-darwin-arm64 or overlay-win32-x64
func OverlayBinaryName(goos, goarch string) string {
	return fmt.Sprintf("%s-%s-%s", OverlayBinaryPrefix, BinaryPlatform(goos), BinaryArch(goarch))
}

// FindOverlayBinary returns the path of the overlay binary for the current platform inside binDir
func FindOverlayBinary(binDir string) (string, error) {
	path := filepath.Join(binDir, OverlayBinaryName(runtime.GOOS, runtime.GOARCH))
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("overlay binary not found: %s", path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("overlay binary is a directory: %s", path)
	}
	return path, nil
}

// ExecutableDir returns the directory of the running executable, or the working directory if unknown
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
