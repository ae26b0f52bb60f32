package toolchain

import (
	"runtime"
	"strings"
)

// Platform describes how compiled artifacts are named and invoked on a
// host OS. Every compiled-language recipe goes through it.
type Platform struct {
	GOOS string
}

// HostPlatform returns the Platform of the running binary.
func HostPlatform() Platform {
	return Platform{GOOS: runtime.GOOS}
}

// IsWindows returns true if the platform is Windows.
func (p Platform) IsWindows() bool {
	return p.GOOS == "windows"
}

// Executable appends the platform's executable suffix to path.
func (p Platform) Executable(path string) string {
	if p.IsWindows() && !strings.HasSuffix(strings.ToLower(path), ".exe") {
		return path + ".exe"
	}
	return path
}

// Invocation turns a slash-separated artifact path into the form a
// process can be started with: "./target/app" on POSIX and
// ".\target\app.exe" on Windows. Absolute paths are only re-separated.
func (p Platform) Invocation(path string) string {
	if p.IsWindows() {
		native := strings.ReplaceAll(path, "/", `\`)
		if isWindowsAbs(native) || strings.HasPrefix(native, `.\`) || strings.HasPrefix(native, `..\`) {
			return native
		}
		return `.\` + native
	}

	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		return path
	}
	return "./" + path
}

func isWindowsAbs(path string) bool {
	if strings.HasPrefix(path, `\`) {
		return true
	}
	return len(path) >= 2 && path[1] == ':'
}
