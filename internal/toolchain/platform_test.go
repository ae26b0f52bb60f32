package toolchain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlatform_Executable(t *testing.T) {
	require.Equal(t, "target/app", Platform{GOOS: "linux"}.Executable("target/app"))
	require.Equal(t, "target/app", Platform{GOOS: "darwin"}.Executable("target/app"))
	require.Equal(t, "target/app.exe", Platform{GOOS: "windows"}.Executable("target/app"))
	require.Equal(t, "target/app.EXE", Platform{GOOS: "windows"}.Executable("target/app.EXE"))
}

func TestPlatform_Invocation(t *testing.T) {
	tests := []struct {
		goos     string
		input    string
		expected string
	}{
		{"linux", "target/lion_compiled", "./target/lion_compiled"},
		{"linux", "./target/lion_compiled", "./target/lion_compiled"},
		{"linux", "/opt/build/lion_compiled", "/opt/build/lion_compiled"},
		{"linux", "../build/lion_compiled", "../build/lion_compiled"},
		{"windows", "target/lion_compiled.exe", `.\target\lion_compiled.exe`},
		{"windows", "C:/build/lion_compiled.exe", `C:\build\lion_compiled.exe`},
		{"windows", "../build/app.exe", `..\build\app.exe`},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, Platform{GOOS: tt.goos}.Invocation(tt.input))
		})
	}
}

func TestHostPlatform(t *testing.T) {
	require.NotEmpty(t, HostPlatform().GOOS)
}
