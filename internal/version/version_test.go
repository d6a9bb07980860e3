package version

import (
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "unstamped",
			info: Info{Version: "dev", Commit: unknown, Date: unknown, GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "evoke version dev (go1.25.1, linux/amd64)",
		},
		{
			name: "release",
			info: Info{Version: "1.2.0", Commit: "0123456789abcdef", Date: "2026-01-02T03:04:05Z", GoVersion: "go1.25.1", Platform: "darwin/arm64"},
			want: "evoke version 1.2.0 (commit: 01234567, built: 2026-01-02T03:04:05Z, go1.25.1, darwin/arm64)",
		},
		{
			name: "modified short commit",
			info: Info{Version: "dev", Commit: "abc", Date: "2026-01-02", Modified: true, GoVersion: "go1.25.1", Platform: "linux/arm64"},
			want: "evoke version dev (commit: abc-dirty, built: 2026-01-02, go1.25.1, linux/arm64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version == "" {
		t.Error("Version is empty")
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q", info.Platform)
	}
	if !strings.HasPrefix(String(), "evoke version ") {
		t.Errorf("String() = %q", String())
	}
}
