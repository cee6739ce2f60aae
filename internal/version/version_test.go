package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

// withBuild sets the linked-in values and the build info for one test.
func withBuild(t *testing.T, version, commit, date string, bi *debug.BuildInfo) {
	t.Helper()
	oldVersion, oldCommit, oldDate, oldRead := Version, Commit, Date, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, Date, readBuildInfo = oldVersion, oldCommit, oldDate, oldRead
	})
	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestShortCommit(t *testing.T) {
	tests := []struct {
		commit, want string
	}{
		{"0123456789abcdef", "01234567"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortCommit(tt.commit); got != tt.want {
			t.Errorf("shortCommit(%q) = %q, want %q", tt.commit, got, tt.want)
		}
	}
}

func TestGetInfo(t *testing.T) {
	vcs := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2026-02-03T04:05:06Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name                  string
		version, commit, date string
		bi                    *debug.BuildInfo
		want                  Info
	}{
		{
			name:    "no build info",
			version: "dev", commit: unknown, date: unknown,
			want: Info{Version: "dev", Commit: unknown, Date: unknown},
		},
		{
			name:    "filled from build info",
			version: "dev", commit: unknown, date: unknown,
			bi:   vcs,
			want: Info{Version: "v1.2.3", Commit: "fedcba9876543210", Date: "2026-02-03T04:05:06Z", Modified: true},
		},
		{
			name:    "ldflags win",
			version: "v2.0.0", commit: "0123456789abcdef", date: "2026-01-01T00:00:00Z",
			bi:   vcs,
			want: Info{Version: "v2.0.0", Commit: "0123456789abcdef", Date: "2026-01-01T00:00:00Z", Modified: true},
		},
		{
			name:    "devel module version",
			version: "dev", commit: unknown, date: unknown,
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{Version: "dev", Commit: unknown, Date: unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.commit, tt.date, tt.bi)
			got := GetInfo()
			got.GoVersion, got.Platform = "", ""
			if got != tt.want {
				t.Errorf("GetInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	withBuild(t, "dev", unknown, unknown, nil)
	if got := String(); !strings.HasPrefix(got, "tonal version dev (") {
		t.Errorf("String() = %q", got)
	}

	withBuild(t, "v1.0.0", "0123456789abcdef", "2026-01-01T00:00:00Z", &debug.BuildInfo{
		Settings: []debug.BuildSetting{{Key: "vcs.modified", Value: "true"}},
	})
	got := String()
	if !strings.Contains(got, "commit: 01234567-dirty,") || !strings.Contains(got, "built: 2026-01-01T00:00:00Z") {
		t.Errorf("String() = %q, want short dirty commit and date", got)
	}
}
