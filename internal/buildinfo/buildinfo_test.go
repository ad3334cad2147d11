package buildinfo

import (
	"strings"
	"testing"
)

func stamp(t *testing.T, version, commit string) {
	t.Helper()
	v, c := Version, Commit
	t.Cleanup(func() { Version, Commit = v, c })
	Version, Commit = version, commit
}

func TestShort(t *testing.T) {
	cases := []struct {
		version, commit, want string
	}{
		{"dev", "unknown", "dev"},
		{"v1.2.0", "abc", "v1.2.0"},
		{"dev", "0123456789abcdef", "0123456789ab"},
		{"", "abc", "abc"},
	}
	for _, tc := range cases {
		stamp(t, tc.version, tc.commit)
		if got := Short(); got != tc.want {
			t.Fatalf("Short(%q, %q) = %q, want %q", tc.version, tc.commit, got, tc.want)
		}
	}
}

func TestLong(t *testing.T) {
	stamp(t, "v0.3.1", "deadbeef")
	got := Long()
	if !strings.HasPrefix(got, "voxport v0.3.1 (commit deadbeef") {
		t.Fatalf("Long() = %q", got)
	}
}
