package version

import (
	"runtime/debug"
	"testing"
)

func TestHashFromSettings(t *testing.T) {
	cases := []struct {
		settings []debug.BuildSetting
		want     string
	}{
		{nil, ""},
		{[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}, "0123456"},
		{[]debug.BuildSetting{{Key: "vcs.modified", Value: "true"}, {Key: "vcs.revision", Value: "0123456789abcdef"}}, "0123456-dirty"},
		{[]debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}, {Key: "vcs.modified", Value: "false"}}, "abc"},
	}
	for _, c := range cases {
		if got := hashFromSettings(c.settings); got != c.want {
			t.Errorf("hashFromSettings(%v) = %q, want %q", c.settings, got, c.want)
		}
	}
}

func TestVersionOrHash(t *testing.T) {
	if got := versionOrHash("v1.2.0", "abc"); got != "v1.2.0" {
		t.Errorf("got %q", got)
	}
	if got := versionOrHash(" ", "abc"); got != "abc" {
		t.Errorf("got %q", got)
	}
}
