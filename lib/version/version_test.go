// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

// withBuild overrides the injected variables for one test.
func withBuild(t *testing.T, version, commit, dirty, buildTime string) {
	t.Helper()
	saved := [4]string{Version, GitCommit, GitDirty, BuildTime}
	Version, GitCommit, GitDirty, BuildTime = version, commit, dirty, buildTime
	t.Cleanup(func() {
		Version, GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2], saved[3]
	})
}

func TestInfo(t *testing.T) {
	withBuild(t, "1.2.3", "abc1234", "false", "2026-02-10T12:00:00Z")

	if got, want := Info(), "1.2.3 (abc1234, 2026-02-10T12:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestInfo_Dirty(t *testing.T) {
	withBuild(t, "1.2.3", "abc1234", "true", "now")

	if got, want := Info(), "1.2.3 (abc1234-dirty, now)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestFull(t *testing.T) {
	withBuild(t, "1.2.3", "abc1234", "false", "now")

	full := Full()
	if !strings.HasPrefix(full, Info()+"\n") {
		t.Errorf("Full() = %q, want Info() on the first line", full)
	}
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("Full() = %q, missing Go version %s", full, runtime.Version())
	}
}

func TestShort(t *testing.T) {
	withBuild(t, "2.0.0", "abc", "false", "now")

	if got := Short(); got != "2.0.0" {
		t.Errorf("Short() = %q, want 2.0.0", got)
	}
}

func TestCurrent(t *testing.T) {
	withBuild(t, "2.0.0", "abc", "true", "now")

	build := Current()
	if build.Version != "2.0.0" || build.Commit != "abc" || !build.Dirty || build.BuildTime != "now" {
		t.Errorf("Current() = %+v", build)
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; build.Platform != want {
		t.Errorf("Platform = %q, want %q", build.Platform, want)
	}
}
