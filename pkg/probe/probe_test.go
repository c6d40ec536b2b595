// pkg/probe/probe_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Filesystem (t.TempDir), process PATH
// PURPOSE: Test command detection and scoped search-path widening

package probe_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/dostrap/pkg/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeExecutable drops an executable stub named cmd into dir.
func writeExecutable(t *testing.T, dir, cmd string) {
	t.Helper()
	path := filepath.Join(dir, cmd)
	err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755)
	require.NoError(t, err)
}

func TestProbeFindsCommandOnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable stubs are not portable to windows")
	}

	dir := t.TempDir()
	writeExecutable(t, dir, "dostrap-probe-stub")
	t.Setenv("PATH", dir)

	assert.True(t, probe.Probe("dostrap-probe-stub", nil))
}

func TestProbeMissingCommand(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	assert.False(t, probe.Probe("definitely-not-installed-anywhere", nil))
}

func TestProbeWidensSearchPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable stubs are not portable to windows")
	}

	onPath := t.TempDir()
	offPath := t.TempDir()
	writeExecutable(t, offPath, "dostrap-widened-stub")
	t.Setenv("PATH", onPath)

	// Not found without widening, found with it.
	assert.False(t, probe.Probe("dostrap-widened-stub", nil))
	assert.True(t, probe.Probe("dostrap-widened-stub", []string{offPath}))
}

func TestProbeRestoresPath(t *testing.T) {
	tests := []struct {
		name       string
		extraPaths []string
	}{
		{name: "no_extra_paths", extraPaths: nil},
		{name: "with_extra_paths", extraPaths: []string{"/nonexistent/bin", "/also/nonexistent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := t.TempDir()
			t.Setenv("PATH", original)

			probe.Probe("definitely-not-installed-anywhere", tt.extraPaths)

			assert.Equal(t, original, os.Getenv("PATH"))
		})
	}
}

func TestProbeRestoresPathAfterWidenedHit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable stubs are not portable to windows")
	}

	offPath := t.TempDir()
	writeExecutable(t, offPath, "dostrap-restore-stub")
	original := t.TempDir()
	t.Setenv("PATH", original)

	require.True(t, probe.Probe("dostrap-restore-stub", []string{offPath}))
	assert.Equal(t, original, os.Getenv("PATH"))
}
