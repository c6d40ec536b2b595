// Package probe answers the single question "is this command on the
// search path?", optionally widening the search with known alternate
// install locations before giving up.
package probe

import (
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dostrap/pkg/logging"
	"github.com/pterm/pterm"
)

// Probe reports whether detectCommand resolves on the current PATH.
// When the first lookup misses and extraPaths is non-empty, the lookup is
// retried with extraPaths prepended to PATH; the original PATH is restored
// before returning, whatever happens. Absence is a normal false, never an
// error.
func Probe(detectCommand string, extraPaths []string) bool {
	logger := logging.GetLogger("probe")

	if path, err := exec.LookPath(detectCommand); err == nil {
		logger.Debug().Str("command", detectCommand).Str("path", path).Msg("command found on PATH")
		pterm.Success.Printfln("%s is already installed.", detectCommand)
		return true
	}

	if len(extraPaths) == 0 {
		logger.Debug().Str("command", detectCommand).Msg("command not found")
		return false
	}

	found := withWidenedPath(extraPaths, func() bool {
		_, err := exec.LookPath(detectCommand)
		return err == nil
	})
	if found {
		logger.Debug().
			Str("command", detectCommand).
			Strs("extra_paths", extraPaths).
			Msg("command found via widened search path")
		pterm.Success.Printfln("%s is already installed.", detectCommand)
		return true
	}

	logger.Debug().Str("command", detectCommand).Msg("command not found")
	return false
}

// withWidenedPath runs fn with dirs prepended to PATH and restores the
// original PATH afterwards, including when fn panics.
func withWidenedPath(dirs []string, fn func() bool) bool {
	original := os.Getenv("PATH")
	defer func() {
		_ = os.Setenv("PATH", original)
	}()

	parts := make([]string, 0, len(dirs)+1)
	parts = append(parts, dirs...)
	if original != "" {
		parts = append(parts, original)
	}
	_ = os.Setenv("PATH", strings.Join(parts, string(os.PathListSeparator)))

	return fn()
}
