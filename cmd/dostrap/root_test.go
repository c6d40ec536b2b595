// cmd/dostrap/root_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Filesystem (t.TempDir) for catalog files
// PURPOSE: Test CLI wiring and the non-interactive failure paths

package dostrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dostrap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmdStructure(t *testing.T) {
	rootCmd := NewRootCmd()

	assert.Equal(t, "dostrap", rootCmd.Use)

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "guide")

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.Flags().Lookup("config"))
}

func TestBootstrapAbortsOnUnsupportedOS(t *testing.T) {
	// A catalog that supports no real OS: the precondition check fails
	// before any prompting or probing can happen.
	path := filepath.Join(t.TempDir(), "dostrap.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
supported_os = ["plan9"]
check_network = false
sudo_cache = false

[[packages]]
name = "homebrew"
detect_command = "brew"
`), 0644))

	err := runBootstrap(path)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedOS))
}

func TestBootstrapRejectsBadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dostrap.toml")
	require.NoError(t, os.WriteFile(path, []byte(`supported_os = ["darwin"]`), 0644))

	err := runBootstrap(path)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestRenderGuideFallsBackToPlainMarkdown(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	rendered := renderGuide(guideContent)

	assert.Equal(t, guideContent, rendered)
	assert.Contains(t, rendered, "brew shellenv")
}
