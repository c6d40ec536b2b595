// pkg/ui/output/styles/styles_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test style sheet loading and registry lookup

package styles_test

import (
	"testing"

	"github.com/arthur-debert/dostrap/pkg/ui/output/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoaded(t *testing.T) {
	for _, name := range []string{"Success", "Error", "Warning", "Header", "Command"} {
		_, ok := styles.StyleRegistry[name]
		assert.True(t, ok, "style %s missing from registry", name)
	}
}

func TestGetStyleUnknownNameIsSafe(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	data := []byte(`
colors:
  highlight:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Banner:
    bold: true
    foreground: highlight
`)
	require.NoError(t, styles.LoadStylesFromData(data))
	_, ok := styles.StyleRegistry["Banner"]
	assert.True(t, ok)

	// Restore the embedded registry for other tests.
	t.Cleanup(func() {
		require.NoError(t, styles.ReloadEmbedded())
	})
}

func TestLoadStylesFromDataMalformed(t *testing.T) {
	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}
