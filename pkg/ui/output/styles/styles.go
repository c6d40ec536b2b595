// Package styles defines the visual styling for dostrap's terminal
// output. All styles use semantic names and adaptive colors that adjust
// to light and dark terminal themes.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	MarginTop   int    `yaml:"marginTop,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

var colors map[string]lipgloss.AdaptiveColor

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		// Embedded data should always parse; fall back to unstyled
		// output rather than crashing the bootstrap over cosmetics.
		initDefaultStyles()
	}
}

// ReloadEmbedded restores the registry from the embedded style sheet
func ReloadEmbedded() error {
	return LoadStylesFromData(embeddedStyles)
}

// LoadStylesFromData parses a YAML style sheet and rebuilds the registry
func LoadStylesFromData(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	colors = make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	StyleRegistry = make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if def.Foreground != "" {
			if color, ok := colors[def.Foreground]; ok {
				style = style.Foreground(color)
			}
		}
		if def.MarginTop > 0 {
			style = style.MarginTop(def.MarginTop)
		}
		if def.PaddingLeft > 0 {
			style = style.PaddingLeft(def.PaddingLeft)
		}
		StyleRegistry[name] = style
	}
	return nil
}

// initDefaultStyles installs empty styles so rendering never crashes
func initDefaultStyles() {
	colors = make(map[string]lipgloss.AdaptiveColor)
	StyleRegistry = make(map[string]lipgloss.Style)
	for _, name := range []string{"Success", "Error", "Warning", "Header", "Command"} {
		StyleRegistry[name] = lipgloss.NewStyle()
	}
}

// GetStyle returns the style registered under name, or an empty style
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
