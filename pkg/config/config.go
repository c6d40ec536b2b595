// Package config defines the bootstrap catalog: which packages to ensure,
// in what order, and the run-wide flags. The built-in catalog is embedded;
// a user file with the same schema replaces it.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/arthur-debert/dostrap/pkg/errors"
	"github.com/arthur-debert/dostrap/pkg/installer"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/dostrap.toml
var defaultConfig []byte

// Package describes one catalog entry
type Package struct {
	// Name is the display name and ledger key
	Name string `toml:"name"`

	// DetectCommand is the executable whose presence means installed
	DetectCommand string `toml:"detect_command"`

	// InstallAction is the argv run to install the package
	InstallAction []string `toml:"install_action"`

	// Requires names an earlier catalog entry that must be installed
	// before this one can be
	Requires string `toml:"requires"`

	// RequiresMessage overrides the default unmet-prerequisite message
	RequiresMessage string `toml:"requires_message"`

	// ExtraSearchPaths are extra directories tried during detection, and
	// widened into PATH for the rest of the run after a fresh install
	ExtraSearchPaths []string `toml:"extra_search_paths"`

	// SetupCommand is the shell line the operator must add to their
	// profile after a fresh install; surfaced by the final summary
	SetupCommand string `toml:"setup_command"`
}

// Config is the full bootstrap configuration
type Config struct {
	// PrereqFatal makes an unmet prerequisite abort the run instead of
	// skipping the dependent
	PrereqFatal bool `toml:"prereq_fatal"`

	// SudoCache primes sudo credentials before processing packages
	SudoCache bool `toml:"sudo_cache"`

	// CheckNetwork requires the reachability probe to pass
	CheckNetwork bool `toml:"check_network"`

	// SupportedOS lists the GOOS values the bootstrap may run on
	SupportedOS []string `toml:"supported_os"`

	// Packages is the ordered catalog, managers before dependents
	Packages []Package `toml:"packages"`
}

// Default returns the embedded catalog
func Default() (*Config, error) {
	return parse(defaultConfig)
}

// Load reads the catalog from path, or the embedded default when path is
// empty
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate enforces the construction-time guarantees the orchestrator
// relies on: unique non-empty names, and requires references that point
// at an earlier entry so every prerequisite reads a finalized outcome.
func (c *Config) validate() error {
	if len(c.Packages) == 0 {
		return errors.New(errors.ErrConfigValid, "catalog defines no packages")
	}
	if len(c.SupportedOS) == 0 {
		return errors.New(errors.ErrConfigValid, "supported_os must list at least one OS")
	}

	seen := make(map[string]bool, len(c.Packages))
	for i, pkg := range c.Packages {
		if pkg.Name == "" {
			return errors.Newf(errors.ErrConfigValid, "package %d has no name", i)
		}
		if seen[pkg.Name] {
			return errors.Newf(errors.ErrConfigValid, "duplicate package %s", pkg.Name)
		}
		if pkg.DetectCommand == "" {
			return errors.Newf(errors.ErrConfigValid, "package %s has no detect_command", pkg.Name)
		}
		if pkg.Requires != "" && !seen[pkg.Requires] {
			return errors.Newf(errors.ErrConfigValid,
				"package %s requires %s, which is not defined before it", pkg.Name, pkg.Requires)
		}
		seen[pkg.Name] = true
	}
	return nil
}

// Requests converts the catalog into orchestrator requests, binding each
// requires reference to a typed predicate over the ledger.
func (c *Config) Requests() []installer.Request {
	requests := make([]installer.Request, 0, len(c.Packages))
	for _, pkg := range c.Packages {
		req := installer.Request{
			Name:             pkg.Name,
			DetectCommand:    pkg.DetectCommand,
			InstallAction:    pkg.InstallAction,
			ExtraSearchPaths: pkg.ExtraSearchPaths,
		}
		if pkg.Requires != "" {
			req.Prerequisite = installer.Requires(pkg.Requires)
			req.PrereqFailMessage = pkg.RequiresMessage
			if req.PrereqFailMessage == "" {
				req.PrereqFailMessage = fmt.Sprintf(
					"%s requires %s, which is not installed.", pkg.Name, pkg.Requires)
			}
		}
		requests = append(requests, req)
	}
	return requests
}

// Lookup returns the catalog entry with the given name
func (c *Config) Lookup(name string) (Package, bool) {
	for _, pkg := range c.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return Package{}, false
}
