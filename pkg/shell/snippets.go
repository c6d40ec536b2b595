// Package shell turns the final ledger into the manual follow-up steps
// the operator still has to do: the environment-setup lines newly
// installed managers need in the shell profile.
package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dostrap/pkg/config"
	"github.com/arthur-debert/dostrap/pkg/installer"
)

// Instruction is one follow-up step for the operator
type Instruction struct {
	// Package is the newly installed package the step belongs to
	Package string

	// Command is the line to add to the shell profile
	Command string
}

// DetectShell returns the user's shell name from $SHELL, defaulting to
// bash when it cannot tell
func DetectShell() string {
	switch name := filepath.Base(os.Getenv("SHELL")); name {
	case "zsh", "fish", "bash":
		return name
	default:
		return "bash"
	}
}

// ProfilePath returns the profile file conventionally sourced by the
// given shell, for display purposes
func ProfilePath(shellName string) string {
	switch shellName {
	case "zsh":
		return "~/.zshrc"
	case "fish":
		return "~/.config/fish/config.fish"
	default:
		return "~/.bashrc"
	}
}

// BuildSummary collects the setup commands for every package the run
// newly installed. Packages found already present need no follow-up, and
// skipped ones got nothing installed to set up.
func BuildSummary(ledger *installer.Ledger, cfg *config.Config) []Instruction {
	var instructions []Instruction
	for _, name := range ledger.Names() {
		outcome, _ := ledger.Outcome(name)
		if outcome != installer.OutcomeNewlyInstalled {
			continue
		}
		pkg, ok := cfg.Lookup(name)
		if !ok || pkg.SetupCommand == "" {
			continue
		}
		instructions = append(instructions, Instruction{
			Package: name,
			Command: pkg.SetupCommand,
		})
	}
	return instructions
}

// WriteSummary renders the follow-up instructions for the operator's
// shell. It writes nothing when there is nothing to do.
func WriteSummary(w io.Writer, shellName string, instructions []Instruction) {
	if len(instructions) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "To finish setting up, add the following to %s:\n", ProfilePath(shellName))
	fmt.Fprintln(w)
	for _, inst := range instructions {
		fmt.Fprintf(w, "    %s\n", inst.Command)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Then restart your shell or run: source %s\n", ProfilePath(shellName))
}
