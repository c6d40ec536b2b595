// Package executor runs install actions as subprocesses with the
// operator's terminal attached. The orchestrator consumes it as an opaque
// success/failure invoker.
package executor

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dostrap/pkg/errors"
	"github.com/arthur-debert/dostrap/pkg/logging"
	"github.com/rs/zerolog"
)

// Options contains configuration for the command runner
type Options struct {
	// Stdin/Stdout/Stderr are attached to spawned installers; install
	// scripts are allowed to be interactive. They default to the process
	// stdio.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger zerolog.Logger
}

// CommandRunner executes install actions synchronously, one at a time
type CommandRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
}

// New creates a CommandRunner
func New(opts Options) *CommandRunner {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &CommandRunner{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Run executes argv and blocks until it finishes. There is no timeout and
// no cancellation; a human is in the loop. A non-zero exit is returned as
// an INSTALL_FAILED error.
func (r *CommandRunner) Run(argv []string) error {
	if len(argv) == 0 {
		return errors.New(errors.ErrInvalidInput, "empty install action")
	}

	logging.LogCommand(argv[0], argv[1:])

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		r.logger.Error().Err(err).Strs("argv", argv).Msg("install action failed")
		return errors.Wrapf(err, errors.ErrInstallFailed, "install action %q failed", argv[0])
	}

	r.logger.Debug().Strs("argv", argv).Msg("install action completed")
	return nil
}

// WidenPath prepends dirs to the process PATH for the remainder of the
// run, skipping directories already present. Unlike the probe's scoped
// widening this mutation is deliberately not restored: once the manager
// package is installed, every later detection must see its binaries.
func WidenPath(dirs ...string) error {
	current := os.Getenv("PATH")
	existing := strings.Split(current, string(os.PathListSeparator))

	var missing []string
	for _, dir := range dirs {
		found := false
		for _, p := range existing {
			if p == dir {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, dir)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	widened := strings.Join(append(missing, current), string(os.PathListSeparator))
	logger := logging.GetLogger("executor")
	logger.Debug().Strs("dirs", missing).Msg("widening PATH for the rest of the run")
	return os.Setenv("PATH", widened)
}
