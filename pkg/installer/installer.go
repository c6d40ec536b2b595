// Package installer holds the bootstrap core: the idempotent,
// dependency-aware state machine that decides per package whether it is
// already present, whether its prerequisites are satisfied, whether to
// prompt and install, and how to record the outcome for dependents and
// the final summary.
package installer

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dostrap/pkg/errors"
	"github.com/arthur-debert/dostrap/pkg/logging"
	"github.com/arthur-debert/dostrap/pkg/prompt"
	"github.com/rs/zerolog"
)

// ProbeFunc detects whether a command is present, optionally widening the
// search path. See pkg/probe for the real implementation.
type ProbeFunc func(detectCommand string, extraPaths []string) bool

// AskFunc solicits a y/n confirmation from the operator
type AskFunc func(question string, def prompt.Default) (bool, error)

// Runner executes an install action. The orchestrator treats it as a
// black box; the real implementation lives in pkg/executor.
type Runner interface {
	Run(argv []string) error
}

// Options configures an Orchestrator
type Options struct {
	Probe  ProbeFunc
	Ask    AskFunc
	Runner Runner

	// Out receives informational messages, ErrOut diagnostics.
	// They default to stdout/stderr.
	Out    io.Writer
	ErrOut io.Writer

	// PrereqFatal turns an unmet prerequisite from a skip into a fatal
	// error for the whole run
	PrereqFatal bool

	Logger zerolog.Logger
}

// Orchestrator processes package requests one at a time, strictly in
// registration order, and keeps the ledger of finalized outcomes that
// later requests' prerequisites read.
type Orchestrator struct {
	probe       ProbeFunc
	ask         AskFunc
	runner      Runner
	out         io.Writer
	errOut      io.Writer
	prereqFatal bool
	ledger      *Ledger
	logger      zerolog.Logger
}

// New creates an Orchestrator with an empty ledger
func New(opts Options) *Orchestrator {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("installer")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	return &Orchestrator{
		probe:       opts.Probe,
		ask:         opts.Ask,
		runner:      opts.Runner,
		out:         out,
		errOut:      errOut,
		prereqFatal: opts.PrereqFatal,
		ledger:      NewLedger(),
		logger:      logger,
	}
}

// Ledger returns the orchestrator's outcome ledger. Callers read it after
// processing to build the final summary.
func (o *Orchestrator) Ledger() *Ledger {
	return o.ledger
}

// Install processes one package request and records its outcome.
//
// A returned error is fatal for the run: the caller must stop processing
// further requests. No outcome is recorded on a fatal error, there is no
// retry and no rollback; the operator fixes the underlying issue and
// re-runs the bootstrap.
func (o *Orchestrator) Install(req Request) (Outcome, error) {
	logger := o.logger.With().Str("package", req.Name).Logger()

	// Presence first, prerequisites second: a dependent that is already
	// installed must never be blocked on its manager's outcome.
	if o.probe(req.DetectCommand, req.ExtraSearchPaths) {
		logger.Info().Msg("package already present")
		return o.record(req.Name, OutcomeAlreadyPresent)
	}

	if req.Prerequisite != nil && !req.Prerequisite(o.ledger) {
		if o.prereqFatal {
			return OutcomeUnknown, errors.New(errors.ErrPrereqUnmet, req.PrereqFailMessage).
				WithDetail("package", req.Name)
		}
		fmt.Fprintln(o.errOut, req.PrereqFailMessage)
		logger.Warn().Msg("prerequisite unmet, skipping package")
		return o.record(req.Name, OutcomeSkipped)
	}

	fmt.Fprintf(o.out, "%s not found.\n", req.Name)
	confirmed, err := o.ask(fmt.Sprintf("Install %s?", req.Name), prompt.DefaultYes)
	if err != nil {
		return OutcomeUnknown, err
	}

	if !confirmed {
		fmt.Fprintf(o.out, "Skipping %s.\n", req.Name)
		logger.Info().Msg("install declined by operator")
		return o.record(req.Name, OutcomeSkipped)
	}

	logger.Info().Strs("action", req.InstallAction).Msg("running install action")
	if err := o.runner.Run(req.InstallAction); err != nil {
		return OutcomeUnknown, errors.Wrapf(err, errors.ErrInstallFailed,
			"failed to install %s", req.Name).WithDetail("package", req.Name)
	}

	// Catch install actions that silently no-op or install somewhere the
	// search path cannot see.
	if !o.probe(req.DetectCommand, req.ExtraSearchPaths) {
		return OutcomeUnknown, errors.Newf(errors.ErrVerifyFailed,
			"%s installed but command %q not available", req.Name, req.DetectCommand).
			WithDetail("package", req.Name)
	}

	fmt.Fprintf(o.out, "%s installed successfully.\n", req.Name)
	return o.record(req.Name, OutcomeNewlyInstalled)
}

func (o *Orchestrator) record(name string, outcome Outcome) (Outcome, error) {
	if err := o.ledger.Record(name, outcome); err != nil {
		return OutcomeUnknown, err
	}
	return outcome, nil
}
