package installer

import (
	"github.com/arthur-debert/dostrap/pkg/errors"
)

// Ledger is the run-scoped, append-only record of package outcomes.
// Insertion order is processing order; entries are immutable once written.
// It lives for one program execution and is never persisted.
type Ledger struct {
	order    []string
	outcomes map[string]Outcome
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		outcomes: make(map[string]Outcome),
	}
}

// Record writes the outcome for name. Recording the same name twice is an
// error: an outcome is computed exactly once and immutable thereafter.
func (l *Ledger) Record(name string, outcome Outcome) error {
	if _, exists := l.outcomes[name]; exists {
		return errors.Newf(errors.ErrDuplicate, "outcome for %s already recorded", name)
	}
	l.order = append(l.order, name)
	l.outcomes[name] = outcome
	return nil
}

// Outcome returns the recorded outcome for name, if any
func (l *Ledger) Outcome(name string) (Outcome, bool) {
	outcome, ok := l.outcomes[name]
	return outcome, ok
}

// Installed reports whether name was recorded as available on the machine,
// either found during detection or freshly installed. Unrecorded names
// report false.
func (l *Ledger) Installed(name string) bool {
	outcome, ok := l.outcomes[name]
	return ok && outcome.Installed()
}

// Names returns the recorded package names in processing order
func (l *Ledger) Names() []string {
	names := make([]string, len(l.order))
	copy(names, l.order)
	return names
}

// Len returns the number of recorded outcomes
func (l *Ledger) Len() int {
	return len(l.order)
}
