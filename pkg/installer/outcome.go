package installer

// Outcome is the final result of processing one package request.
// Exactly one outcome is computed per package and never recomputed.
type Outcome int

const (
	// OutcomeUnknown is the zero value; it never appears in a ledger
	OutcomeUnknown Outcome = iota
	// OutcomeAlreadyPresent means the detect command was found before any install
	OutcomeAlreadyPresent
	// OutcomeNewlyInstalled means the install action ran and verification passed
	OutcomeNewlyInstalled
	// OutcomeSkipped means the package was declined or its prerequisite was unmet
	OutcomeSkipped
)

// String returns the human-readable name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyPresent:
		return "already present"
	case OutcomeNewlyInstalled:
		return "newly installed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Installed reports whether the package ended up available on the machine
func (o Outcome) Installed() bool {
	return o == OutcomeAlreadyPresent || o == OutcomeNewlyInstalled
}
