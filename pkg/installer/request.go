package installer

// Predicate decides, from already-recorded outcomes, whether a package's
// prerequisite is satisfied. Predicates are bound at construction time so
// a missing prerequisite is a wiring mistake caught when the request list
// is built, not a runtime lookup failure.
type Predicate func(*Ledger) bool

// Request describes one package to ensure. Immutable once constructed;
// the caller builds one per package, in dependency order (manager first),
// before orchestration begins.
type Request struct {
	// Name is the package's display name, also the ledger key
	Name string

	// DetectCommand is the executable whose presence means "installed"
	DetectCommand string

	// InstallAction is the argv run to install the package
	InstallAction []string

	// Prerequisite, when non-nil, gates the install on prior outcomes
	Prerequisite Predicate

	// PrereqFailMessage is printed to the error stream when the
	// prerequisite is unmet
	PrereqFailMessage string

	// ExtraSearchPaths are directories tried in addition to PATH when
	// detecting the command (e.g. /opt/homebrew/bin before shellenv is
	// set up)
	ExtraSearchPaths []string
}

// Requires returns a predicate satisfied when the named package's outcome
// is already present or newly installed.
func Requires(name string) Predicate {
	return func(l *Ledger) bool {
		return l.Installed(name)
	}
}
