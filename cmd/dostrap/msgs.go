package dostrap

// User-facing message constants for the CLI layer
const (
	MsgRootShort = "Bootstrap a development machine"

	MsgRootLong = `dostrap brings a fresh machine to a known-good state: it checks a small,
ordered set of tools (a package manager and the tools that need it),
installs the missing ones after asking you, and tells you which manual
setup steps remain.

Running it on an already-provisioned machine is safe: present packages
are detected and left alone.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Path to a catalog file replacing the built-in package list"

	MsgGuideShort = "Show the post-bootstrap setup guide"

	MsgVersionShort = "Print version information"
)
