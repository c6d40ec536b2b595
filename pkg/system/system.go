// Package system gathers the machine facts checked before any package
// processing begins. The orchestrator never consults it directly; the CLI
// aborts on a failed precondition before orchestration starts.
package system

import (
	"net/http"
	"os/user"
	"runtime"
	"time"

	"github.com/arthur-debert/dostrap/pkg/errors"
	"github.com/arthur-debert/dostrap/pkg/logging"
)

// reachabilityURL is probed to decide whether the machine is online
const reachabilityURL = "https://github.com"

// reachabilityTimeout bounds the network probe; everything else in the
// bootstrap is allowed to block indefinitely, this is not
const reachabilityTimeout = 5 * time.Second

// Facts describes the machine as found at startup
type Facts struct {
	// OS is the operating-system family (runtime.GOOS)
	OS string

	// Arch is the machine architecture (runtime.GOARCH)
	Arch string

	// AdminGroup reports membership in the platform's administrator group
	AdminGroup bool

	// Online reports whether the reachability probe succeeded. Only
	// meaningful when the probe ran.
	Online bool
}

// Gather collects machine facts once. The network probe only runs when
// checkNetwork is set; it is the one facts lookup with a real cost.
func Gather(checkNetwork bool) Facts {
	logger := logging.GetLogger("system")

	facts := Facts{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		AdminGroup: inAdminGroup(),
	}
	if checkNetwork {
		facts.Online = reachable(reachabilityURL)
	}

	logger.Debug().
		Str("os", facts.OS).
		Str("arch", facts.Arch).
		Bool("admin_group", facts.AdminGroup).
		Bool("online", facts.Online).
		Msg("gathered machine facts")
	return facts
}

// CheckPreconditions validates facts against the configured requirements.
// It returns a coded error naming the missing capability; any error here
// aborts the run before the orchestrator sees a single package.
func CheckPreconditions(facts Facts, supportedOS []string, requireNetwork bool) error {
	osSupported := false
	for _, goos := range supportedOS {
		if facts.OS == goos {
			osSupported = true
			break
		}
	}
	if !osSupported {
		return errors.Newf(errors.ErrUnsupportedOS,
			"this bootstrap supports %v, not %s", supportedOS, facts.OS)
	}

	if !facts.AdminGroup {
		return errors.New(errors.ErrNotAdmin,
			"the current user is not in the administrator group; installs need admin rights")
	}

	if requireNetwork && !facts.Online {
		return errors.Newf(errors.ErrOffline,
			"cannot reach %s; installs need a working network connection", reachabilityURL)
	}

	return nil
}

// Runner matches the executor's install-action contract
type Runner interface {
	Run(argv []string) error
}

// CacheSudoCredentials primes the sudo timestamp so install actions don't
// each stop for a password. The prompt, if any, goes to the attached
// terminal.
func CacheSudoCredentials(runner Runner) error {
	if err := runner.Run([]string{"sudo", "-v"}); err != nil {
		return errors.Wrap(err, errors.ErrSudoCache, "failed to cache sudo credentials")
	}
	return nil
}

// adminGroupNames returns the group names that mean "administrator" on
// the given OS family
func adminGroupNames(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"admin"}
	default:
		return []string{"sudo", "wheel"}
	}
}

// inAdminGroup reports whether the current user belongs to one of the
// platform's administrator groups
func inAdminGroup() bool {
	logger := logging.GetLogger("system")

	current, err := user.Current()
	if err != nil {
		logger.Warn().Err(err).Msg("could not resolve current user")
		return false
	}
	groupIDs, err := current.GroupIds()
	if err != nil {
		logger.Warn().Err(err).Msg("could not list user groups")
		return false
	}

	for _, name := range adminGroupNames(runtime.GOOS) {
		group, err := user.LookupGroup(name)
		if err != nil {
			continue
		}
		for _, gid := range groupIDs {
			if gid == group.Gid {
				return true
			}
		}
	}
	return false
}

// reachable reports whether url answers a HEAD request within the probe
// timeout
func reachable(url string) bool {
	client := &http.Client{Timeout: reachabilityTimeout}
	resp, err := client.Head(url)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}
