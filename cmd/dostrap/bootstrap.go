package dostrap

import (
	"os"

	"github.com/arthur-debert/dostrap/pkg/config"
	"github.com/arthur-debert/dostrap/pkg/executor"
	"github.com/arthur-debert/dostrap/pkg/installer"
	"github.com/arthur-debert/dostrap/pkg/logging"
	"github.com/arthur-debert/dostrap/pkg/probe"
	"github.com/arthur-debert/dostrap/pkg/prompt"
	"github.com/arthur-debert/dostrap/pkg/shell"
	"github.com/arthur-debert/dostrap/pkg/system"
	"github.com/pterm/pterm"
)

// runBootstrap is the whole program: preconditions, one orchestrator pass
// over the catalog in registration order, then the follow-up summary.
func runBootstrap(configPath string) error {
	logger := logging.GetLogger("bootstrap")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	facts := system.Gather(cfg.CheckNetwork)
	if err := system.CheckPreconditions(facts, cfg.SupportedOS, cfg.CheckNetwork); err != nil {
		return err
	}

	runner := executor.New(executor.Options{})

	if cfg.SudoCache {
		pterm.Info.Println("Caching sudo credentials; you may be asked for your password.")
		if err := system.CacheSudoCredentials(runner); err != nil {
			return err
		}
	}

	orch := installer.New(installer.Options{
		Probe:       probe.Probe,
		Ask:         prompt.NewStdio().Ask,
		Runner:      runner,
		PrereqFatal: cfg.PrereqFatal,
	})

	for _, req := range cfg.Requests() {
		outcome, err := orch.Install(req)
		if err != nil {
			return err
		}
		// A freshly installed manager must be visible to every later
		// detection, so its install locations join PATH for the rest of
		// the run.
		if outcome == installer.OutcomeNewlyInstalled && len(req.ExtraSearchPaths) > 0 {
			if err := executor.WidenPath(req.ExtraSearchPaths...); err != nil {
				return err
			}
		}
		logger.Info().Str("package", req.Name).Stringer("outcome", outcome).Msg("package processed")
	}

	printLedger(orch.Ledger())
	shell.WriteSummary(os.Stdout, shell.DetectShell(), shell.BuildSummary(orch.Ledger(), cfg))
	return nil
}

// printLedger shows each package's final outcome in processing order
func printLedger(ledger *installer.Ledger) {
	pterm.DefaultSection.Println("Bootstrap summary")

	items := make([]pterm.BulletListItem, 0, ledger.Len())
	for _, name := range ledger.Names() {
		outcome, _ := ledger.Outcome(name)
		items = append(items, pterm.BulletListItem{
			Level: 0,
			Text:  name + ": " + outcome.String(),
		})
	}
	_ = pterm.DefaultBulletList.WithItems(items).Render()
}
