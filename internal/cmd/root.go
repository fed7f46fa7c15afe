package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for checker.
// The root command itself performs the check so the binary can be started
// by double-clicking it.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checker",
		Short: "Verify the layout of a contestant's submission folder",
		Long: `Checker finds the single contestant folder under the configured root path
and reports, for every configured problem, whether exactly one source file
is stored where the contest rules require it.

It never compiles or judges code; it only checks file names and locations.

Configuration is read from checker.cfg next to the executable unless
--config is given. CLI flags override configuration file settings.

Exit codes:
  0  report printed (whatever the per-problem results)
  1  checker.cfg not found
  2  checker.cfg unparsable
  3  no contestant folder found
  4  more than one contestant folder found
  5  root path or contestant folder not accessible
  6  invalid command line
  7  report could not be written`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// Fatal messages are printed by runCheck; main prints the rest
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: checker.cfg next to the executable)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error (overrides config)")
	cmd.Flags().String("format", formatText, "Report format: text or json")
	cmd.Flags().String("color", "", "Color output: auto, always, never (overrides config)")
	cmd.Flags().Bool("no-pause", false, "Exit without waiting for Enter")

	return cmd
}
