package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/checker/internal/checker"
	"github.com/harrison/checker/internal/config"
	"github.com/harrison/checker/internal/display"
	"github.com/harrison/checker/internal/logger"
)

// Report formats
const (
	formatText = "text"
	formatJSON = "json"
)

// checkOptions holds the validated command-line flags
type checkOptions struct {
	configPath string
	format     string
	logLevel   *string
	color      *string
	pause      *bool
}

// runCheck is the RunE of the root command: it validates flags, runs the
// check, and pauses before returning so the operator can read the output.
func runCheck(cmd *cobra.Command) error {
	opts, err := parseCheckOptions(cmd)
	if err != nil {
		return err
	}

	pause := true
	err = executeCheck(opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), &pause)

	if shouldPause(pause, cmd.InOrStdin()) {
		waitForEnter(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	return err
}

// parseCheckOptions reads the flags. Invalid values are usage errors and are
// reported by main without a pause.
func parseCheckOptions(cmd *cobra.Command) (*checkOptions, error) {
	opts := &checkOptions{}

	opts.configPath, _ = cmd.Flags().GetString("config")
	if opts.configPath == "" {
		opts.configPath = defaultConfigPath()
	}

	opts.format, _ = cmd.Flags().GetString("format")
	if opts.format != formatText && opts.format != formatJSON {
		return nil, fmt.Errorf("invalid --format %q, must be text or json", opts.format)
	}

	// Build flag pointers for merge (only non-default values)
	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		if !logger.IsValidLevel(level) {
			return nil, fmt.Errorf("invalid --log-level %q, must be one of: trace, debug, info, warn, error", level)
		}
		opts.logLevel = &level
	}
	if cmd.Flags().Changed("color") {
		mode, _ := cmd.Flags().GetString("color")
		switch mode {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
		default:
			return nil, fmt.Errorf("invalid --color %q, must be one of: auto, always, never", mode)
		}
		opts.color = &mode
	}
	if cmd.Flags().Changed("no-pause") {
		noPause, _ := cmd.Flags().GetBool("no-pause")
		pause := !noPause
		opts.pause = &pause
	}

	return opts, nil
}

// defaultConfigPath returns checker.cfg in the executable's directory, or in
// the working directory when the executable cannot be located.
func defaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return config.FileName
	}
	return filepath.Join(filepath.Dir(exe), config.FileName)
}

// executeCheck walks the run through its stages. Every fatal error is shown
// once on stderr and returned as an *ExitError. *pause is set to whether the
// operator should be asked to press Enter.
func executeCheck(opts *checkOptions, stdout, stderr io.Writer, pause *bool) error {
	if opts.pause != nil {
		*pause = *opts.pause
	}
	if opts.color != nil {
		applyColorMode(*opts.color)
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fail(stderr, err, opts.configPath)
	}
	cfg.MergeWithFlags(opts.logLevel, opts.color, opts.pause)
	applyColorMode(cfg.Color)
	*pause = cfg.Pause

	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	log.LogDebug(fmt.Sprintf("loaded %s (%s schema, %d problems)", opts.configPath, cfg.Schema, len(cfg.Problems)))

	runner := checker.NewRunner(log)
	report, err := runner.Run(cfg)
	if err != nil {
		log.LogDebug(fmt.Sprintf("run stopped at stage %s", runner.Stage()))
		return fail(stderr, err, opts.configPath)
	}

	if opts.format == formatJSON {
		if err := display.RenderJSON(stdout, report); err != nil {
			return fail(stderr, fmt.Errorf("%w: %w", errReportWrite, err), opts.configPath)
		}
	} else {
		display.RenderReport(stderr, report)
	}
	runner.Advance(checker.StageReported)

	return nil
}

// fail prints the diagnostic for err and wraps it with its exit code.
func fail(stderr io.Writer, err error, configPath string) error {
	warning, code := classify(err, configPath)
	warning.DisplayFatal(stderr)
	return &ExitError{Code: code, Err: err}
}

// applyColorMode sets fatih/color's global switch. "auto" keeps the
// library's own terminal and NO_COLOR detection.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}
