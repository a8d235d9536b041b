package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/abdul-hamid-achik/green/packages/core/runner"
	"github.com/abdul-hamid-achik/green/packages/selftest"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [suite...]",
	Short: "Run the self-test suites",
	Long: `Run green's self-test suites and render the report.

Suites are selected by name; a leading or trailing * matches any suffix
or prefix. Without arguments the suites listed in the config file run,
or every suite when the config lists none.

Examples:
  green run
  green run zn
  green run --renderer html -o report.html
  green run --list`,
	RunE: runCommand,
}

var (
	runSettings settingsFlags
	bailFlag    bool
	listFlag    bool
)

func init() {
	runSettings.register(runCmd, true)
	runCmd.Flags().BoolVar(&bailFlag, "bail", getEnvBool("GREEN_BAIL", false), "Stop after the first suite with a failure (env: GREEN_BAIL)")
	runCmd.Flags().BoolVar(&listFlag, "list", false, "List the selected suites without running them")
}

func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := runSettings.resolve(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, slog.LevelWarn)

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Suites
	}
	suites, unmatched := runner.Select(selftest.All(), patterns...)
	if len(unmatched) > 0 {
		return exitWith(ExitUsageError, unknownSuites(unmatched))
	}

	if listFlag {
		for _, s := range suites {
			fmt.Fprintln(cmd.OutOrStdout(), s.Name)
		}
		return nil
	}

	renderer, closeOutput, err := openRenderer(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput()

	r := runner.NewRunner(&runner.Config{
		Bail: bailFlag,
		Warn: func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		},
	})
	logger.Debug("running suites", "run", r.Recorder().ID(), "count", len(suites), "renderer", cfg.Renderer)

	summary := r.Run(suites...)
	if err := r.Finalize(renderer); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	if err := closeOutput(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	logger.Debug("run finished",
		"suites", summary.Suites,
		"success", summary.Success,
		"failure", summary.Failure,
		"duration", summary.Duration,
		"errors", len(summary.Errors),
	)

	if len(summary.Errors) > 0 {
		return exitWith(ExitUsageError, errors.Join(summary.Errors...))
	}
	if !summary.Passed() {
		return exitWith(ExitTestFailure, nil)
	}
	return nil
}
