package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/green/packages/core/runner"
	"github.com/abdul-hamid-achik/green/packages/selftest"
	"github.com/abdul-hamid-achik/green/packages/serve"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [suite...]",
	Short: "Serve the HTML report over HTTP",
	Long: `Serve an HTML report of the self-test suites. Every request runs the
suites afresh; add ?suite=<pattern> to narrow them.

Examples:
  green serve
  green serve --addr :9090 zn
  green serve --rate 2 --burst 5`,
	RunE: serveCommand,
}

var (
	serveSettings settingsFlags
	addrFlag      string
	rateFlag      float64
	burstFlag     int
)

func init() {
	serveSettings.register(serveCmd, false)
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (env: GREEN_ADDR)")
	serveCmd.Flags().Float64Var(&rateFlag, "rate", 0, "Maximum report runs per second, 0 for no limit")
	serveCmd.Flags().IntVar(&burstFlag, "burst", 1, "Report runs allowed in a burst above --rate")
}

func serveCommand(cmd *cobra.Command, args []string) error {
	cfg, err := serveSettings.resolve(cmd)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Suites
	}
	suites, unmatched := runner.Select(selftest.All(), patterns...)
	if len(unmatched) > 0 {
		return exitWith(ExitUsageError, unknownSuites(unmatched))
	}

	// Requests are logged at info level.
	logger := newLogger(cmd, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := serve.NewServer(suites,
		serve.WithAddr(cfg.Addr),
		serve.WithLogger(logger),
		serve.WithRateLimit(rateFlag, burstFlag),
	)
	return srv.StartWithContext(ctx)
}
