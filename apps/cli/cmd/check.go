package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/green/packages/batch"
	"github.com/abdul-hamid-achik/green/packages/core/config"
	"github.com/abdul-hamid-achik/green/packages/recorder"
	"github.com/abdul-hamid-achik/green/packages/value"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [expected] [operator] <actual>",
	Short: "Evaluate one assertion or a batch file",
	Long: `Evaluate a single assertion from the command line, or every assertion
of a JSON batch file.

Operands are parsed as JSON; anything that is not valid JSON is taken as a
plain string. With one operand the assertion is "true = actual", with two
it is "expected = actual".

Examples:
  green check 1 '<' 2
  green check '[1, 2]' include 0
  green check '/^gr/' '=~' green
  green check --file assertions.json
  green check --file assertions.json --watch`,
	Args: func(cmd *cobra.Command, args []string) error {
		if checkFileFlag != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.RangeArgs(1, 3)(cmd, args)
	},
	RunE: checkCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond

	commandLineSite = "command line"
)

var (
	checkSettings  settingsFlags
	checkFileFlag  string
	checkWatchFlag bool
)

func init() {
	checkSettings.register(checkCmd, true)
	checkCmd.Flags().StringVarP(&checkFileFlag, "file", "f", "", "JSON batch file of assertions")
	checkCmd.Flags().BoolVarP(&checkWatchFlag, "watch", "w", false, "Re-run the batch file whenever it changes")
}

// parseOperand decodes a command-line operand.
func parseOperand(raw string) value.Value {
	if v, err := value.FromJSON(raw); err == nil {
		return v
	}
	return value.String(raw)
}

// checkArgs converts command-line arguments into recorder arguments. The
// operator position stays a plain string.
func checkArgs(args []string) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		if len(args) == 3 && i == 1 {
			out[i] = arg
			continue
		}
		out[i] = parseOperand(arg)
	}
	return out
}

func checkCommand(cmd *cobra.Command, args []string) error {
	cfg, err := checkSettings.resolve(cmd)
	if err != nil {
		return err
	}
	if checkWatchFlag && checkFileFlag == "" {
		return exitWith(ExitUsageError, errors.New("--watch requires --file"))
	}

	passed, err := checkOnce(cmd, cfg, args)
	if err != nil {
		return err
	}
	if !checkWatchFlag {
		if !passed {
			return exitWith(ExitTestFailure, nil)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchBatch(ctx, cmd, cfg)
}

// checkOnce records the assertion or batch into a fresh recorder and
// renders it.
func checkOnce(cmd *cobra.Command, cfg *config.Config, args []string) (bool, error) {
	renderer, closeOutput, err := openRenderer(cmd, cfg)
	if err != nil {
		return false, err
	}
	defer closeOutput()

	rec := recorder.New(recorder.WithRenderer(renderer))
	if checkFileFlag != "" {
		err = batch.Run(rec, checkFileFlag)
	} else {
		_, err = rec.Assert(&recorder.CallSite{File: commandLineSite, Line: 1}, checkArgs(args)...)
	}
	if err != nil {
		return false, exitWith(exitCodeFor(err), err)
	}

	if err := rec.Finalize(); err != nil {
		return false, fmt.Errorf("error writing output: %w", err)
	}
	return rec.Snapshot().Failure == 0, nil
}

// exitCodeFor maps an unreadable batch file to a config error. Unknown
// operators, bad arguments, malformed patterns and invalid batch files
// are usage errors.
func exitCodeFor(err error) int {
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return ExitConfigError
	}
	return ExitUsageError
}

func watchBatch(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logger := newLogger(cmd, slog.LevelWarn)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(checkFileFlag)
	if err != nil {
		return err
	}
	// Editors often replace files, so watch the directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", checkFileFlag)

	rerun := make(chan struct{}, 1)
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})

		case <-rerun:
			logger.Debug("batch changed, re-running", "file", checkFileFlag)
			fmt.Fprintf(cmd.ErrOrStderr(), "\nFile changed: %s\n\n", checkFileFlag)
			if _, err := checkOnce(cmd, cfg, nil); err != nil {
				logger.Warn("check failed", "err", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}
