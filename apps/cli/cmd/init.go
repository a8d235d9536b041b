package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/green/packages/core/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a green configuration",
	Long: `Initialize green in the current directory.

This creates:
  - .green.yaml       - Configuration file
  - assertions.json   - Example batch file for green check --file

Examples:
  green init
  green init --force`,
	Args: cobra.NoArgs,
	RunE: initCommand,
}

const exampleBatch = `{
  "assertions": [
    {"actual": true, "line": 3},
    {"expected": 1, "operator": "<", "actual": 2, "line": 4},
    {"expected": {"k": 1}, "operator": "include", "actual": "k", "line": 5},
    {"expected": "/^gr/", "operator": "=~", "actual": "green", "line": 6}
  ]
}
`

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, config.ConfigFilenames[0])
	batchFile := filepath.Join(cwd, "assertions.json")

	if !forceInit {
		for _, f := range []string{configFile, batchFile} {
			if _, err := os.Stat(f); err == nil {
				return exitWith(ExitUsageError, fmt.Errorf("file already exists: %s (use --force to overwrite)", f))
			}
		}
	}

	cfg := config.DefaultConfig()
	cfg.Suites = []string{"green", "zn"}
	if err := cfg.SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	if err := os.WriteFile(batchFile, []byte(exampleBatch), 0644); err != nil {
		return fmt.Errorf("failed to create batch file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", batchFile)

	fmt.Fprintln(cmd.OutOrStdout(), "\nTry: green run && green check --file assertions.json")
	return nil
}
