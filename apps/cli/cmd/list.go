package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/green/packages/assertions"
	"github.com/abdul-hamid-achik/green/packages/selftest"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List suites and operators",
	Long: `List the self-test suites that green run accepts and the operators
available to assertions and batch files.`,
	Args: cobra.NoArgs,
	RunE: listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Suites:")
	for _, name := range selftest.Names() {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	fmt.Fprintln(out, "\nOperators:")
	for _, op := range assertions.Operators() {
		fmt.Fprintf(out, "  %s\n", op)
	}
	return nil
}
