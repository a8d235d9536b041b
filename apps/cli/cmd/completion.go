package cmd

import (
	"github.com/abdul-hamid-achik/green/packages/selftest"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a completion script for green and write it to stdout.

  bash:        source <(green completion bash)
  zsh:         green completion zsh > "${fpath[1]}/_green"
  fish:        green completion fish | source
  powershell:  green completion powershell | Out-String | Invoke-Expression

Suite names are completed for green run and green serve.`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(out, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

// completeSuites offers suite names as positional arguments.
func completeSuites(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return selftest.Names(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(completionCmd)
	runCmd.ValidArgsFunction = completeSuites
	serveCmd.ValidArgsFunction = completeSuites
}
