package cmd

import (
	"io"
	"os"

	"github.com/abdul-hamid-achik/green/packages/core/config"
	"github.com/abdul-hamid-achik/green/packages/core/env"
	"github.com/abdul-hamid-achik/green/packages/output"
	"github.com/abdul-hamid-achik/green/packages/recorder"
	"github.com/spf13/cobra"
)

// settingsFlags are shared by commands that load configuration.
type settingsFlags struct {
	config     string
	envFile    string
	renderer   string
	noColor    bool
	outputFile string
}

func (f *settingsFlags) register(cmd *cobra.Command, rendering bool) {
	cmd.Flags().StringVar(&f.config, "config", "", "Path to config file (env: GREEN_CONFIG)")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Path to .env file loaded before settings are resolved (env: GREEN_ENV_FILE)")
	if !rendering {
		return
	}
	cmd.Flags().StringVarP(&f.renderer, "renderer", "r", "", "Renderer: auto, text, html (env: GREEN_RENDERER)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored output (env: GREEN_NO_COLOR, NO_COLOR)")
	cmd.Flags().StringVarP(&f.outputFile, "output-file", "o", "", "Write the report to file (default: stdout) (env: GREEN_OUTPUT_FILE)")
}

// resolve loads the .env file and the config file, then layers
// environment variables and explicitly set flags on top.
func (f *settingsFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	envFile := f.envFile
	if !cmd.Flags().Changed("env-file") {
		envFile = getEnvString("GREEN_ENV_FILE", "")
	}
	if envFile != "" {
		if _, err := env.LoadAndExportDotEnv(envFile); err != nil {
			return nil, exitWith(ExitConfigError, err)
		}
	}

	path := f.config
	if !cmd.Flags().Changed("config") {
		path = getEnvString("GREEN_CONFIG", "")
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, exitWith(ExitConfigError, err)
	}

	overrides := &config.Config{
		Renderer:   getEnvString("GREEN_RENDERER", ""),
		OutputFile: getEnvString("GREEN_OUTPUT_FILE", ""),
		Addr:       getEnvString("GREEN_ADDR", ""),
	}
	if os.Getenv("NO_COLOR") != "" || getEnvBool("GREEN_NO_COLOR", false) {
		overrides.NoColor = config.BoolPtr(true)
	}

	flags := &config.Config{}
	if cmd.Flags().Changed("renderer") {
		flags.Renderer = f.renderer
	}
	if cmd.Flags().Changed("no-color") {
		flags.NoColor = config.BoolPtr(f.noColor)
	}
	if cmd.Flags().Changed("output-file") {
		flags.OutputFile = f.outputFile
	}
	if cmd.Flags().Changed("addr") {
		flags.Addr, _ = cmd.Flags().GetString("addr")
	}

	cfg = cfg.Merge(overrides).Merge(flags)
	if err := cfg.Validate(); err != nil {
		return nil, exitWith(ExitConfigError, err)
	}
	return cfg, nil
}

// openRenderer creates the configured renderer and the writer it renders
// to. The returned close function must be called once rendering is done.
func openRenderer(cmd *cobra.Command, cfg *config.Config) (recorder.Renderer, func() error, error) {
	var w io.Writer = cmd.OutOrStdout()
	closeFn := func() error { return nil }

	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, nil, exitWith(ExitConfigError, err)
		}
		w = file
		closeFn = file.Close
	}

	renderer, err := output.New(cfg.Renderer, w, cfg.GetNoColor())
	if err != nil {
		_ = closeFn()
		return nil, nil, exitWith(ExitConfigError, err)
	}
	return renderer, closeFn, nil
}
