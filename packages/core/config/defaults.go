package config

// RendererAuto picks text or HTML from the detected host.
const RendererAuto = "auto"

// DefaultAddr is where green serve listens unless configured.
const DefaultAddr = "127.0.0.1:8080"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Renderer: RendererAuto,
		Addr:     DefaultAddr,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Renderer == defaults.Renderer &&
		c.NoColor == nil &&
		c.OutputFile == defaults.OutputFile &&
		c.Addr == defaults.Addr &&
		len(c.Suites) == 0
}
