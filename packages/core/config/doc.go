// Package config handles configuration loading and management for green.
//
// It provides functionality for:
//   - Loading configuration from .green.yaml, green.yaml or .greenrc
//   - Default configuration values
//   - Merging file settings with command-line overrides
package config
