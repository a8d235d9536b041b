// Package env inspects the process environment for green.
//
// It provides functionality for:
//   - Detecting whether results are rendered for a terminal or a web host
//   - Loading .env files to seed GREEN_* settings
package env
