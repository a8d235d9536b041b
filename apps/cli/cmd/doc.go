// Package cmd implements the green CLI commands using Cobra.
//
// Available commands:
//   - run: Run the self-test suites and render the report
//   - check: Evaluate one assertion or a JSON batch file
//   - serve: Serve the HTML report over HTTP
//   - list: Show suites and operators
//   - init: Write a starter .green.yaml and batch file
//   - version: Show green version information
//
// Settings come from flags, GREEN_* environment variables, an optional
// .env file and .green.yaml, in that order of precedence.
package cmd
