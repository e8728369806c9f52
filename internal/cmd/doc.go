// Package cmd provides the command-line interface implementation for katas.
//
// This package contains all the subcommand implementations for the katas CLI tool.
// It uses the Cobra library for command structure, Fang for styling and error
// rendering, and Viper for flag, environment and config file settings.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, configuration and logger setup
//   - digits: Digit sum, product and absolute difference of a number
//   - pangram: Alphabet coverage of a text
//   - stones: Stones left unvisited by periodic step sizes
//   - check: Run a YAML regression case file
//   - seed: Generate a YAML regression case file
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command. Kata commands take their input from positional
// arguments, or from one line of standard input when none are given.
package cmd
