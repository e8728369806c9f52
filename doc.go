// Package main provides the katas command-line interface.
//
// katas runs three small exercises: the digit sum, product and absolute
// difference of a number, the pangram check of a text, and the count of stones
// no periodic bird ever lands on. The algorithms live in package kata; this
// binary parses input, prints results and runs YAML regression case files.
//
// The main binary supports multiple subcommands:
//   - digits: Analyze the decimal digits of a number
//   - pangram: Check whether a text uses every letter of the alphabet
//   - stones: Count unvisited stones
//   - check: Run a regression case file
//   - seed: Generate a regression case file
//
// The cmd directory holds single-purpose programs that read one line of
// standard input and print one line of output.
package main
