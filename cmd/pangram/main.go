// Command pangram reads one line from standard input and prints true if it
// contains every letter of the English alphabet, false otherwise.
//
// Pass --version to print build information instead.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dendrascience/katas/internal/input"
	"github.com/dendrascience/katas/internal/logging"
	"github.com/dendrascience/katas/kata"
	"github.com/dendrascience/katas/version"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const appName = "pangram"

func main() {
	logger, err := logging.New(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Fatal("pangram failed", zap.Error(err))
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	showVersion := flags.BoolP("version", "v", false, "Show version information and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		version.Fprint(out, appName)
		return nil
	}

	line, err := input.ReadLine(in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, kata.IsPangram(line))
	return err
}
