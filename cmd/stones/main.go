// Command stones reads "TOTAL STEP..." from standard input and prints how
// many of the stones 1..TOTAL no step size lands on.
//
//	$ echo "6 3 2" | stones
//	2
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

const appName = "stones"

func main() {
	logger, err := logging.New(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Fatal("stones failed", zap.Error(err))
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
	total, steps, err := input.ParseStones(line)
	if err != nil {
		return err
	}
	count, err := kata.CountUnvisited(total, steps)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, count)
	return err
}
