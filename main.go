package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/katas/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, cmd.NewRootCmd()); err != nil {
		stop()
		os.Exit(1)
	}
}
