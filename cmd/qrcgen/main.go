package main

import (
	"context"
	"os"

	"github.com/mumbleutils/qrcgen/internal/cli"
	"github.com/mumbleutils/qrcgen/internal/config"
	"github.com/mumbleutils/qrcgen/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI loads the optional tool config and runs the root command.
func runCLI(args []string) error {
	cfg, err := config.Load(os.Getenv("QRCGEN_CONFIG"))
	if err != nil {
		return err
	}

	return cli.New(cfg).Run(context.Background(), args)
}
