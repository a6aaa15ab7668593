// Package main provides the zhusuan command line for practicing abacus
// mnemonics.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/cli"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/config"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cfg)
	if err := root.ExecuteContext(ctx); err != nil {
		// Commands report their own errors; cobra usage errors do not.
		code := cli.GetExitCode(err)
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			code = cli.ExitCommandError
		}
		stop()
		os.Exit(code)
	}
}
