// Package main provides the provably-fair rock-paper-scissors game.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	fairrpscmd "github.com/louisbranch/fairrps/internal/cmd/fairrps"
	"github.com/louisbranch/fairrps/internal/platform/config"
	apperrors "github.com/louisbranch/fairrps/internal/platform/errors"
)

func main() {
	cfg, err := fairrpscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(apperrors.ExitUsage, "parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fairrpscmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		config.ExitCodef(apperrors.ExitCode(err), "fairrps: %v", err)
	}
}
