// Package main checks a revealed move and key against a published HMAC.
package main

import (
	"flag"
	"os"

	"github.com/louisbranch/fairrps/internal/platform/config"
	apperrors "github.com/louisbranch/fairrps/internal/platform/errors"
	"github.com/louisbranch/fairrps/internal/tools/verify"
)

func main() {
	cfg, err := verify.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(apperrors.ExitUsage, "parse flags: %v", err)
	}
	if err := verify.Run(cfg, os.Stdout); err != nil {
		config.ExitCodef(apperrors.ExitCode(err), "verify: %v", err)
	}
}
