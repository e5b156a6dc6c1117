// Package verify recomputes a published commitment from a revealed move and
// key so a player can check the computer did not change its move.
package verify

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/fairrps/internal/core/commit"
	apperrors "github.com/louisbranch/fairrps/internal/platform/errors"
)

// KeyUsage describes the -key flag. The HMAC is keyed with the bytes the hex
// string decodes to, not with the hex text itself.
const KeyUsage = "revealed HMAC key as hex; the HMAC is keyed with the decoded bytes, not the hex text " +
	"(openssl: -macopt hexkey:<key>)"

// Config holds the revealed values to check.
type Config struct {
	Move string
	Key  string
	HMAC string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Move, "move", "", "revealed computer move")
	fs.StringVar(&cfg.Key, "key", "", KeyUsage)
	fs.StringVar(&cfg.HMAC, "hmac", "", "HMAC published before your move (hex)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run checks the commitment and writes the verdict to out. A mismatch is
// reported on out and returned as a COMMITMENT_MISMATCH error.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.Move == "" {
		return apperrors.New(apperrors.CodeInvalidConfig, "move is required")
	}
	if strings.TrimSpace(cfg.HMAC) == "" {
		return apperrors.New(apperrors.CodeInvalidConfig, "hmac is required")
	}
	key, err := commit.ParseKey(cfg.Key)
	if err != nil {
		return err
	}

	if commit.Verify(cfg.Move, key, cfg.HMAC) {
		_, err := fmt.Fprintln(out, "OK")
		return err
	}
	if _, err := fmt.Fprintf(out, "MISMATCH\nexpected HMAC: %s\n", commit.Commit(cfg.Move, key)); err != nil {
		return err
	}
	return apperrors.New(apperrors.CodeCommitmentMismatch, "commitment does not match the revealed move and key")
}
