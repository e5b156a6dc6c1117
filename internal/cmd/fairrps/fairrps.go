// Package fairrps parses game command flags and runs the interactive game.
package fairrps

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/fairrps/internal/core/commit"
	"github.com/louisbranch/fairrps/internal/core/outcome"
	"github.com/louisbranch/fairrps/internal/game/console"
	"github.com/louisbranch/fairrps/internal/game/round"
	entrypoint "github.com/louisbranch/fairrps/internal/platform/cmd"
	apperrors "github.com/louisbranch/fairrps/internal/platform/errors"
	"github.com/louisbranch/fairrps/internal/platform/timeouts"
	"github.com/louisbranch/fairrps/internal/random"
)

// UsageText is shown when the move arguments cannot form a game.
const UsageText = "Invalid arguments. Please provide an odd number of unique moves."

// ExampleText shows a valid invocation.
const ExampleText = "Example: fairrps -rounds 3 rock paper scissors lizard spock"

// LogPrefix tags verbose log lines.
const LogPrefix = "[FAIRRPS] "

// Config holds game command configuration.
type Config struct {
	Rounds      int           `env:"ROUNDS"       envDefault:"1"`
	KeyBytes    int           `env:"KEY_BYTES"    envDefault:"32"`
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" envDefault:"0s"`
	Verbose     bool          `env:"VERBOSE"`

	// Moves are the positional arguments, in rank order.
	Moves []string `env:"-"`
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "rounds to play (0 plays until exit)")
	fs.IntVar(&cfg.KeyBytes, "key-bytes", cfg.KeyBytes, "HMAC key length in bytes (at least 32)")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "end the game when no move arrives in time (0 disables)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log round lifecycle to stderr")
}

// ParseConfig parses environment and flags into a Config. Arguments left
// after the flags are the moves. Flags must come before the moves; a move
// starting with "-" is only accepted after a "--" terminator.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	cfg.Moves = fs.Args()
	if !afterTerminator(args, cfg.Moves) {
		for _, move := range cfg.Moves {
			if len(move) > 1 && strings.HasPrefix(move, "-") {
				return Config{}, apperrors.WithMetadata(apperrors.CodeInvalidConfig,
					fmt.Sprintf("flag %q given after the moves; put flags first or separate moves with --", move),
					map[string]string{"Arg": move})
			}
		}
	}
	return cfg, nil
}

// afterTerminator reports whether flag parsing stopped at "--".
func afterTerminator(args, rest []string) bool {
	i := len(args) - len(rest) - 1
	return i >= 0 && args[i] == "--"
}

// Validate checks the settings that do not depend on the moves.
func (c Config) Validate() error {
	if c.Rounds < 0 {
		return apperrors.New(apperrors.CodeInvalidConfig, "rounds must not be negative")
	}
	if c.KeyBytes < commit.MinKeySize {
		return apperrors.New(apperrors.CodeInvalidConfig,
			fmt.Sprintf("key bytes must be at least %d", commit.MinKeySize))
	}
	if c.IdleTimeout < 0 || (c.IdleTimeout > 0 && c.IdleTimeout < timeouts.MinIdleInput) {
		return apperrors.New(apperrors.CodeInvalidConfig,
			fmt.Sprintf("idle timeout must be 0 or at least %s", timeouts.MinIdleInput))
	}
	return nil
}

// Run validates the moves and plays the configured rounds, reading tokens
// from in and writing the game to out. Diagnostics go to errOut.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	moves, err := outcome.NewMoveSet(cfg.Moves)
	if err != nil {
		fmt.Fprintln(errOut, UsageText)
		fmt.Fprintln(errOut, ExampleText)
		return err
	}
	relation, err := outcome.BuildRelation(moves)
	if err != nil {
		return err
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		return play(ctx, cfg, relation, in, out, errOut)
	})
}

func play(ctx context.Context, cfg Config, relation *outcome.Relation, in io.Reader, out, errOut io.Writer) error {
	logger := log.New(io.Discard, LogPrefix, 0)
	if cfg.Verbose {
		logger = log.New(errOut, LogPrefix, log.LstdFlags)
		logRelation(logger, relation)
	}

	committer, err := commit.NewService(cfg.KeyBytes)
	if err != nil {
		return err
	}
	ctrl, err := round.NewController(round.Config{
		Relation:    relation,
		Index:       random.Crypto{},
		Committer:   committer,
		Input:       console.NewLineInput(in),
		Presenter:   console.NewPresenter(out),
		Rounds:      cfg.Rounds,
		IdleTimeout: cfg.IdleTimeout,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	played, err := ctrl.Play(ctx)
	logger.Printf("played %d round(s)", len(played))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func logRelation(logger *log.Logger, relation *outcome.Relation) {
	moves := relation.Moves()
	for rank := 0; rank < moves.Len(); rank++ {
		label, _ := moves.Label(rank)
		logger.Printf("%s beats %s; loses to %s", label,
			labelList(moves, relation.Beats(rank)), labelList(moves, relation.LosesTo(rank)))
	}
}

func labelList(moves outcome.MoveSet, ranks []int) string {
	labels := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		l, _ := moves.Label(rank)
		labels = append(labels, l)
	}
	return strings.Join(labels, ", ")
}
