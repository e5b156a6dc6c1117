package round

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/fairrps/internal/core/outcome"
	apperrors "github.com/louisbranch/fairrps/internal/platform/errors"
	"github.com/louisbranch/fairrps/internal/platform/id"
	"github.com/louisbranch/fairrps/internal/platform/otel"
	"github.com/louisbranch/fairrps/internal/random"
)

// Reserved tokens.
const (
	TokenExit = "0"
	TokenHelp = "?"
)

// Config wires a Controller to its collaborators.
type Config struct {
	Relation  *outcome.Relation
	Index     random.IndexSource
	Committer Committer
	Input     InputSource
	Presenter Presenter

	// Rounds is how many rounds to play; 0 plays until the player exits or
	// input ends.
	Rounds int
	// IdleTimeout ends the game when the player takes longer than this to
	// send a token. Zero waits forever.
	IdleTimeout time.Duration

	Logger *log.Logger
	Tracer trace.Tracer
	NewID  func() (string, error)
}

// Controller plays rounds sequentially. It is not safe for concurrent use.
type Controller struct {
	relation  *outcome.Relation
	moves     outcome.MoveSet
	index     random.IndexSource
	committer Committer
	input     InputSource
	presenter Presenter
	rounds    int
	idle      time.Duration
	logger    *log.Logger
	tracer    trace.Tracer
	newID     func() (string, error)

	current *Round
}

// NewController validates cfg and returns a Controller.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Relation == nil {
		return nil, errors.New("relation is required")
	}
	if cfg.Index == nil {
		return nil, errors.New("index source is required")
	}
	if cfg.Committer == nil {
		return nil, errors.New("committer is required")
	}
	if cfg.Input == nil {
		return nil, errors.New("input source is required")
	}
	if cfg.Presenter == nil {
		return nil, errors.New("presenter is required")
	}
	if cfg.Rounds < 0 {
		return nil, apperrors.New(apperrors.CodeInvalidConfig, "rounds must not be negative")
	}
	if cfg.IdleTimeout < 0 {
		return nil, apperrors.New(apperrors.CodeInvalidConfig, "idle timeout must not be negative")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer()
	}
	newID := cfg.NewID
	if newID == nil {
		newID = id.NewID
	}

	return &Controller{
		relation:  cfg.Relation,
		moves:     cfg.Relation.Moves(),
		index:     cfg.Index,
		committer: cfg.Committer,
		input:     cfg.Input,
		presenter: cfg.Presenter,
		rounds:    cfg.Rounds,
		idle:      cfg.IdleTimeout,
		logger:    logger,
		tracer:    tracer,
		newID:     newID,
	}, nil
}

// Current returns the round in flight, or nil before the first round.
func (c *Controller) Current() *Round {
	return c.current
}

// Play runs rounds until the configured count is reached, the player exits,
// or input ends. It returns the resolutions of every completed round.
//
// Exiting and running out of input are normal endings and return a nil
// error. Invalid tokens are reported to the player and never returned.
func (c *Controller) Play(ctx context.Context) ([]Resolution, error) {
	var played []Resolution
	for c.rounds == 0 || len(played) < c.rounds {
		res, resolved, err := c.PlayRound(ctx)
		if err != nil {
			return played, err
		}
		if !resolved {
			return played, nil
		}
		played = append(played, res)
	}
	return played, nil
}

// PlayRound runs a single round. resolved is false when the player exited
// or input ended before a move was chosen.
func (c *Controller) PlayRound(ctx context.Context) (res Resolution, resolved bool, err error) {
	roundID, err := c.newID()
	if err != nil {
		return Resolution{}, false, fmt.Errorf("new round id: %w", err)
	}
	r := &Round{id: roundID, state: StateIdle}
	c.current = r

	ctx, span := c.tracer.Start(ctx, "round.play", trace.WithAttributes(
		attribute.String("fairrps.round.id", roundID),
		attribute.Int("fairrps.moves.count", c.moves.Len()),
	))
	defer func() {
		span.SetAttributes(attribute.String("fairrps.round.state", r.state.String()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
		}
		span.End()
	}()

	if err := c.commit(r); err != nil {
		return Resolution{}, false, err
	}
	span.AddEvent("commitment.published", trace.WithAttributes(attribute.String("fairrps.commitment.tag", r.tag)))

	if err := r.transition(StateCommitted, StateAwaitingMove); err != nil {
		return Resolution{}, false, err
	}
	if err := c.presenter.Menu(c.moves); err != nil {
		return Resolution{}, false, fmt.Errorf("show menu: %w", err)
	}

	humanRank, exited, err := c.awaitMove(ctx, r)
	if err != nil {
		return Resolution{}, false, err
	}
	if exited {
		if err := r.transition(StateAwaitingMove, StateTerminated); err != nil {
			return Resolution{}, false, err
		}
		c.logger.Printf("round %s terminated before a move was chosen", r.id)
		return Resolution{}, false, nil
	}

	res, err = c.resolve(r, humanRank)
	if err != nil {
		return Resolution{}, false, err
	}
	span.SetAttributes(
		attribute.String("fairrps.round.result", res.Result.String()),
		attribute.String("fairrps.move.human", res.HumanMove),
		attribute.String("fairrps.move.computer", res.ComputerMove),
	)
	span.AddEvent("key.revealed")
	return res, true, nil
}

// commit draws the computer's move, keys it and publishes the tag.
func (c *Controller) commit(r *Round) error {
	rank, err := c.index.Intn(c.moves.Len())
	if err != nil {
		return err
	}
	move, err := c.moves.Label(rank)
	if err != nil {
		return fmt.Errorf("computer move: %w", err)
	}
	key, err := c.committer.GenerateKey()
	if err != nil {
		return err
	}

	r.computerRank = rank
	r.key = key
	r.tag = c.committer.Commit(move, key)
	if err := r.transition(StateIdle, StateCommitted); err != nil {
		return err
	}
	c.logger.Printf("round %s committed", r.id)

	if err := c.presenter.Commitment(r.tag); err != nil {
		return fmt.Errorf("show commitment: %w", err)
	}
	return nil
}

// awaitMove reads tokens until one selects a move or ends the game.
func (c *Controller) awaitMove(ctx context.Context, r *Round) (rank int, exited bool, err error) {
	for {
		if err := c.presenter.Prompt(); err != nil {
			return 0, false, fmt.Errorf("show prompt: %w", err)
		}

		raw, err := c.next(ctx)
		if errors.Is(err, io.EOF) {
			return 0, true, nil
		}
		if err != nil {
			return 0, false, err
		}

		token := strings.TrimSpace(raw)
		switch token {
		case TokenExit:
			if err := c.presenter.Exit(); err != nil {
				return 0, false, fmt.Errorf("show exit: %w", err)
			}
			return 0, true, nil
		case TokenHelp:
			if err := c.presenter.Table(c.relation.Table()); err != nil {
				return 0, false, fmt.Errorf("show table: %w", err)
			}
			continue
		}

		rank, err := ParseMove(token, c.moves.Len())
		if err != nil {
			if !apperrors.GetCode(err).Recoverable() {
				return 0, false, err
			}
			c.logger.Printf("round %s: %v", r.id, err)
			if err := c.presenter.InvalidInput(token); err != nil {
				return 0, false, fmt.Errorf("show invalid input: %w", err)
			}
			continue
		}
		return rank, false, nil
	}
}

func (c *Controller) next(ctx context.Context) (string, error) {
	if c.idle <= 0 {
		return c.input.Next(ctx)
	}
	readCtx, cancel := context.WithTimeout(ctx, c.idle)
	defer cancel()
	token, err := c.input.Next(readCtx)
	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return "", apperrors.WrapWithMetadata(apperrors.CodeInputIdleTimeout, "no move received in time",
			map[string]string{"IdleTimeout": c.idle.String()}, err)
	}
	return token, err
}

// resolve locks in the player's move and reveals the key.
func (c *Controller) resolve(r *Round, humanRank int) (Resolution, error) {
	result, err := c.relation.At(humanRank, r.computerRank)
	if err != nil {
		return Resolution{}, err
	}
	r.humanRank = humanRank
	r.result = result
	if err := r.transition(StateAwaitingMove, StateResolved); err != nil {
		return Resolution{}, err
	}

	humanMove, _ := c.moves.Label(humanRank)
	computerMove, _ := c.moves.Label(r.computerRank)
	res := Resolution{
		RoundID:      r.id,
		HumanRank:    humanRank,
		HumanMove:    humanMove,
		ComputerRank: r.computerRank,
		ComputerMove: computerMove,
		Result:       result,
		Key:          append([]byte(nil), r.key...),
		Tag:          r.tag,
	}
	c.logger.Printf("round %s resolved: %s vs %s, player %s, computer %s",
		r.id, humanMove, computerMove, result, result.Invert())

	if err := c.presenter.Result(res); err != nil {
		return Resolution{}, fmt.Errorf("show result: %w", err)
	}
	return res, nil
}

// ParseMove converts a 1-based menu choice into a 0-based rank.
func ParseMove(token string, n int) (int, error) {
	choice, err := strconv.Atoi(token)
	if err != nil || choice < 1 || choice > n {
		return 0, apperrors.WrapWithMetadata(apperrors.CodeInvalidInputToken,
			fmt.Sprintf("invalid input %q: choose 1-%d, %s or %s", token, n, TokenExit, TokenHelp),
			map[string]string{"Token": token, "Moves": strconv.Itoa(n)}, err)
	}
	return choice - 1, nil
}
