package round

import (
	"context"

	"github.com/louisbranch/fairrps/internal/core/commit"
	"github.com/louisbranch/fairrps/internal/core/outcome"
)

// Committer generates round keys and commitment tags.
type Committer interface {
	GenerateKey() (commit.Key, error)
	Commit(move string, key commit.Key) string
}

// InputSource yields the player's raw tokens one at a time.
//
// Next blocks until a token is available, ctx is done, or input ends. It
// returns io.EOF when no more tokens will arrive.
type InputSource interface {
	Next(ctx context.Context) (string, error)
}

// Presenter shows the game to the player.
type Presenter interface {
	Commitment(tag string) error
	Menu(moves outcome.MoveSet) error
	Prompt() error
	Table(rows [][]string) error
	InvalidInput(token string) error
	Exit() error
	Result(res Resolution) error
}
