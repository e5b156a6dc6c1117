// Package round runs the commit-reveal game loop against one player.
//
// Each round walks Idle → Committed → AwaitingMove and then either Resolved,
// when the player picks a move, or Terminated, when the player exits or input
// ends. The computer's move and key stay inside the Round until Resolved.
package round

import (
	"github.com/louisbranch/fairrps/internal/core/commit"
	"github.com/louisbranch/fairrps/internal/core/outcome"
)

// Round is the state of one play. It is owned by a single Controller.
type Round struct {
	id           string
	state        State
	computerRank int
	key          commit.Key
	tag          string
	humanRank    int
	result       outcome.Outcome
}

// ID returns the round identifier.
func (r *Round) ID() string {
	return r.id
}

// State returns the current lifecycle state.
func (r *Round) State() State {
	return r.state
}

// Tag returns the published commitment, empty before Committed.
func (r *Round) Tag() string {
	return r.tag
}

// Resolution is everything revealed once a round is resolved.
type Resolution struct {
	RoundID      string
	HumanRank    int
	HumanMove    string
	ComputerRank int
	ComputerMove string
	// Result is from the player's side.
	Result outcome.Outcome
	Key    commit.Key
	Tag    string
}

// Verify recomputes the commitment from the revealed move and key.
func (r Resolution) Verify() bool {
	return commit.Verify(r.ComputerMove, r.Key, r.Tag)
}
