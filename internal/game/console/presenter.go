package console

import (
	"fmt"
	"io"

	"github.com/louisbranch/fairrps/internal/core/outcome"
	"github.com/louisbranch/fairrps/internal/game/round"
)

// Messages shown to the player.
const (
	MenuHeader     = "Available moves:"
	MenuExit       = "0 - exit"
	MenuHelp       = "? - help"
	PromptText     = "Enter your move:"
	InvalidText    = "Invalid input. Please try again."
	ExitText       = "Exiting the game."
	CommitmentLine = "HMAC: %s"
	RevealLine     = "HMAC key: %s"
)

// Presenter writes the game protocol to an output stream, one message per
// line.
type Presenter struct {
	w io.Writer
}

// NewPresenter returns a Presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	if w == nil {
		w = io.Discard
	}
	return &Presenter{w: w}
}

var _ round.Presenter = (*Presenter)(nil)

func (p *Presenter) lines(lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.w, l); err != nil {
			return err
		}
	}
	return nil
}

// Commitment shows the tag of the hidden computer move.
func (p *Presenter) Commitment(tag string) error {
	return p.lines(fmt.Sprintf(CommitmentLine, tag))
}

// Menu lists the moves with their 1-based menu numbers.
func (p *Presenter) Menu(moves outcome.MoveSet) error {
	out := make([]string, 0, moves.Len()+3)
	out = append(out, MenuHeader)
	for i, label := range moves.Labels() {
		out = append(out, fmt.Sprintf("%d - %s", i+1, label))
	}
	out = append(out, MenuExit, MenuHelp)
	return p.lines(out...)
}

func (p *Presenter) Prompt() error {
	return p.lines(PromptText)
}

// Table shows the outcome table.
func (p *Presenter) Table(rows [][]string) error {
	return p.lines(FormatTable(rows)...)
}

func (p *Presenter) InvalidInput(string) error {
	return p.lines(InvalidText)
}

func (p *Presenter) Exit() error {
	return p.lines(ExitText)
}

// Result shows both moves, the outcome and the revealed key.
func (p *Presenter) Result(res round.Resolution) error {
	return p.lines(
		"Your move: "+res.HumanMove,
		"Computer move: "+res.ComputerMove,
		res.Result.String(),
		res.Result.Sentence(),
		fmt.Sprintf(RevealLine, res.Key),
	)
}
