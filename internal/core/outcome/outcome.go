package outcome

// Outcome is the result of one move against another, seen from the first.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

// String returns the label shown in the outcome table.
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "Draw"
	case Win:
		return "Win!"
	case Lose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// Sentence returns the human-facing summary for a player who got o.
func (o Outcome) Sentence() string {
	switch o {
	case Win:
		return "You win!"
	case Lose:
		return "You lose!"
	default:
		return "It's a draw!"
	}
}

// Invert returns the same result from the opponent's side.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Lose
	case Lose:
		return Win
	default:
		return o
	}
}

// Compare decides a against b for a move set of n moves.
//
// a wins when b lies within the Half moves after a, walking forward and
// wrapping at n; otherwise a loses. Equal ranks draw. n must be odd and ranks
// must be in [0, n); Compare does not check either.
func Compare(n, a, b int) Outcome {
	if a == b {
		return Draw
	}
	half := (n - 1) / 2
	distance := ((b-a)%n + n) % n
	if distance >= 1 && distance <= half {
		return Win
	}
	return Lose
}
