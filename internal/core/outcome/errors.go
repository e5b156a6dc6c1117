package outcome

import (
	"errors"
	"strconv"

	apperrors "github.com/louisbranch/fairrps/internal/platform/errors"
)

// MinMoves is the smallest playable move set.
const MinMoves = 3

// ErrTooFewMoves indicates a move set with fewer than MinMoves labels.
var ErrTooFewMoves = errors.New("at least three moves are required")

// ErrEvenMoveCount indicates a move set with an even number of labels.
var ErrEvenMoveCount = errors.New("the number of moves must be odd")

// ErrDuplicateMove indicates two labels in a move set compare equal.
var ErrDuplicateMove = errors.New("moves must be unique")

// ErrRankOutOfRange indicates a rank outside [0, N).
var ErrRankOutOfRange = errors.New("move rank out of range")

func invalidMoveSet(cause error, metadata map[string]string) error {
	return apperrors.WrapWithMetadata(apperrors.CodeInvalidMoveSet, cause.Error(), metadata, cause)
}

func validate(labels []string) error {
	n := len(labels)
	count := map[string]string{"Count": strconv.Itoa(n)}
	if n < MinMoves {
		return invalidMoveSet(ErrTooFewMoves, count)
	}
	if n%2 == 0 {
		return invalidMoveSet(ErrEvenMoveCount, count)
	}
	seen := make(map[string]int, n)
	for i, label := range labels {
		if first, ok := seen[label]; ok {
			return invalidMoveSet(ErrDuplicateMove, map[string]string{
				"Move":   label,
				"First":  strconv.Itoa(first + 1),
				"Second": strconv.Itoa(i + 1),
			})
		}
		seen[label] = i
	}
	return nil
}
