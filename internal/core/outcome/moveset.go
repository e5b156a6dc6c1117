package outcome

// MoveSet is an immutable, ordered set of distinct move labels.
// The zero value is not playable; build one with NewMoveSet.
type MoveSet struct {
	labels []string
	ranks  map[string]int
}

// NewMoveSet validates labels and returns a MoveSet that owns a copy of them.
//
// Labels are compared exactly, so "Rock" and "rock" are different moves.
// The returned error carries the INVALID_MOVE_SET code and wraps one of
// ErrTooFewMoves, ErrEvenMoveCount or ErrDuplicateMove.
func NewMoveSet(labels []string) (MoveSet, error) {
	if err := validate(labels); err != nil {
		return MoveSet{}, err
	}
	owned := make([]string, len(labels))
	copy(owned, labels)
	ranks := make(map[string]int, len(owned))
	for i, label := range owned {
		ranks[label] = i
	}
	return MoveSet{labels: owned, ranks: ranks}, nil
}

// Len returns the number of moves.
func (m MoveSet) Len() int {
	return len(m.labels)
}

// Half returns how many moves each move beats, (N-1)/2.
func (m MoveSet) Half() int {
	return (len(m.labels) - 1) / 2
}

// Label returns the label at rank.
func (m MoveSet) Label(rank int) (string, error) {
	if rank < 0 || rank >= len(m.labels) {
		return "", ErrRankOutOfRange
	}
	return m.labels[rank], nil
}

// rankOf returns the 0-based rank of label.
func (m MoveSet) rankOf(label string) (int, bool) {
	rank, ok := m.ranks[label]
	return rank, ok
}

// Labels returns a copy of the labels in rank order.
func (m MoveSet) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}
