package outcome

import "fmt"

// TableCorner is the label in the top-left cell of the outcome table.
const TableCorner = `\`

// Relation is the precomputed outcome of every ordered pair of moves.
type Relation struct {
	moves MoveSet
	cells []Outcome // n*n, row-major by first move
}

// BuildRelation computes the outcome of every ordered pair in moves.
//
// The move set is validated again so a zero MoveSet, or one assembled
// without NewMoveSet, cannot produce a relation.
func BuildRelation(moves MoveSet) (*Relation, error) {
	if err := validate(moves.labels); err != nil {
		return nil, err
	}
	n := moves.Len()
	cells := make([]Outcome, n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			cells[a*n+b] = Compare(n, a, b)
		}
	}
	return &Relation{moves: moves, cells: cells}, nil
}

// Moves returns the move set the relation was built from.
func (r *Relation) Moves() MoveSet {
	return r.moves
}

// At returns the outcome of move a against move b, from a's side.
func (r *Relation) At(a, b int) (Outcome, error) {
	n := r.moves.Len()
	if a < 0 || a >= n || b < 0 || b >= n {
		return Draw, fmt.Errorf("%w: %d, %d (moves: %d)", ErrRankOutOfRange, a, b, n)
	}
	return r.cells[a*n+b], nil
}

// Beats returns the ranks that rank wins against, in rank order.
func (r *Relation) Beats(rank int) []int {
	return r.collect(rank, Win)
}

// LosesTo returns the ranks that rank loses against, in rank order.
func (r *Relation) LosesTo(rank int) []int {
	return r.collect(rank, Lose)
}

func (r *Relation) collect(rank int, want Outcome) []int {
	n := r.moves.Len()
	if rank < 0 || rank >= n {
		return nil
	}
	out := make([]int, 0, r.moves.Half())
	for b := 0; b < n; b++ {
		if r.cells[rank*n+b] == want {
			out = append(out, b)
		}
	}
	return out
}

// Table returns the outcome table as rows of cells.
//
// The header row is TableCorner followed by every label. Each following row
// starts with a label and lists its outcome against every move in rank order.
func (r *Relation) Table() [][]string {
	n := r.moves.Len()
	table := make([][]string, 0, n+1)

	header := make([]string, 0, n+1)
	header = append(header, TableCorner)
	header = append(header, r.moves.labels...)
	table = append(table, header)

	for a := 0; a < n; a++ {
		row := make([]string, 0, n+1)
		row = append(row, r.moves.labels[a])
		for b := 0; b < n; b++ {
			row = append(row, r.cells[a*n+b].String())
		}
		table = append(table, row)
	}
	return table
}
