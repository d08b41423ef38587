package periodic

import "github.com/llehouerou/periodic/internal/element"

// Display layout: the main table occupies rows 0..6, the lanthanide row is
// row 7 and the actinide row is row 8. f-block slot i is drawn under
// column FBlockOffset+i, starting beneath group 3.
const (
	DisplayRows    = Periods + 2
	LanthanideRow  = Periods
	ActinideRow    = Periods + 1
	FBlockOffset   = 2
	DisplayColumns = Groups
)

// Position is a cell of the display layout.
type Position struct {
	Row, Col int
}

// Direction is a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// At returns the element drawn at a display position, or nil.
func (g *Grid) At(p Position) *element.Element {
	if p.Col < 0 || p.Col >= DisplayColumns {
		return nil
	}
	switch {
	case p.Row >= 0 && p.Row < Periods:
		return g.Main[p.Row][p.Col]
	case p.Row == LanthanideRow, p.Row == ActinideRow:
		i := p.Col - FBlockOffset
		if i < 0 || i >= FBlockSize {
			return nil
		}
		if p.Row == LanthanideRow {
			return g.Lanthanides[i]
		}
		return g.Actinides[i]
	default:
		return nil
	}
}

// Locate returns the display position of the element with the given
// atomic number.
func (g *Grid) Locate(number int) (Position, bool) {
	for row := range DisplayRows {
		for col := range DisplayColumns {
			p := Position{Row: row, Col: col}
			if e := g.At(p); e != nil && e.Number == number {
				return p, true
			}
		}
	}
	return Position{}, false
}

// First returns the first occupied cell in reading order.
func (g *Grid) First() (Position, bool) {
	for row := range DisplayRows {
		for col := range DisplayColumns {
			p := Position{Row: row, Col: col}
			if g.At(p) != nil {
				return p, true
			}
		}
	}
	return Position{}, false
}

// Last returns the cell of the highest atomic number on the table.
func (g *Grid) Last() (Position, bool) {
	var best *element.Element
	var at Position
	for row := range DisplayRows {
		for col := range DisplayColumns {
			p := Position{Row: row, Col: col}
			if e := g.At(p); e != nil && (best == nil || e.Number > best.Number) {
				best, at = e, p
			}
		}
	}
	return at, best != nil
}

// Step moves from p to the nearest occupied cell in direction d.
// Horizontal moves skip gaps within the row. Vertical moves prefer the same
// column and otherwise the closest occupied column of the next row that has
// any element. When nothing lies in that direction, p is returned unchanged.
func (g *Grid) Step(p Position, d Direction) Position {
	switch d {
	case Left, Right:
		delta := 1
		if d == Left {
			delta = -1
		}
		for col := p.Col + delta; col >= 0 && col < DisplayColumns; col += delta {
			next := Position{Row: p.Row, Col: col}
			if g.At(next) != nil {
				return next
			}
		}
	case Up, Down:
		delta := 1
		if d == Up {
			delta = -1
		}
		for row := p.Row + delta; row >= 0 && row < DisplayRows; row += delta {
			if next, ok := g.nearestInRow(row, p.Col); ok {
				return next
			}
		}
	}
	return p
}

func (g *Grid) nearestInRow(row, col int) (Position, bool) {
	for dist := range DisplayColumns {
		for _, c := range []int{col - dist, col + dist} {
			p := Position{Row: row, Col: c}
			if g.At(p) != nil {
				return p, true
			}
		}
	}
	return Position{}, false
}
