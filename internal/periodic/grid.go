// Package periodic lays chemical elements out on the IUPAC periodic table.
package periodic

import (
	"github.com/llehouerou/periodic/internal/element"
)

// Table dimensions.
const (
	Periods    = 7
	Groups     = 18
	FBlockSize = 15
)

// Atomic number ranges of the f-block rows.
const (
	LanthanideStart = 57
	LanthanideEnd   = 71
	ActinideStart   = 89
	ActinideEnd     = 103
)

// Block identifies which part of the table an atomic number belongs to.
type Block int

const (
	BlockNone Block = iota
	BlockMain
	BlockLanthanide
	BlockActinide
)

// BlockOf classifies an atomic number. The three blocks are disjoint and
// together cover 1..118; anything else is BlockNone.
func BlockOf(number int) Block {
	switch {
	case number >= LanthanideStart && number <= LanthanideEnd:
		return BlockLanthanide
	case number >= ActinideStart && number <= ActinideEnd:
		return BlockActinide
	case number >= 1 && number <= element.MaxNumber:
		return BlockMain
	default:
		return BlockNone
	}
}

// Grid is the placement of a dataset on the table. Empty cells are nil.
// A Grid is built once and not modified afterwards.
type Grid struct {
	Main        [Periods][Groups]*element.Element
	Lanthanides [FBlockSize]*element.Element
	Actinides   [FBlockSize]*element.Element

	// Dropped lists atomic numbers that could not be placed: outside
	// 1..118, no group mapping, period outside 1..7, or displaced by a later
	// element claiming the same cell.
	Dropped []int
}

// Build places every element of the dataset. It never fails: elements that
// cannot be placed are left out of the grid and recorded in Dropped.
// Building is deterministic; the same input always yields the same Grid.
func Build(elements []element.Element, groups GroupMap) Grid {
	var g Grid
	for i := range elements {
		e := &elements[i]
		switch BlockOf(e.Number) {
		case BlockMain:
			group, ok := groups.Group(e.Number)
			if !ok || group < 1 || group > Groups || e.Period < 1 || e.Period > Periods {
				g.Dropped = append(g.Dropped, e.Number)
				continue
			}
			g.place(&g.Main[e.Period-1][group-1], e)
		case BlockLanthanide:
			g.place(&g.Lanthanides[e.Number-LanthanideStart], e)
		case BlockActinide:
			g.place(&g.Actinides[e.Number-ActinideStart], e)
		default:
			g.Dropped = append(g.Dropped, e.Number)
		}
	}
	return g
}

// place assigns e to the cell, recording any element it displaces.
func (g *Grid) place(cell **element.Element, e *element.Element) {
	if *cell != nil {
		g.Dropped = append(g.Dropped, (*cell).Number)
	}
	*cell = e
}

// Elements returns all placed elements, main table first in reading
// order, then lanthanides and actinides.
func (g *Grid) Elements() []*element.Element {
	var out []*element.Element
	for _, row := range g.Main {
		for _, e := range row {
			if e != nil {
				out = append(out, e)
			}
		}
	}
	for _, row := range [][FBlockSize]*element.Element{g.Lanthanides, g.Actinides} {
		for _, e := range row {
			if e != nil {
				out = append(out, e)
			}
		}
	}
	return out
}
