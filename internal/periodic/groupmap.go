package periodic

// GroupMap assigns the official IUPAC group (1..18) to main-block atomic
// numbers. f-block numbers are absent: those elements never occupy a
// main-table column. A GroupMap is treated as immutable once built.
type GroupMap map[int]int

// Group returns the official group for an atomic number.
func (g GroupMap) Group(number int) (int, bool) {
	group, ok := g[number]
	return group, ok
}

// DefaultGroupMap returns the IUPAC column assignment for the canonical
// table. Each call returns a fresh copy.
func DefaultGroupMap() GroupMap {
	g := make(GroupMap, 88)

	// Periods 1-3: s and p blocks only.
	g[1], g[2] = 1, 18
	g[3], g[4] = 1, 2
	g[11], g[12] = 1, 2
	for i := range 6 {
		g[5+i] = 13 + i
		g[13+i] = 13 + i
	}

	// Periods 4-5: full d block between the s and p blocks.
	for _, start := range []int{19, 37} {
		for i := range 18 {
			g[start+i] = 1 + i
		}
	}

	// Periods 6-7: s block, then d and p blocks after the f-block break.
	for _, p := range []struct{ sStart, dStart int }{{55, 72}, {87, 104}} {
		g[p.sStart], g[p.sStart+1] = 1, 2
		for i := range 15 {
			g[p.dStart+i] = 4 + i
		}
	}

	return g
}
