package periodic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	g := Build(canonical(t), DefaultGroupMap())

	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"hydrogen", Position{0, 0}, "H"},
		{"helium", Position{0, 17}, "He"},
		{"gap", Position{0, 5}, ""},
		{"lanthanum under group 3", Position{LanthanideRow, FBlockOffset}, "La"},
		{"lutetium", Position{LanthanideRow, FBlockOffset + 14}, "Lu"},
		{"left of f-block", Position{LanthanideRow, 1}, ""},
		{"right of f-block", Position{ActinideRow, 17}, ""},
		{"lawrencium", Position{ActinideRow, 16}, "Lr"},
		{"below table", Position{DisplayRows, 0}, ""},
		{"negative col", Position{0, -1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := g.At(tt.pos)
			if tt.want == "" {
				assert.Nil(t, e)
				return
			}
			require.NotNil(t, e)
			assert.Equal(t, tt.want, e.Symbol)
		})
	}
}

func TestLocate(t *testing.T) {
	g := Build(canonical(t), DefaultGroupMap())

	p, ok := g.Locate(72)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 5, Col: 3}, p)

	p, ok = g.Locate(92)
	require.True(t, ok)
	assert.Equal(t, Position{Row: ActinideRow, Col: FBlockOffset + 3}, p)

	_, ok = g.Locate(500)
	assert.False(t, ok)
}

func TestFirst(t *testing.T) {
	g := Build(canonical(t), DefaultGroupMap())
	p, ok := g.First()
	require.True(t, ok)
	assert.Equal(t, Position{0, 0}, p)

	empty := Build(nil, DefaultGroupMap())
	_, ok = empty.First()
	assert.False(t, ok)
}

func TestLast(t *testing.T) {
	g := Build(canonical(t), DefaultGroupMap())
	p, ok := g.Last()
	require.True(t, ok)
	assert.Equal(t, Position{Row: 6, Col: 17}, p)
	assert.Equal(t, "Og", g.At(p).Symbol)

	empty := Build(nil, DefaultGroupMap())
	_, ok = empty.Last()
	assert.False(t, ok)
}

func TestStep(t *testing.T) {
	g := Build(canonical(t), DefaultGroupMap())

	tests := []struct {
		name string
		from Position
		dir  Direction
		want Position
	}{
		{"H right jumps the gap to He", Position{0, 0}, Right, Position{0, 17}},
		{"He right stays", Position{0, 17}, Right, Position{0, 17}},
		{"H left stays", Position{0, 0}, Left, Position{0, 0}},
		{"H down to Li", Position{0, 0}, Down, Position{1, 0}},
		{"H up stays", Position{0, 0}, Up, Position{0, 0}},
		{"Be down to Mg", Position{1, 1}, Down, Position{2, 1}},
		{"B up moves to nearest period 1 element", Position{1, 12}, Up, Position{0, 17}},
		{"Ba right skips to Hf", Position{5, 1}, Right, Position{5, 3}},
		{"Ra down into lanthanide row", Position{6, 1}, Down, Position{LanthanideRow, FBlockOffset}},
		{"La down to Ac", Position{LanthanideRow, FBlockOffset}, Down, Position{ActinideRow, FBlockOffset}},
		{"Ac down stays", Position{ActinideRow, FBlockOffset}, Down, Position{ActinideRow, FBlockOffset}},
		{"Lu up to Og column", Position{LanthanideRow, 16}, Up, Position{6, 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Step(tt.from, tt.dir))
		})
	}
}
