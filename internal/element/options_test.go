package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroups_NumericThenLabels(t *testing.T) {
	elements, err := Default()
	require.NoError(t, err)

	groups := Groups(elements)
	require.Len(t, groups, 20)
	assert.Equal(t, "1", groups[0])
	assert.Equal(t, "2", groups[1])
	assert.Equal(t, "10", groups[9])
	assert.Equal(t, "18", groups[17])
	assert.Equal(t, []string{GroupLanthanide, GroupActinide}, groups[18:])
}

func TestStates_Sorted(t *testing.T) {
	elements, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"Gas", "Liquid", "Solid", "Unknown"}, States(elements))
}

func TestCategories_Sorted(t *testing.T) {
	elements := []Element{
		{Category: CategoryNobleGas},
		{Category: CategoryAlkaliMetal},
		{Category: CategoryNobleGas},
		{Category: CategoryHalogen},
	}
	assert.Equal(t,
		[]Category{CategoryAlkaliMetal, CategoryHalogen, CategoryNobleGas},
		Categories(elements))
}

func TestCategory_IsKnown(t *testing.T) {
	assert.True(t, CategoryHalogen.IsKnown())
	assert.False(t, CategoryUnknown.IsKnown())
	assert.False(t, Category("Plasma").IsKnown())
}
