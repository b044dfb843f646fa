package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	g, ok := Lookup("s355")
	require.True(t, ok)
	assert.Equal(t, "S355", g.Name)
	assert.Equal(t, 355e3, g.Fy)
	assert.Equal(t, EsSteel, g.E)

	_, ok = Lookup("S999")
	assert.False(t, ok)
}

func TestAllIsSorted(t *testing.T) {
	grades := All()
	require.NotEmpty(t, grades)
	for i := 1; i < len(grades); i++ {
		prev, cur := grades[i-1], grades[i]
		if prev.Class == cur.Class {
			assert.Less(t, prev.Name, cur.Name)
		} else {
			assert.Less(t, prev.Class, cur.Class)
		}
	}

	// callers get a copy
	grades[0].Name = "changed"
	assert.NotEqual(t, "changed", All()[0].Name)
}

func TestCatalogueIsConsistent(t *testing.T) {
	for _, g := range All() {
		assert.Greater(t, g.E, 0.0, g.Name)
		assert.Greater(t, g.G, 0.0, g.Name)
		assert.Less(t, g.G, g.E, g.Name)
		assert.Greater(t, g.Density, 0.0, g.Name)
		assert.GreaterOrEqual(t, g.GammaM, 1.0, g.Name)
	}
}

func TestShearModulus(t *testing.T) {
	assert.InDelta(t, 80.77e6, ShearModulus(210e6, 0.3), 0.01e6)
	assert.Equal(t, 5.0, ShearModulus(10, 0))
}
