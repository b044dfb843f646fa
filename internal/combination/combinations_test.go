package combination

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goframe/internal/model"
)

func structure(t *testing.T) (*model.Structure, *model.Node) {
	t.Helper()
	s := model.NewStructure("combos")
	n, err := s.AddNode("A", 0, 0, 0, model.Free)
	require.NoError(t, err)

	dead := model.NewLoadCase("dead")
	dead.Category = Dead
	dead.SelfWeight = 1
	dead.AddPointLoad(n, model.Load{0, 0, -10})
	dead.DisplacementBounds[n] = 0.02
	require.NoError(t, s.AddLoadCase(dead))

	live := model.NewLoadCase("live")
	live.Category = Live
	live.AddPointLoad(n, model.Load{1, 0, -5})
	live.DisplacementBounds[n] = 0.01
	require.NoError(t, s.AddLoadCase(live))

	return s, n
}

func TestBuild(t *testing.T) {
	s, n := structure(t)

	lc, err := Build(s, model.Combination{Name: "ULS", Factors: map[string]float64{"dead": 1.2, "live": 1.6}})
	require.NoError(t, err)

	assert.Equal(t, "ULS", lc.Name)
	assert.Equal(t, "combination", lc.Category)
	assert.InDelta(t, 1.2, lc.SelfWeight, 1e-12)
	got := lc.PointLoads[n]
	assert.InDelta(t, 1.6, got[0], 1e-12)
	assert.InDelta(t, -20, got[2], 1e-12)
	assert.Equal(t, 0.01, lc.DisplacementBounds[n], "the tightest bound wins")

	// the source load cases are untouched
	dead, _ := s.LoadCase("dead")
	assert.Equal(t, -10.0, dead.PointLoads[n][2])
}

func TestBuildErrors(t *testing.T) {
	s, _ := structure(t)

	_, err := Build(s, model.Combination{Factors: map[string]float64{"dead": 1}})
	assert.Error(t, err)

	_, err = Build(s, model.Combination{Name: "empty"})
	assert.Error(t, err)

	_, err = Build(s, model.Combination{Name: "bad", Factors: map[string]float64{"snow": 1}})
	assert.True(t, errors.Is(err, model.ErrUnknownLoadCase))
}

func TestFromTemplates(t *testing.T) {
	s, _ := structure(t)

	combos := FromTemplates(s, Gravity, "G")
	require.Len(t, combos, 2)
	assert.Equal(t, "G1: 1.4D", combos[0].Name)
	assert.Equal(t, map[string]float64{"dead": 1.4}, combos[0].Factors)
	assert.Equal(t, map[string]float64{"dead": 1.2, "live": 1.6}, combos[1].Factors)

	// every strength template has a dead load term
	strength := FromTemplates(s, Strength, "U")
	assert.Len(t, strength, len(Strength))
}

func TestExpand(t *testing.T) {
	s, n := structure(t)
	s.Combinations = []model.Combination{
		{Name: "SLS", Factors: map[string]float64{"dead": 1, "live": 1}},
	}
	require.NoError(t, Expand(s))

	lc, err := s.LoadCase("SLS")
	require.NoError(t, err)
	assert.InDelta(t, -15, lc.PointLoads[n][2], 1e-12)

	// expanding twice collides with the registered name
	assert.Error(t, Expand(s))
}
