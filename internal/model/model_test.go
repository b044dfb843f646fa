package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSupport(t *testing.T) {
	cases := map[string]Support{
		"":       Free,
		"free":   Free,
		"Pinned": Pinned,
		"fixed":  Fixed,
		"110001": {true, true, false, false, false, true},
		"xxx---": Pinned,
	}
	for code, want := range cases {
		got, err := ParseSupport(code)
		require.NoError(t, err, code)
		assert.Equal(t, want, got, code)
	}

	for _, bad := range []string{"11", "1100012", "11a000"} {
		_, err := ParseSupport(bad)
		assert.Error(t, err, bad)
	}
}

func TestSupportJSON(t *testing.T) {
	var s Support
	require.NoError(t, json.Unmarshal([]byte(`"pinned"`), &s))
	assert.Equal(t, Pinned, s)

	require.NoError(t, json.Unmarshal([]byte(`[true,false,true,false,true,false]`), &s))
	assert.Equal(t, Support{true, false, true, false, true, false}, s)
	assert.Equal(t, 3, s.FixedCount())

	assert.Error(t, json.Unmarshal([]byte(`[true]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))

	data, err := json.Marshal(Pinned)
	require.NoError(t, err)
	assert.Equal(t, `"111000"`, string(data))
}

func TestDofIndex(t *testing.T) {
	assert.False(t, Absent.Valid())
	assert.Equal(t, "-", Absent.String())

	d := At(0)
	i, ok := d.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, "0", d.String())
}

func TestDofNumbering(t *testing.T) {
	s := NewStructure("numbering")
	a, err := s.AddNode("A", 0, 0, 0, Fixed)
	require.NoError(t, err)
	b, err := s.AddNode("B", 1, 0, 0, Free)
	require.NoError(t, err)
	c, err := s.AddNode("C", 2, 0, 0, Pinned)
	require.NoError(t, err)

	assert.Equal(t, 18, s.DofCount())
	assert.Equal(t, 9, s.ReducedDofCount())
	assert.Equal(t, [6]int{6, 7, 8, 9, 10, 11}, b.GlobalDofs())

	for _, d := range a.Reduced {
		assert.False(t, d.Valid())
	}
	for k, d := range b.Reduced {
		i, ok := d.Get()
		assert.True(t, ok)
		assert.Equal(t, k, i)
	}
	assert.False(t, c.Reduced[0].Valid())
	i, _ := c.Reduced[3].Get()
	assert.Equal(t, 6, i)

	// freeing node A renumbers everything
	s.SetSupport(a, Free)
	assert.Equal(t, 15, s.ReducedDofCount())
	i, _ = b.Reduced[0].Get()
	assert.Equal(t, 6, i)

	_, err = s.AddNode("A", 5, 5, 5, Free)
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve), "duplicate ids are rejected")
}

func TestMemberUpdate(t *testing.T) {
	s := NewStructure("geometry")
	a, _ := s.AddNode("A", 0, 0, 0, Fixed)
	b, _ := s.AddNode("B", 3, 4, 0, Free)
	c, _ := s.AddNode("C", 0, 0, 2, Free)

	mat := &Material{Name: "m", E: 1, G: 1}
	sec := &CrossSection{Name: "s", Area: 1, Iy: 1, Iz: 1, It: 1}

	t.Run("horizontal", func(t *testing.T) {
		m, err := s.AddMember("AB", a, b, mat, sec, Beam)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, m.Length, 1e-12)
		assert.InDeltaSlice(t, []float64{0.6, 0.8, 0}, m.T[0][:], 1e-12)
		assert.InDeltaSlice(t, []float64{0, 0, 1}, m.T[2][:], 1e-12)
		assert.InDeltaSlice(t, []float64{-0.8, 0.6, 0}, m.T[1][:], 1e-12)
	})

	t.Run("vertical", func(t *testing.T) {
		m, err := s.AddMember("AC", a, c, mat, sec, Beam)
		require.NoError(t, err)
		dir := m.Direction()
		assert.InDeltaSlice(t, []float64{0, 0, 1}, dir[:], 1e-12)
		assert.InDeltaSlice(t, []float64{1, 0, 0}, m.T[2][:], 1e-12)
	})

	t.Run("orientation", func(t *testing.T) {
		m := &Member{ID: "o", From: a, To: b, Orientation: [3]float64{0, 0, -1}}
		require.NoError(t, m.Update())
		assert.InDeltaSlice(t, []float64{0, 0, -1}, m.T[2][:], 1e-12)
	})

	t.Run("orthonormal", func(t *testing.T) {
		m := &Member{ID: "skew", From: b, To: c, Orientation: [3]float64{1, 1, 1}}
		require.NoError(t, m.Update())
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1
				}
				assert.InDelta(t, want, dot(m.T[i], m.T[j]), 1e-12)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		assert.Error(t, (&Member{ID: "self", From: a, To: a}).Update())
		assert.Error(t, (&Member{ID: "nil", From: a}).Update())
		assert.Error(t, (&Member{ID: "par", From: a, To: b, Orientation: [3]float64{3, 4, 0}}).Update())

		d, _ := s.AddNode("D", 0, 0, 0, Free)
		assert.Error(t, (&Member{ID: "zero", From: a, To: d}).Update())
	})
}

func TestLoadCases(t *testing.T) {
	s := NewStructure("loads")
	n, _ := s.AddNode("A", 0, 0, 0, Free)

	lc := NewLoadCase("live")
	lc.AddPointLoad(n, Load{1, 0, -2})
	lc.AddPointLoad(n, Load{1, 0, -3})
	assert.Equal(t, Load{2, 0, -5}, lc.PointLoads[n])

	require.NoError(t, s.AddLoadCase(lc))
	assert.Error(t, s.AddLoadCase(NewLoadCase("live")))
	assert.Error(t, s.AddLoadCase(NewLoadCase("")))

	got, err := s.LoadCase("live")
	require.NoError(t, err)
	assert.Same(t, lc, got)

	_, err = s.LoadCase("wind")
	assert.True(t, errors.Is(err, ErrUnknownLoadCase))
}

func TestValidate(t *testing.T) {
	s := NewStructure("empty")
	assert.Error(t, s.Validate())

	a, _ := s.AddNode("A", 0, 0, 0, Free)
	b, _ := s.AddNode("B", 1, 0, 0, Free)
	_, err := s.AddMember("AB", a, b, &Material{E: 1, G: 1}, &CrossSection{Area: 1, Iy: 1, Iz: 1, It: 1}, Beam)
	require.NoError(t, err)
	assert.ErrorContains(t, s.Validate(), "no supports")

	s.SetSupport(a, Fixed)
	assert.NoError(t, s.Validate())

	s.Members[0].Section.It = 0
	assert.Error(t, s.Validate(), "beams need a torsion constant")
	s.Members[0].Kind = Axial
	assert.NoError(t, s.Validate())
}

const cantileverJSON = `{
  "name": "cantilever",
  "materials": [
    {"name": "steel", "grade": "S275"},
    {"name": "custom", "e": 1e7, "nu": 0.25, "density": 2}
  ],
  "sections": [
    {"name": "rect", "shape": "rectangle", "b": 0.1, "h": 0.2},
    {"name": "given", "area": 0.01, "iy": 1e-5, "iz": 2e-5, "it": 3e-5}
  ],
  "nodes": [
    {"id": "A", "x": 0, "y": 0, "z": 0, "support": "fixed"},
    {"id": "B", "x": 2, "y": 0, "z": 0},
    {"id": "C", "x": 4, "y": 0, "z": 0, "support": [false, false, true, false, false, false]}
  ],
  "members": [
    {"id": "AB", "from": "A", "to": "B", "material": "steel", "section": "rect"},
    {"from": "B", "to": "C", "material": "custom", "section": "given", "type": "truss", "orientation": [0, 1, 0]}
  ],
  "load_cases": [
    {"name": "dead", "category": "Dead", "self_weight": 1,
     "point_loads": [{"node": "B", "load": [0, 0, -10, 0, 0, 0]}],
     "displacement_bounds": [{"node": "B", "limit": 0.01}]}
  ],
  "combinations": [{"name": "ULS", "factors": {"dead": 1.35}}]
}`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(cantileverJSON))
	require.NoError(t, err)

	assert.Equal(t, "cantilever", s.Name)
	assert.Len(t, s.Nodes, 3)
	assert.Len(t, s.Members, 2)
	assert.Equal(t, 6+5, s.ReducedDofCount())

	steel := s.Materials["steel"]
	assert.Equal(t, 275e3, steel.Fy)
	custom := s.Materials["custom"]
	assert.InDelta(t, 4e6, custom.G, 1e-6)

	rect := s.Sections["rect"]
	assert.InDelta(t, 0.02, rect.Area, 1e-15)
	assert.InDelta(t, 0.1*math.Pow(0.2, 3)/12, rect.Iy, 1e-15)

	m := s.Members[1]
	assert.Equal(t, "M2", m.ID)
	assert.Equal(t, Axial, m.Kind)
	assert.Equal(t, [3]float64{0, 1, 0}, m.Orientation)

	lc, err := s.LoadCase("dead")
	require.NoError(t, err)
	assert.Equal(t, "dead", lc.Category)
	b, _ := s.Node("B")
	assert.Equal(t, -10.0, lc.PointLoads[b][2])
	assert.Equal(t, 0.01, lc.DisplacementBounds[b])

	require.Len(t, s.Combinations, 1)
	assert.Equal(t, 1.35, s.Combinations[0].Factors["dead"])
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown node":  `{"materials":[{"name":"m","e":1,"g":1}],"sections":[{"name":"s","area":1}],"nodes":[{"id":"A","support":"fixed"}],"members":[{"from":"A","to":"X","material":"m","section":"s"}]}`,
		"unknown grade": `{"materials":[{"name":"m","grade":"S999"}]}`,
		"bad shape":     `{"sections":[{"name":"s","shape":"hexagon"}]}`,
		"bad support":   `{"nodes":[{"id":"A","support":"sideways"}]}`,
		"no supports":   `{"materials":[{"name":"m","e":1}],"sections":[{"name":"s","area":1}],"nodes":[{"id":"A"},{"id":"B","x":1}],"members":[{"from":"A","to":"B","material":"m","section":"s","type":"axial"}]}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}
