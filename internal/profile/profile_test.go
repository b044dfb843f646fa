package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangle(t *testing.T) {
	p, err := Rectangle(0.3, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, 0.15, p.Area, 1e-12)
	assert.InDelta(t, 0.3*0.125/12, p.Iy, 1e-12)
	assert.InDelta(t, 0.5*0.027/12, p.Iz, 1e-12)
	assert.InDelta(t, 0.3*0.25/6, p.Wy, 1e-12)
	assert.InDelta(t, 0.5*0.09/6, p.Wz, 1e-12)

	// square: β = 1/3 - 0.21(1 - 1/12) ≈ 0.1408
	sq, err := Rectangle(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.1408, sq.It, 1e-4)

	_, err = Rectangle(0, 1)
	assert.Error(t, err)
}

func TestCircleAndTube(t *testing.T) {
	c, err := Circle(0.2)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*0.01, c.Area, 1e-12)
	assert.InDelta(t, math.Pi*1e-4/4, c.Iy, 1e-12)
	assert.Equal(t, c.Iy, c.Iz)
	assert.InDelta(t, 2*c.Iy, c.It, 1e-15)

	tube, err := Tube(0.2, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*(0.01-0.0081), tube.Area, 1e-12)
	assert.Less(t, tube.Iy, c.Iy)

	_, err = Tube(0.2, 0.1)
	assert.Error(t, err)
}

func TestRectangularHollow(t *testing.T) {
	p, err := RectangularHollow(0.2, 0.3, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 0.2*0.3-0.18*0.28, p.Area, 1e-12)
	assert.InDelta(t, (0.2*0.027-0.18*0.021952)/12, p.Iy, 1e-12)
	// Bredt: 4·Am²·t / perimeter
	am := 0.19 * 0.29
	assert.InDelta(t, 4*am*am*0.01/(2*(0.19+0.29)), p.It, 1e-12)

	_, err = RectangularHollow(0.2, 0.3, 0.1)
	assert.Error(t, err)
}

func TestPolygonMatchesRectangle(t *testing.T) {
	rect, err := Rectangle(0.3, 0.5)
	require.NoError(t, err)

	// offset from the origin, clockwise
	poly, err := Polygon([]Point{{1, 2}, {1, 2.5}, {1.3, 2.5}, {1.3, 2}})
	require.NoError(t, err)

	assert.InDelta(t, rect.Area, poly.Area, 1e-12)
	assert.InDelta(t, 1.15, poly.CentroidY, 1e-12)
	assert.InDelta(t, 2.25, poly.CentroidZ, 1e-12)
	assert.InDelta(t, rect.Iy, poly.Iy, 1e-9)
	assert.InDelta(t, rect.Iz, poly.Iz, 1e-9)
	assert.InDelta(t, rect.Wy, poly.Wy, 1e-9)
	assert.InDelta(t, rect.Wz, poly.Wz, 1e-9)
	assert.Greater(t, poly.It, 0.0)
}

func TestPolygonTSection(t *testing.T) {
	// T: 0.4 wide flange 0.1 thick over a 0.1 wide web 0.3 high
	p, err := Polygon([]Point{
		{-0.05, 0}, {0.05, 0}, {0.05, 0.3}, {0.2, 0.3},
		{0.2, 0.4}, {-0.2, 0.4}, {-0.2, 0.3}, {-0.05, 0.3},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.07, p.Area, 1e-12)
	assert.InDelta(t, 0, p.CentroidY, 1e-12)
	// (0.03·0.15 + 0.04·0.35) / 0.07
	assert.InDelta(t, 0.0185/0.07, p.CentroidZ, 1e-12)
}

func TestPolygonInvalid(t *testing.T) {
	_, err := Polygon([]Point{{0, 0}, {1, 1}})
	assert.Error(t, err)

	_, err = Polygon([]Point{{0, 0}, {1, 1}, {2, 2}})
	assert.Error(t, err, "collinear vertices have no area")
}
