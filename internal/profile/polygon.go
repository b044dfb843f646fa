package profile

import (
	"fmt"
	"math"
)

// Polygon computes the properties of a simple polygon (no holes). Vertices
// may be given in either orientation.
func Polygon(vertices []Point) (Properties, error) {
	n := len(vertices)
	if n < 3 {
		return Properties{}, fmt.Errorf("polygon section must have at least 3 vertices, got %d", n)
	}

	// Shoelace sums for area, first and second moments about the origin
	var signedArea, sumY, sumZ, sumYY, sumZZ float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := vertices[i], vertices[j]
		cross := a.Y*b.Z - b.Y*a.Z
		signedArea += cross
		sumY += (a.Y + b.Y) * cross
		sumZ += (a.Z + b.Z) * cross
		sumYY += (a.Y*a.Y + a.Y*b.Y + b.Y*b.Y) * cross
		sumZZ += (a.Z*a.Z + a.Z*b.Z + b.Z*b.Z) * cross
	}
	signedArea /= 2
	if signedArea == 0 {
		return Properties{}, fmt.Errorf("polygon section has zero area")
	}

	p := Properties{Area: math.Abs(signedArea)}
	p.CentroidY = sumY / (6 * signedArea)
	p.CentroidZ = sumZ / (6 * signedArea)

	// Orientation of the vertices flips the sign of the sums
	sign := 1.0
	if signedArea < 0 {
		sign = -1
	}
	iyOrigin := sign * sumZZ / 12
	izOrigin := sign * sumYY / 12
	p.Iy = iyOrigin - p.Area*p.CentroidZ*p.CentroidZ
	p.Iz = izOrigin - p.Area*p.CentroidY*p.CentroidY

	// Saint-Venant approximation for compact solid sections, exact for circles
	p.It = math.Pow(p.Area, 4) / (4 * math.Pi * math.Pi * (p.Iy + p.Iz))

	var maxY, maxZ float64
	for _, v := range vertices {
		maxY = math.Max(maxY, math.Abs(v.Y-p.CentroidY))
		maxZ = math.Max(maxZ, math.Abs(v.Z-p.CentroidZ))
	}
	if maxZ > 0 {
		p.Wy = p.Iy / maxZ
	}
	if maxY > 0 {
		p.Wz = p.Iz / maxY
	}
	return p, nil
}
