package profile

import (
	"fmt"
	"math"
)

// Properties holds the cross-section constants used by frame elements.
// Local axes: y is horizontal, z is vertical in the section plane.
type Properties struct {
	Area float64 // A
	Iy   float64 // ∫z² dA
	Iz   float64 // ∫y² dA
	It   float64 // torsional constant
	Wy   float64 // Iy / max|z|
	Wz   float64 // Iz / max|y|

	// Centroid of polygonal sections
	CentroidY float64
	CentroidZ float64
}

// Point represents a vertex of a polygonal section
type Point struct {
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rectangle calculates the properties of a solid rectangle of width b
// (along y) and height h (along z).
func Rectangle(b, h float64) (Properties, error) {
	if b <= 0 || h <= 0 {
		return Properties{}, fmt.Errorf("invalid rectangle: b=%g, h=%g", b, h)
	}
	p := Properties{
		Area: b * h,
		Iy:   b * h * h * h / 12,
		Iz:   h * b * b * b / 12,
		It:   rectangleTorsion(b, h),
	}
	p.Wy = p.Iy / (h / 2)
	p.Wz = p.Iz / (b / 2)
	return p, nil
}

// rectangleTorsion uses It = β·a·c³ with a ≥ c and
// β = 1/3 - 0.21(c/a)(1 - (c/a)⁴/12)
func rectangleTorsion(b, h float64) float64 {
	a, c := math.Max(b, h), math.Min(b, h)
	r := c / a
	beta := 1.0/3 - 0.21*r*(1-math.Pow(r, 4)/12)
	return beta * a * c * c * c
}

// Circle calculates the properties of a solid circle of diameter d.
func Circle(d float64) (Properties, error) {
	if d <= 0 {
		return Properties{}, fmt.Errorf("invalid circle: d=%g", d)
	}
	r := d / 2
	i := math.Pi * math.Pow(r, 4) / 4
	p := Properties{
		Area: math.Pi * r * r,
		Iy:   i,
		Iz:   i,
		It:   2 * i,
	}
	p.Wy = i / r
	p.Wz = i / r
	return p, nil
}

// Tube calculates the properties of a circular hollow section with outer
// diameter d and wall thickness t.
func Tube(d, t float64) (Properties, error) {
	if d <= 0 || t <= 0 || 2*t >= d {
		return Properties{}, fmt.Errorf("invalid tube: d=%g, t=%g", d, t)
	}
	ro := d / 2
	ri := ro - t
	i := math.Pi * (math.Pow(ro, 4) - math.Pow(ri, 4)) / 4
	p := Properties{
		Area: math.Pi * (ro*ro - ri*ri),
		Iy:   i,
		Iz:   i,
		It:   2 * i,
	}
	p.Wy = i / ro
	p.Wz = i / ro
	return p, nil
}

// RectangularHollow calculates the properties of a rectangular hollow
// section of outer width b, outer height h and wall thickness t.
// The torsional constant follows Bredt's formula on the wall centreline.
func RectangularHollow(b, h, t float64) (Properties, error) {
	if b <= 0 || h <= 0 || t <= 0 || 2*t >= b || 2*t >= h {
		return Properties{}, fmt.Errorf("invalid hollow section: b=%g, h=%g, t=%g", b, h, t)
	}
	bi, hi := b-2*t, h-2*t
	p := Properties{
		Area: b*h - bi*hi,
		Iy:   (b*h*h*h - bi*hi*hi*hi) / 12,
		Iz:   (h*b*b*b - hi*bi*bi*bi) / 12,
	}
	bm, hm := b-t, h-t
	p.It = 4 * (bm * hm) * (bm * hm) * t / (2 * (bm + hm))
	p.Wy = p.Iy / (h / 2)
	p.Wz = p.Iz / (b / 2)
	return p, nil
}
