package material

import (
	"sort"
	"strings"
)

// Standard material grades. Units: kN, m, t.

const (
	// Partial safety factors
	GammaM0Steel    = 1.00 // steel, cross-section resistance
	GammaMTimber    = 1.30 // solid timber
	GammaMGlulam    = 1.25 // glued laminated timber
	GammaCConcrete  = 1.50 // concrete in compression
	GammaMAluminium = 1.10

	// Elastic modulus for structural steel
	EsSteel = 210e6 // kN/m²
)

// Grade holds the properties of a catalogue material.
type Grade struct {
	Name        string
	Class       string
	E           float64 // elastic modulus (kN/m²)
	G           float64 // shear modulus (kN/m²)
	Density     float64 // mass density (t/m³)
	Fy          float64 // characteristic strength (kN/m²)
	GammaM      float64 // partial safety factor
	Description string
}

var catalogue = []Grade{
	{Name: "S235", Class: "steel", E: EsSteel, G: 81e6, Density: 7.85, Fy: 235e3, GammaM: GammaM0Steel, Description: "Structural steel EN 10025"},
	{Name: "S275", Class: "steel", E: EsSteel, G: 81e6, Density: 7.85, Fy: 275e3, GammaM: GammaM0Steel, Description: "Structural steel EN 10025"},
	{Name: "S355", Class: "steel", E: EsSteel, G: 81e6, Density: 7.85, Fy: 355e3, GammaM: GammaM0Steel, Description: "Structural steel EN 10025"},
	{Name: "C24", Class: "timber", E: 11e6, G: 0.69e6, Density: 0.42, Fy: 24e3, GammaM: GammaMTimber, Description: "Softwood, bending strength class"},
	{Name: "GL24h", Class: "timber", E: 11.5e6, G: 0.65e6, Density: 0.42, Fy: 24e3, GammaM: GammaMGlulam, Description: "Homogeneous glulam"},
	{Name: "GL28h", Class: "timber", E: 12.6e6, G: 0.65e6, Density: 0.46, Fy: 28e3, GammaM: GammaMGlulam, Description: "Homogeneous glulam"},
	{Name: "C25/30", Class: "concrete", E: 31e6, G: 12.9e6, Density: 2.5, Fy: 25e3, GammaM: GammaCConcrete, Description: "Normal weight concrete"},
	{Name: "C30/37", Class: "concrete", E: 33e6, G: 13.75e6, Density: 2.5, Fy: 30e3, GammaM: GammaCConcrete, Description: "Normal weight concrete"},
	{Name: "EN-AW 6061-T6", Class: "aluminium", E: 70e6, G: 26.3e6, Density: 2.7, Fy: 240e3, GammaM: GammaMAluminium, Description: "Extruded aluminium alloy"},
}

// Lookup finds a catalogue grade by name, ignoring case.
func Lookup(name string) (Grade, bool) {
	for _, g := range catalogue {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return Grade{}, false
}

// All returns every catalogue grade sorted by class then name.
func All() []Grade {
	grades := make([]Grade, len(catalogue))
	copy(grades, catalogue)
	sort.SliceStable(grades, func(i, j int) bool {
		if grades[i].Class != grades[j].Class {
			return grades[i].Class < grades[j].Class
		}
		return grades[i].Name < grades[j].Name
	})
	return grades
}

// ShearModulus calculates G from E and Poisson's ratio
// G = E / (2(1+ν))
func ShearModulus(e, nu float64) float64 {
	return e / (2 * (1 + nu))
}
