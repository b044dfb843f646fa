package combination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexiusacademia/goframe/internal/model"
)

// Load categories assigned to load cases
const (
	Dead       = "dead"
	Live       = "live"
	Roof       = "roof"
	Wind       = "wind"
	Earthquake = "earthquake"
	Rain       = "rain"
	Snow       = "snow"
)

// Template is a load combination expressed in load categories
// (strength design, ASCE 7 / NSCP 2015 Section 203.3)
type Template struct {
	ID          string
	Description string
	Factors     map[string]float64
}

// Basic strength design combinations
var Strength = []Template{
	{ID: "1", Description: "1.4D", Factors: map[string]float64{Dead: 1.4}},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R or S)", Factors: map[string]float64{Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5, Snow: 0.5}},
	{ID: "3", Description: "1.2D + 1.6(Lr or R or S) + (1.0L or 0.5W)", Factors: map[string]float64{Dead: 1.2, Roof: 1.6, Rain: 1.6, Snow: 1.6, Live: 1.0}},
	{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R or S)", Factors: map[string]float64{Dead: 1.2, Wind: 1.0, Live: 1.0, Roof: 0.5, Rain: 0.5, Snow: 0.5}},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L + 0.2S", Factors: map[string]float64{Dead: 1.2, Earthquake: 1.0, Live: 1.0, Snow: 0.2}},
	{ID: "6", Description: "0.9D + 1.0W", Factors: map[string]float64{Dead: 0.9, Wind: 1.0}},
	{ID: "7", Description: "0.9D + 1.0E", Factors: map[string]float64{Dead: 0.9, Earthquake: 1.0}},
}

// Gravity combinations for common gravity-only checks
var Gravity = []Template{
	{ID: "1", Description: "1.4D", Factors: map[string]float64{Dead: 1.4}},
	{ID: "2", Description: "1.2D + 1.6L", Factors: map[string]float64{Dead: 1.2, Live: 1.6}},
}

// Build creates a load case summing the named load cases with their factors.
// Point loads and self-weight factors are combined linearly.
func Build(s *model.Structure, c model.Combination) (*model.LoadCase, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("combination must have a name")
	}
	if len(c.Factors) == 0 {
		return nil, fmt.Errorf("combination %q has no factors", c.Name)
	}

	lc := model.NewLoadCase(c.Name)
	lc.Category = "combination"

	// deterministic order
	names := make([]string, 0, len(c.Factors))
	for name := range c.Factors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		factor := c.Factors[name]
		src, err := s.LoadCase(name)
		if err != nil {
			return nil, fmt.Errorf("combination %q: %w", c.Name, err)
		}
		lc.SelfWeight += factor * src.SelfWeight
		for n, load := range src.PointLoads {
			var scaled model.Load
			for k, v := range load {
				scaled[k] = factor * v
			}
			lc.AddPointLoad(n, scaled)
		}
		for n, limit := range src.DisplacementBounds {
			if cur, ok := lc.DisplacementBounds[n]; !ok || limit < cur {
				lc.DisplacementBounds[n] = limit
			}
		}
	}
	return lc, nil
}

// FromTemplates turns category templates into combinations over the load
// cases of the structure. Templates that match no load case are skipped.
func FromTemplates(s *model.Structure, templates []Template, prefix string) []model.Combination {
	byCategory := make(map[string][]string)
	for _, lc := range s.LoadCases {
		if lc.Category != "" {
			byCategory[lc.Category] = append(byCategory[lc.Category], lc.Name)
		}
	}

	var combos []model.Combination
	for _, t := range templates {
		factors := make(map[string]float64)
		for category, f := range t.Factors {
			for _, name := range byCategory[category] {
				factors[name] = f
			}
		}
		if len(factors) == 0 {
			continue
		}
		name := strings.TrimSpace(fmt.Sprintf("%s%s: %s", prefix, t.ID, t.Description))
		combos = append(combos, model.Combination{Name: name, Factors: factors})
	}
	return combos
}

// Expand builds every combination defined on the structure and registers
// the resulting load cases.
func Expand(s *model.Structure) error {
	for _, c := range s.Combinations {
		lc, err := Build(s, c)
		if err != nil {
			return err
		}
		if err := s.AddLoadCase(lc); err != nil {
			return err
		}
	}
	return nil
}
