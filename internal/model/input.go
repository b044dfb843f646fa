package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/goframe/internal/material"
	"github.com/alexiusacademia/goframe/internal/profile"
)

// File is the JSON description of a structure.
type File struct {
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Gravity      float64        `json:"gravity,omitempty"`
	Materials    []MaterialData `json:"materials"`
	Sections     []SectionData  `json:"sections"`
	Nodes        []NodeData     `json:"nodes"`
	Members      []MemberData   `json:"members"`
	LoadCases    []LoadCaseData `json:"load_cases"`
	Combinations []Combination  `json:"combinations,omitempty"`
}

// MaterialData defines a material inline or by catalogue grade. Non-zero
// inline values override the grade.
type MaterialData struct {
	Name    string  `json:"name"`
	Grade   string  `json:"grade,omitempty"`
	E       float64 `json:"e,omitempty"`
	G       float64 `json:"g,omitempty"`
	Nu      float64 `json:"nu,omitempty"` // used to derive G when G is not given
	Density float64 `json:"density,omitempty"`
	Fy      float64 `json:"fy,omitempty"`
	GammaM  float64 `json:"gamma_m,omitempty"`
}

// SectionData defines a cross-section by shape or by explicit constants.
// Non-zero explicit constants override the computed ones.
type SectionData struct {
	Name     string          `json:"name"`
	Shape    string          `json:"shape,omitempty"` // rectangle, circle, tube, rhs, polygon
	B        float64         `json:"b,omitempty"`
	H        float64         `json:"h,omitempty"`
	D        float64         `json:"d,omitempty"`
	T        float64         `json:"t,omitempty"`
	Vertices []profile.Point `json:"vertices,omitempty"`

	Area float64 `json:"area,omitempty"`
	Iy   float64 `json:"iy,omitempty"`
	Iz   float64 `json:"iz,omitempty"`
	It   float64 `json:"it,omitempty"`
	Wy   float64 `json:"wy,omitempty"`
	Wz   float64 `json:"wz,omitempty"`
}

// NodeData defines a node.
type NodeData struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Support Support `json:"support,omitempty"`
}

// MemberData defines a member between two node ids.
type MemberData struct {
	ID          string      `json:"id"`
	From        string      `json:"from"`
	To          string      `json:"to"`
	Material    string      `json:"material"`
	Section     string      `json:"section"`
	Type        string      `json:"type,omitempty"`
	Orientation *[3]float64 `json:"orientation,omitempty"`
}

// PointLoadData is a load on a node: fx, fy, fz, mx, my, mz.
type PointLoadData struct {
	Node string `json:"node"`
	Load Load   `json:"load"`
}

// BoundData is an admissible displacement magnitude for a node.
type BoundData struct {
	Node  string  `json:"node"`
	Limit float64 `json:"limit"`
}

// LoadCaseData defines a load case.
type LoadCaseData struct {
	Name               string          `json:"name"`
	Category           string          `json:"category,omitempty"`
	SelfWeight         float64         `json:"self_weight,omitempty"`
	PointLoads         []PointLoadData `json:"point_loads,omitempty"`
	DisplacementBounds []BoundData     `json:"displacement_bounds,omitempty"`
}

// LoadFromFile loads a structure definition from a JSON file
func LoadFromFile(filepath string) (*Structure, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a structure from JSON data.
func Parse(data []byte) (*Structure, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Build()
}

// Build converts the file description into a validated structure.
func (f *File) Build() (*Structure, error) {
	s := NewStructure(f.Name)
	if f.Gravity != 0 {
		s.Gravity = f.Gravity
	}

	for _, md := range f.Materials {
		m, err := md.build()
		if err != nil {
			return nil, err
		}
		if _, dup := s.Materials[m.Name]; dup {
			return nil, invalid("duplicate material %q", m.Name)
		}
		s.Materials[m.Name] = m
	}

	for _, sd := range f.Sections {
		sec, err := sd.build()
		if err != nil {
			return nil, err
		}
		if _, dup := s.Sections[sec.Name]; dup {
			return nil, invalid("duplicate section %q", sec.Name)
		}
		s.Sections[sec.Name] = sec
	}

	for _, nd := range f.Nodes {
		if _, err := s.AddNode(nd.ID, nd.X, nd.Y, nd.Z, nd.Support); err != nil {
			return nil, err
		}
	}

	for i, md := range f.Members {
		from, ok := s.Node(md.From)
		if !ok {
			return nil, invalid("member %d: unknown node %q", i+1, md.From)
		}
		to, ok := s.Node(md.To)
		if !ok {
			return nil, invalid("member %d: unknown node %q", i+1, md.To)
		}
		mat, ok := s.Materials[md.Material]
		if !ok {
			return nil, invalid("member %d: unknown material %q", i+1, md.Material)
		}
		sec, ok := s.Sections[md.Section]
		if !ok {
			return nil, invalid("member %d: unknown section %q", i+1, md.Section)
		}
		kind, err := ParseMemberKind(md.Type)
		if err != nil {
			return nil, invalid("member %d: %v", i+1, err)
		}

		m := &Member{ID: md.ID, From: from, To: to, Material: mat, Section: sec, Kind: kind}
		if m.ID == "" {
			m.ID = fmt.Sprintf("M%d", i+1)
		}
		if md.Orientation != nil {
			m.Orientation = *md.Orientation
		}
		if err := m.Update(); err != nil {
			return nil, err
		}
		s.Members = append(s.Members, m)
	}

	for _, ld := range f.LoadCases {
		lc := NewLoadCase(ld.Name)
		lc.Category = strings.ToLower(ld.Category)
		lc.SelfWeight = ld.SelfWeight
		for _, pl := range ld.PointLoads {
			n, ok := s.Node(pl.Node)
			if !ok {
				return nil, invalid("load case %q: unknown node %q", ld.Name, pl.Node)
			}
			lc.AddPointLoad(n, pl.Load)
		}
		for _, b := range ld.DisplacementBounds {
			n, ok := s.Node(b.Node)
			if !ok {
				return nil, invalid("load case %q: unknown node %q", ld.Name, b.Node)
			}
			lc.DisplacementBounds[n] = b.Limit
		}
		if err := s.AddLoadCase(lc); err != nil {
			return nil, err
		}
	}

	s.Combinations = f.Combinations

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (md MaterialData) build() (*Material, error) {
	if md.Name == "" {
		md.Name = md.Grade
	}
	if md.Name == "" {
		return nil, invalid("material must have a name or grade")
	}

	m := &Material{Name: md.Name}
	if md.Grade != "" {
		g, ok := material.Lookup(md.Grade)
		if !ok {
			return nil, invalid("material %q: unknown grade %q", md.Name, md.Grade)
		}
		m.E, m.G, m.Density, m.Fy, m.GammaM = g.E, g.G, g.Density, g.Fy, g.GammaM
	}

	if md.E != 0 {
		m.E = md.E
	}
	if md.G != 0 {
		m.G = md.G
	} else if md.Nu != 0 {
		m.G = material.ShearModulus(m.E, md.Nu)
	}
	if md.Density != 0 {
		m.Density = md.Density
	}
	if md.Fy != 0 {
		m.Fy = md.Fy
	}
	if md.GammaM != 0 {
		m.GammaM = md.GammaM
	}

	if m.E <= 0 {
		return nil, invalid("material %q: elastic modulus must be positive", md.Name)
	}
	if m.Density < 0 {
		return nil, invalid("material %q: density must not be negative", md.Name)
	}
	return m, nil
}

func (sd SectionData) build() (*CrossSection, error) {
	if sd.Name == "" {
		return nil, invalid("section must have a name")
	}

	var (
		p   profile.Properties
		err error
	)
	switch strings.ToLower(sd.Shape) {
	case "":
	case "rectangle", "rect":
		p, err = profile.Rectangle(sd.B, sd.H)
	case "circle", "round":
		p, err = profile.Circle(sd.D)
	case "tube", "chs":
		p, err = profile.Tube(sd.D, sd.T)
	case "rhs", "box":
		p, err = profile.RectangularHollow(sd.B, sd.H, sd.T)
	case "polygon":
		p, err = profile.Polygon(sd.Vertices)
	default:
		return nil, invalid("section %q: unknown shape %q", sd.Name, sd.Shape)
	}
	if err != nil {
		return nil, invalid("section %q: %v", sd.Name, err)
	}

	sec := &CrossSection{
		Name: sd.Name,
		Area: override(p.Area, sd.Area),
		Iy:   override(p.Iy, sd.Iy),
		Iz:   override(p.Iz, sd.Iz),
		It:   override(p.It, sd.It),
		Wy:   override(p.Wy, sd.Wy),
		Wz:   override(p.Wz, sd.Wz),
	}
	if sec.Area <= 0 {
		return nil, invalid("section %q: area must be positive", sd.Name)
	}
	return sec, nil
}

func override(computed, given float64) float64 {
	if given != 0 {
		return given
	}
	return computed
}
