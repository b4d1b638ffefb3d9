// Package config loads and resolves isobox scene files.
package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/isobox/pkg/graphics"
	"github.com/go-drift/isobox/pkg/isometric"
)

// Scene represents a scene description file.
type Scene struct {
	// Requires is an optional minimum isobox version, e.g. "0.1.0".
	Requires string        `yaml:"requires,omitempty"`
	Surface  SurfaceConfig `yaml:"surface"`
	Boxes    []BoxConfig   `yaml:"boxes"`
}

// SurfaceConfig describes the output drawing surface.
type SurfaceConfig struct {
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// BoxConfig describes a single box in the scene. Fields that have
// non-zero defaults are pointers so "absent" and "zero" stay distinct.
type BoxConfig struct {
	X float64 `yaml:"x,omitempty"`
	Y float64 `yaml:"y,omitempty"`
	Z float64 `yaml:"z,omitempty"`

	Width  *float64 `yaml:"width,omitempty"`
	Depth  *float64 `yaml:"depth,omitempty"`
	Height *float64 `yaml:"height,omitempty"`

	Angle *float64 `yaml:"angle,omitempty"`
	Scale *float64 `yaml:"scale,omitempty"`

	TopColor     string `yaml:"top_color,omitempty"`
	SideColor    string `yaml:"side_color,omitempty"`
	OutlineColor string `yaml:"outline_color,omitempty"`

	OutlineWidth    float64  `yaml:"outline_width,omitempty"`
	TopCornerRadius *float64 `yaml:"top_corner_radius,omitempty"`
}

// Resolved contains a scene with all defaults applied.
type Resolved struct {
	Width      int
	Height     int
	Background graphics.Color
	Boxes      []isometric.Box
}

// Default returns the scene used when no file is given: a single
// default box on a 200x200 white surface.
func Default() *Scene {
	return &Scene{
		Surface: SurfaceConfig{Width: 200, Height: 200, Background: "#FFFFFF"},
		Boxes:   []BoxConfig{{}},
	}
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	return &scene, nil
}

// CheckRequires verifies the running version satisfies the scene's
// requires constraint, if any.
func (s *Scene) CheckRequires(version string) error {
	req := strings.TrimSpace(s.Requires)
	if req == "" {
		return nil
	}

	want := canonical(req)
	if !semver.IsValid(want) {
		return fmt.Errorf("invalid requires version %q", s.Requires)
	}

	have := canonical(version)
	if !semver.IsValid(have) {
		// Development builds always pass.
		return nil
	}

	if semver.Compare(have, want) < 0 {
		return fmt.Errorf("scene requires isobox %s or newer, running %s", req, version)
	}
	return nil
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "v")
	// Strip prerelease suffixes like -dev for comparison.
	if i := strings.IndexAny(v, "-+"); i > 0 {
		v = v[:i]
	}
	return "v" + v
}

// Resolve applies defaults and parses colors, producing render-ready
// values.
func (s *Scene) Resolve() (*Resolved, error) {
	r := &Resolved{
		Width:      s.Surface.Width,
		Height:     s.Surface.Height,
		Background: graphics.ColorWhite,
	}
	if r.Width <= 0 {
		r.Width = 200
	}
	if r.Height <= 0 {
		r.Height = 200
	}
	if s.Surface.Background != "" {
		c, err := graphics.ParseColor(s.Surface.Background)
		if err != nil {
			return nil, fmt.Errorf("invalid background color: %w", err)
		}
		r.Background = c
	}

	boxes := s.Boxes
	if len(boxes) == 0 {
		boxes = []BoxConfig{{}}
	}

	for i, bc := range boxes {
		box, err := bc.resolve()
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		r.Boxes = append(r.Boxes, box)
	}

	return r, nil
}

func (bc BoxConfig) resolve() (isometric.Box, error) {
	box := isometric.DefaultBox()

	box.X = bc.X
	box.Y = bc.Y
	box.Z = bc.Z
	box.OutlineWidth = bc.OutlineWidth

	if bc.Width != nil {
		box.Width = *bc.Width
	}
	if bc.Depth != nil {
		box.Depth = *bc.Depth
	}
	if bc.Height != nil {
		box.Height = *bc.Height
	}
	if bc.Angle != nil {
		box.AngleDegrees = *bc.Angle
	}
	if bc.Scale != nil {
		box.Scale = *bc.Scale
	}
	if bc.TopCornerRadius != nil {
		box.TopCornerRadius = *bc.TopCornerRadius
	}

	if bc.TopColor != "" {
		c, err := graphics.ParseColor(bc.TopColor)
		if err != nil {
			return box, fmt.Errorf("invalid top color: %w", err)
		}
		box.TopColor = c
	}
	if bc.SideColor != "" {
		c, err := graphics.ParseColor(bc.SideColor)
		if err != nil {
			return box, fmt.Errorf("invalid side color: %w", err)
		}
		box.SideColor = c
	}
	if bc.OutlineColor != "" {
		c, err := graphics.ParseColor(bc.OutlineColor)
		if err != nil {
			return box, fmt.Errorf("invalid outline color: %w", err)
		}
		box.OutlineColor = c
	}

	return box, nil
}
