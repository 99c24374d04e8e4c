// Package scheme assigns solved-state colors to a cube model. A
// scheme maps each of the six faces to one sticker color; applying it
// paints every sticker on the cube through the model's face views.
package scheme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/twistyworks/twisty"
)

// Scheme maps each face of the cube to its solved color.
type Scheme struct {
	Top    twisty.Color
	Left   twisty.Color
	Right  twisty.Color
	Front  twisty.Color
	Back   twisty.Color
	Bottom twisty.Color
}

// Classic returns the standard western color scheme: white on top,
// yellow on the bottom, green in front, blue in back, red on the
// right, orange on the left.
func Classic() Scheme {
	return Scheme{
		Top:    twisty.White,
		Left:   twisty.Orange,
		Right:  twisty.Red,
		Front:  twisty.Green,
		Back:   twisty.Blue,
		Bottom: twisty.Yellow,
	}
}

// Color returns the scheme's color for the given face.
func (s Scheme) Color(k twisty.FaceKind) twisty.Color {
	switch k {
	case twisty.FaceTop:
		return s.Top
	case twisty.FaceLeft:
		return s.Left
	case twisty.FaceRight:
		return s.Right
	case twisty.FaceFront:
		return s.Front
	case twisty.FaceBack:
		return s.Back
	case twisty.FaceBottom:
		return s.Bottom
	default:
		return twisty.Uninit
	}
}

// Validate checks that every face has a color and that no color is
// used twice.
func (s Scheme) Validate() error {
	seen := map[twisty.Color]twisty.FaceKind{}
	for k := twisty.FaceTop; k <= twisty.FaceBottom; k++ {
		c := s.Color(k)
		if c == twisty.Uninit {
			return fmt.Errorf("scheme: no color for %s face", k)
		}
		if prev, dup := seen[c]; dup {
			return fmt.Errorf("scheme: color %s used for both %s and %s faces", c.Name(), prev, k)
		}
		seen[c] = k
	}
	return nil
}

// schemeFile is the on-disk YAML shape. Colors are written by name or
// one-letter code, for example:
//
//	top: white
//	left: orange
//	right: red
//	front: green
//	back: blue
//	bottom: yellow
type schemeFile struct {
	Top    string `yaml:"top"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Front  string `yaml:"front"`
	Back   string `yaml:"back"`
	Bottom string `yaml:"bottom"`
}

// Load reads and validates a scheme from a YAML file.
func Load(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, fmt.Errorf("scheme: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses and validates a scheme from YAML bytes.
func Parse(data []byte) (Scheme, error) {
	var f schemeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Scheme{}, fmt.Errorf("scheme: parsing yaml: %w", err)
	}

	var s Scheme
	fields := []struct {
		face string
		raw  string
		dst  *twisty.Color
	}{
		{"top", f.Top, &s.Top},
		{"left", f.Left, &s.Left},
		{"right", f.Right, &s.Right},
		{"front", f.Front, &s.Front},
		{"back", f.Back, &s.Back},
		{"bottom", f.Bottom, &s.Bottom},
	}
	for _, field := range fields {
		c, err := twisty.ParseColor(field.raw)
		if err != nil {
			return Scheme{}, fmt.Errorf("scheme: %s face: %w", field.face, err)
		}
		*field.dst = c
	}

	if err := s.Validate(); err != nil {
		return Scheme{}, err
	}
	return s, nil
}

// Apply paints every sticker of the cube with its face's scheme
// color. Painting is deterministic and idempotent: each sticker
// belongs to exactly one face plane, and that plane decides its
// color.
func Apply(c *twisty.Cube, s Scheme) {
	for k := twisty.FaceTop; k <= twisty.FaceBottom; k++ {
		color := s.Color(k)
		slots := twisty.FaceSlots(k)
		for i, slot := range slots {
			c.SetSticker(slot, twisty.FaceStickerIndex(k, i), twisty.StickerOf(color))
		}
	}
}
