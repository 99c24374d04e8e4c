package twisty

import (
	"fmt"
	"strings"
)

// Color represents a sticker color on a six-sided twisty puzzle.
// The zero value is Uninit, so a default-constructed sticker carries
// no physical color until a collaborator assigns one.
type Color byte

const (
	Uninit Color = iota // no color assigned yet
	Blue
	Green
	Orange
	Red
	White
	Yellow
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "B"
	case Green:
		return "G"
	case Orange:
		return "O"
	case Red:
		return "R"
	case White:
		return "W"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Name returns the full lowercase color name.
func (c Color) Name() string {
	switch c {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Orange:
		return "orange"
	case Red:
		return "red"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	default:
		return "uninit"
	}
}

// Opposite returns the standardized opposite color: Blue/Green,
// Orange/Red, White/Yellow. Uninit has no defined opposite and maps
// to itself, which keeps the function total and involutive.
func (c Color) Opposite() Color {
	switch c {
	case Blue:
		return Green
	case Green:
		return Blue
	case Orange:
		return Red
	case Red:
		return Orange
	case White:
		return Yellow
	case Yellow:
		return White
	default:
		return Uninit
	}
}

// ParseColor parses a color from its full name or one-letter code.
// Matching is case-insensitive. "uninit" and "?" are not accepted;
// parsed colors always carry a physical color.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "b":
		return Blue, nil
	case "green", "g":
		return Green, nil
	case "orange", "o":
		return Orange, nil
	case "red", "r":
		return Red, nil
	case "white", "w":
		return White, nil
	case "yellow", "y":
		return Yellow, nil
	default:
		return Uninit, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}
