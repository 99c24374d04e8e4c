package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twistyworks/twisty"
)

// Sticker cell styles, one per color. Uninit renders as a dim "?" so
// an unpainted cube is still legible.
var stickerStyles = map[twisty.Color]lipgloss.Style{
	twisty.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("240")),
	twisty.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("94")),
	twisty.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("22")),
	twisty.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("17")),
	twisty.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("52")),
	twisty.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("94")),
	twisty.Uninit: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("245")),
}

// renderSticker draws one sticker as a two-character colored cell.
func renderSticker(s twisty.Sticker) string {
	return stickerStyles[s.Color].Render(s.Color.String() + " ")
}

// renderFaceRow draws the three stickers of one raster row of a face.
func renderFaceRow(f twisty.Face, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(renderSticker(f.Sticker(row*3 + col)))
	}
	return b.String()
}

// renderCube draws the cube as an unfolded net: the top face, then
// the left/front/right/back band, then the bottom face.
func renderCube(c *twisty.Cube) string {
	var b strings.Builder

	top := c.Face(twisty.FaceTop)
	for row := 0; row < 3; row++ {
		b.WriteString("       ")
		b.WriteString(renderFaceRow(top, row))
		b.WriteString("\n")
	}

	band := []twisty.FaceKind{twisty.FaceLeft, twisty.FaceFront, twisty.FaceRight, twisty.FaceBack}
	for row := 0; row < 3; row++ {
		for i, k := range band {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(renderFaceRow(c.Face(k), row))
		}
		b.WriteString("\n")
	}

	bottom := c.Face(twisty.FaceBottom)
	for row := 0; row < 3; row++ {
		b.WriteString("       ")
		b.WriteString(renderFaceRow(bottom, row))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFace draws a single face as a 3x3 block with a heading.
func renderFace(f twisty.Face) string {
	var b strings.Builder
	b.WriteString(f.Kind().String())
	b.WriteString(" face\n")
	for row := 0; row < 3; row++ {
		b.WriteString("  ")
		b.WriteString(renderFaceRow(f, row))
		b.WriteString("\n")
	}
	return b.String()
}

// describeCubie renders a cubie's kind and sticker colors, e.g.
// "corner [W O B]".
func describeCubie(cb twisty.Cubie) string {
	if cb == nil {
		return "(core)"
	}
	letters := make([]string, 0, 3)
	for _, f := range cb.Faces() {
		letters = append(letters, f.Color.String())
	}
	return cb.Kind().String() + " [" + strings.Join(letters, " ") + "]"
}
