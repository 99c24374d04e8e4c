package twisty

import "fmt"

// Kind identifies the concrete kind of a cubie.
type Kind int

const (
	KindCenter Kind = iota // 1 sticker
	KindEdge               // 2 stickers
	KindCorner             // 3 stickers
)

// Arity returns the fixed sticker count for this kind of cubie.
func (k Kind) Arity() int {
	switch k {
	case KindCenter:
		return 1
	case KindEdge:
		return 2
	case KindCorner:
		return 3
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	default:
		return "?"
	}
}

// Cubie is an individual sub-cube of a twisty cube puzzle. A cubie has
// one to three colored stickers depending on whether it is a center
// cubie (1 sticker), edge cubie (2 stickers), or corner cubie (3
// stickers). The sticker count is fixed for the cubie's lifetime.
//
// Cubies of all kinds are stored uniformly behind this interface.
// Kind identifies the concrete type, and a Go type assertion recovers
// it when needed:
//
//	var cb twisty.Cubie = twisty.NewCorner()
//	corner, ok := cb.(*twisty.Corner)
//	if !ok {
//	    // cb is not a corner
//	}
type Cubie interface {
	// Faces returns the cubie's sticker sequence. The returned slice
	// is a view over the cubie's own storage; its length always equals
	// the kind's arity. Callers must treat it as read-only.
	Faces() []Sticker

	// Kind reports the concrete kind of this cubie.
	Kind() Kind
}

// MustCubie builds a fresh, uninitialized cubie from a construction
// tag. The tag must be one of "center", "edge", or "corner"; any
// other tag is caller misuse and panics.
func MustCubie(tag string) Cubie {
	switch tag {
	case "center":
		return NewCenter()
	case "edge":
		return NewEdge()
	case "corner":
		return NewCorner()
	default:
		panic(fmt.Sprintf("twisty: unknown cubie tag %q", tag))
	}
}

// Center is a cubie with a single sticker: the fixed middle piece of
// one of the six faces.
type Center struct {
	faces [1]Sticker
}

// NewCenter returns a center cubie with an uninitialized sticker.
func NewCenter() *Center {
	return &Center{}
}

// CenterOf builds a center cubie directly from a fixed-arity array.
func CenterOf(faces [1]Sticker) *Center {
	return &Center{faces: faces}
}

// CenterFromStickers builds a center cubie from a sequence of
// arbitrary length. An empty input behaves like NewCenter; otherwise
// the input is truncated to the first sticker.
func CenterFromStickers(stickers []Sticker) *Center {
	c := NewCenter()
	if len(stickers) == 0 {
		return c
	}
	c.faces[0] = stickers[0]
	return c
}

// Faces returns the center's single-sticker sequence.
func (c *Center) Faces() []Sticker {
	return c.faces[:]
}

// Kind reports KindCenter.
func (c *Center) Kind() Kind {
	return KindCenter
}

// SetFace replaces the sticker at index i. An out-of-range index is a
// programming defect and panics.
func (c *Center) SetFace(i int, s Sticker) {
	c.faces[i] = s
}

// Edge is a cubie with two stickers, sitting between two adjacent
// faces of the puzzle.
type Edge struct {
	faces [2]Sticker
}

// NewEdge returns an edge cubie with uninitialized stickers.
func NewEdge() *Edge {
	return &Edge{}
}

// EdgeOf builds an edge cubie directly from a fixed-arity array.
func EdgeOf(faces [2]Sticker) *Edge {
	return &Edge{faces: faces}
}

// EdgeFromStickers builds an edge cubie from a sequence of arbitrary
// length. An empty input behaves like NewEdge; a single sticker is
// replicated across both slots; longer inputs are truncated to the
// first two stickers.
func EdgeFromStickers(stickers []Sticker) *Edge {
	e := NewEdge()
	switch {
	case len(stickers) == 0:
	case len(stickers) < 2:
		e.faces[0] = stickers[0]
		e.faces[1] = stickers[0]
	default:
		copy(e.faces[:], stickers[:2])
	}
	return e
}

// Faces returns the edge's two-sticker sequence.
func (e *Edge) Faces() []Sticker {
	return e.faces[:]
}

// Kind reports KindEdge.
func (e *Edge) Kind() Kind {
	return KindEdge
}

// SetFace replaces the sticker at index i. An out-of-range index is a
// programming defect and panics.
func (e *Edge) SetFace(i int, s Sticker) {
	e.faces[i] = s
}

// Corner is a cubie with three stickers, sitting at the meeting point
// of three faces of the puzzle.
type Corner struct {
	faces [3]Sticker
}

// NewCorner returns a corner cubie with uninitialized stickers.
func NewCorner() *Corner {
	return &Corner{}
}

// CornerOf builds a corner cubie directly from a fixed-arity array.
func CornerOf(faces [3]Sticker) *Corner {
	return &Corner{faces: faces}
}

// CornerFromStickers builds a corner cubie from a sequence of
// arbitrary length. An empty input behaves like NewCorner; one or two
// stickers replicate the first sticker across all three slots, which
// yields a uniform-color cubie; longer inputs are truncated to the
// first three stickers.
func CornerFromStickers(stickers []Sticker) *Corner {
	c := NewCorner()
	switch {
	case len(stickers) == 0:
	case len(stickers) < 3:
		c.faces[0] = stickers[0]
		c.faces[1] = stickers[0]
		c.faces[2] = stickers[0]
	default:
		copy(c.faces[:], stickers[:3])
	}
	return c
}

// Faces returns the corner's three-sticker sequence.
func (c *Corner) Faces() []Sticker {
	return c.faces[:]
}

// Kind reports KindCorner.
func (c *Corner) Kind() Kind {
	return KindCorner
}

// SetFace replaces the sticker at index i. An out-of-range index is a
// programming defect and panics.
func (c *Corner) SetFace(i int, s Sticker) {
	c.faces[i] = s
}
