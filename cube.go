package twisty

import "fmt"

// FaceKind names one of the six outer planes of the cube.
type FaceKind int

const (
	FaceTop FaceKind = iota
	FaceLeft
	FaceRight
	FaceFront
	FaceBack
	FaceBottom
)

func (k FaceKind) String() string {
	switch k {
	case FaceTop:
		return "top"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceBottom:
		return "bottom"
	default:
		return "?"
	}
}

// CornerPosition names one of the eight corner slots of the cube, in
// canonical order: top layer back-left through bottom layer
// front-right.
type CornerPosition int

const (
	CornerTopBackLeft CornerPosition = iota
	CornerTopBackRight
	CornerTopFrontLeft
	CornerTopFrontRight
	CornerBottomBackLeft
	CornerBottomBackRight
	CornerBottomFrontLeft
	CornerBottomFrontRight
)

// RowPosition names one of the nine left-to-right lines of the cube,
// three per horizontal layer, back to front within each layer.
type RowPosition int

const (
	RowTopBack RowPosition = iota
	RowTopMiddle
	RowTopFront
	RowMiddleBack
	RowMiddleCenter
	RowMiddleFront
	RowBottomBack
	RowBottomMiddle
	RowBottomFront
)

// ColumnPosition names one of the nine vertical lines of the cube,
// addressed by their position in the horizontal plane.
type ColumnPosition int

const (
	ColumnBackLeft ColumnPosition = iota
	ColumnBackCenter
	ColumnBackRight
	ColumnMiddleLeft
	ColumnMiddleCenter
	ColumnMiddleRight
	ColumnFrontLeft
	ColumnFrontCenter
	ColumnFrontRight
)

// Face is the view of the nine cubies lying on one outer plane, in
// raster order for that plane. The elements reference the cube's own
// storage; a Face never copies cubies and stays valid as long as the
// cube it came from.
type Face struct {
	kind     FaceKind
	Elements [9]Cubie
}

// Kind reports which plane this view projects.
func (f Face) Kind() FaceKind {
	return f.kind
}

// Sticker returns the sticker of element i that lies on this face's
// plane. A cubie sits on up to three planes; this picks the one
// belonging to the viewed plane.
func (f Face) Sticker(i int) Sticker {
	return f.Elements[i].Faces()[FaceStickerIndex(f.kind, i)]
}

// Row is the view of one left-to-right line of cubies within a
// horizontal layer. Center is nil for the single row that crosses the
// mechanical core; that absence is structural, not an error.
type Row struct {
	Left   Cubie
	Center Cubie
	Right  Cubie
}

// HasCenter reports whether the row has a center cubie.
func (r Row) HasCenter() bool {
	return r.Center != nil
}

// Column is the view of one vertical line of cubies across the three
// layers. Center is nil for the single column that crosses the
// mechanical core.
type Column struct {
	Top    Cubie
	Center Cubie
	Bottom Cubie
}

// HasCenter reports whether the column has a middle-layer cubie.
func (c Column) HasCenter() bool {
	return c.Center != nil
}

// coreSlot marks the structurally absent mechanical core in the row
// and column tables.
const coreSlot = -1

// The fixed index tables below encode the cube's 3-D adjacency over
// the flat 26-slot storage. They are configuration data, not computed
// geometry: every view accessor is a pure lookup against them.
var (
	faceIndex = [6][9]int{
		FaceTop:    {0, 1, 2, 3, 4, 5, 6, 7, 8},
		FaceLeft:   {0, 3, 6, 9, 12, 14, 17, 20, 23},
		FaceRight:  {2, 5, 8, 11, 13, 16, 19, 22, 25},
		FaceFront:  {6, 7, 8, 14, 15, 16, 23, 24, 25},
		FaceBack:   {0, 1, 2, 9, 10, 11, 17, 18, 19},
		FaceBottom: {17, 18, 19, 20, 21, 22, 23, 24, 25},
	}

	cornerIndex = [8]int{0, 2, 6, 8, 17, 19, 23, 25}

	rowIndex = [9][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{9, 10, 11}, {12, coreSlot, 13}, {14, 15, 16},
		{17, 18, 19}, {20, 21, 22}, {23, 24, 25},
	}

	columnIndex = [9][3]int{
		{0, 9, 17}, {1, 10, 18}, {2, 11, 19},
		{3, 12, 20}, {4, coreSlot, 21}, {5, 13, 22},
		{6, 14, 23}, {7, 15, 24}, {8, 16, 25},
	}
)

// faceSticker[k][i] is the index, within the sticker sequence of the
// cubie at raster position i of face k, of the sticker lying on face
// k. A cubie's stickers are ordered by the FaceKind order of the
// planes the cubie sits on. Derived once from faceIndex at startup.
var faceSticker [6][9]int

func init() {
	for k := FaceTop; k <= FaceBottom; k++ {
		for i, slot := range faceIndex[k] {
			rank := 0
			for prior := FaceTop; prior < k; prior++ {
				for _, s := range faceIndex[prior] {
					if s == slot {
						rank++
					}
				}
			}
			faceSticker[k][i] = rank
		}
	}
}

// FaceSlots returns the storage slots of the nine cubies on face k,
// in raster order.
func FaceSlots(k FaceKind) [9]int {
	return faceIndex[k]
}

// FaceStickerIndex returns which of a cubie's stickers lies on face k
// for the cubie at raster position i of that face.
func FaceStickerIndex(k FaceKind, i int) int {
	return faceSticker[k][i]
}

// Cube owns the 26 movable cubies of a 3x3x3 twisty puzzle in a flat,
// fixed-length storage. Slots are laid out in three horizontal layers
// traversed back to front, left to right:
//
//	 Top       Middle     Bottom
//	0 1 2      9 10 11   17 18 19
//	3 4 5     12  . 13   20 21 22
//	6 7 8     14 15 16   23 24 25
//
// Slot 0 is the top back-left corner. The middle layer has only eight
// slots: its geometric center is occupied by the mechanical core,
// which is not part of the data model.
//
// The kind of cubie at each slot never changes after construction.
// Only sticker colors may be replaced, via SetSticker.
type Cube struct {
	elements [26]Cubie
}

// New builds a cube with all 26 slots populated and every sticker
// uninitialized.
func New() *Cube {
	return &Cube{
		elements: [26]Cubie{
			// Top layer
			NewCorner(), NewEdge(), NewCorner(),
			NewEdge(), NewCenter(), NewEdge(),
			NewCorner(), NewEdge(), NewCorner(),
			// Middle layer (the mechanical core sits at its center)
			NewEdge(), NewCenter(), NewEdge(),
			NewCenter(), NewCenter(),
			NewEdge(), NewCenter(), NewEdge(),
			// Bottom layer
			NewCorner(), NewEdge(), NewCorner(),
			NewEdge(), NewCenter(), NewEdge(),
			NewCorner(), NewEdge(), NewCorner(),
		},
	}
}

// Cubie returns the cubie at raw storage slot i. Slots outside 0-25
// are unreachable through the named accessors; hitting one here is a
// programming defect and panics.
func (c *Cube) Cubie(i int) Cubie {
	if i < 0 || i >= len(c.elements) {
		panic(fmt.Sprintf("twisty: cubie slot %d out of range", i))
	}
	return c.elements[i]
}

// SetSticker replaces the sticker at index face of the cubie in slot.
// This is the single mutation path over a constructed cube; slot
// kinds and positions never change. Out-of-range indices panic.
func (c *Cube) SetSticker(slot, face int, s Sticker) {
	cb := c.Cubie(slot)
	if face < 0 || face >= cb.Kind().Arity() {
		panic(fmt.Sprintf("twisty: sticker index %d out of range for %s cubie", face, cb.Kind()))
	}
	switch v := cb.(type) {
	case *Center:
		v.SetFace(face, s)
	case *Edge:
		v.SetFace(face, s)
	case *Corner:
		v.SetFace(face, s)
	}
}

// Corners returns the eight corner cubies in canonical order: top
// back-left, top back-right, top front-left, top front-right, then
// the same sweep over the bottom layer.
func (c *Cube) Corners() [8]Cubie {
	var out [8]Cubie
	for i, slot := range cornerIndex {
		out[i] = c.elements[slot]
	}
	return out
}

// Corner returns the corner cubie at the named position.
func (c *Cube) Corner(p CornerPosition) Cubie {
	if p < CornerTopBackLeft || p > CornerBottomFrontRight {
		panic(fmt.Sprintf("twisty: corner position %d out of range", p))
	}
	return c.elements[cornerIndex[p]]
}

// Face returns the view of the nine cubies on the named plane, in
// raster order.
func (c *Cube) Face(k FaceKind) Face {
	if k < FaceTop || k > FaceBottom {
		panic(fmt.Sprintf("twisty: face kind %d out of range", k))
	}
	f := Face{kind: k}
	for i, slot := range faceIndex[k] {
		f.Elements[i] = c.elements[slot]
	}
	return f
}

// Rows returns all nine row views, three per layer from the top layer
// down, back to front within each layer. Exactly one row, the middle
// row of the middle layer, has no center cubie.
func (c *Cube) Rows() [9]Row {
	var out [9]Row
	for i := range rowIndex {
		out[i] = c.rowAt(i)
	}
	return out
}

// Row returns the row view at the named position.
func (c *Cube) Row(p RowPosition) Row {
	if p < RowTopBack || p > RowBottomFront {
		panic(fmt.Sprintf("twisty: row position %d out of range", p))
	}
	return c.rowAt(int(p))
}

func (c *Cube) rowAt(i int) Row {
	idx := rowIndex[i]
	r := Row{
		Left:  c.elements[idx[0]],
		Right: c.elements[idx[2]],
	}
	if idx[1] != coreSlot {
		r.Center = c.elements[idx[1]]
	}
	return r
}

// Columns returns all nine column views, addressed back-left through
// front-right in the horizontal plane. Exactly one column, the one
// through the center of the plane, has no middle cubie.
func (c *Cube) Columns() [9]Column {
	var out [9]Column
	for i := range columnIndex {
		out[i] = c.columnAt(i)
	}
	return out
}

// Column returns the column view at the named position.
func (c *Cube) Column(p ColumnPosition) Column {
	if p < ColumnBackLeft || p > ColumnFrontRight {
		panic(fmt.Sprintf("twisty: column position %d out of range", p))
	}
	return c.columnAt(int(p))
}

func (c *Cube) columnAt(i int) Column {
	idx := columnIndex[i]
	col := Column{
		Top:    c.elements[idx[0]],
		Bottom: c.elements[idx[2]],
	}
	if idx[1] != coreSlot {
		col.Center = c.elements[idx[1]]
	}
	return col
}
