package twisty

// Sticker is a single colored facet attached to one side of a cubie.
// Stickers are plain comparable values: two stickers are equal exactly
// when their colors are equal. A sticker is never mutated in place;
// updates replace the whole value.
type Sticker struct {
	Color Color
}

// NewSticker returns an uninitialized sticker.
func NewSticker() Sticker {
	return Sticker{Color: Uninit}
}

// StickerOf returns a sticker carrying the given color.
func StickerOf(c Color) Sticker {
	return Sticker{Color: c}
}

// Opposite returns the opposite of this sticker's color.
func (s Sticker) Opposite() Color {
	return s.Color.Opposite()
}

// String returns the one-letter code of the sticker's color.
func (s Sticker) String() string {
	return s.Color.String()
}
