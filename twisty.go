// Package twisty models the physical structure of a 3x3x3 twisty cube
// puzzle: its 26 movable cubies, their colored stickers, and the fixed
// spatial relationships between them. It is a pure data model with
// read-only geometric queries; it does not apply moves, scramble, or
// solve.
//
// # Structure
//
// A cube owns 26 cubies in a flat storage whose layout encodes the
// 3-D adjacency of the puzzle. Three cubie kinds exist, distinguished
// by sticker count:
//
//	twisty.Center // 1 sticker
//	twisty.Edge   // 2 stickers
//	twisty.Corner // 3 stickers
//
// The middle layer has no geometric center slot: that position is the
// mechanical core of a real cube and is absent from the model.
//
// # Views
//
// All queries project the same underlying storage; no cubie is ever
// duplicated:
//
//	c := twisty.New()
//
//	top := c.Face(twisty.FaceTop)         // 9 cubies, raster order
//	corner := c.Corner(twisty.CornerTopBackLeft)
//	row := c.Row(twisty.RowMiddleCenter)  // row.HasCenter() == false
//	col := c.Column(twisty.ColumnFrontLeft)
//
// The one row and the one column that cross the mechanical core have
// a nil center; every other line is complete.
//
// # Colors
//
// A fresh cube is entirely uninitialized. Sticker colors are assigned
// by collaborators built on top of the model, such as the solved-state
// color schemes in internal/scheme:
//
//	c.SetSticker(4, 0, twisty.StickerOf(twisty.White))
//	fmt.Println(c.Face(twisty.FaceTop).Sticker(4)) // W
package twisty
