package twisty

import "testing"

func TestNewCubieArity(t *testing.T) {
	tests := []struct {
		cubie Cubie
		kind  Kind
		arity int
	}{
		{NewCenter(), KindCenter, 1},
		{NewEdge(), KindEdge, 2},
		{NewCorner(), KindCorner, 3},
	}

	for _, tt := range tests {
		if got := tt.cubie.Kind(); got != tt.kind {
			t.Errorf("Kind() = %v, want %v", got, tt.kind)
		}
		faces := tt.cubie.Faces()
		if len(faces) != tt.arity {
			t.Errorf("%v cubie has %d faces, want %d", tt.kind, len(faces), tt.arity)
		}
		for i, f := range faces {
			if f.Color != Uninit {
				t.Errorf("%v face %d = %v, want Uninit", tt.kind, i, f.Color)
			}
		}
	}
}

func TestKindArity(t *testing.T) {
	if KindCenter.Arity() != 1 || KindEdge.Arity() != 2 || KindCorner.Arity() != 3 {
		t.Error("kind arities should be 1/2/3 for center/edge/corner")
	}
}

func TestMustCubie(t *testing.T) {
	tests := []struct {
		tag  string
		kind Kind
	}{
		{"center", KindCenter},
		{"edge", KindEdge},
		{"corner", KindCorner},
	}

	for _, tt := range tests {
		cb := MustCubie(tt.tag)
		if cb.Kind() != tt.kind {
			t.Errorf("MustCubie(%q).Kind() = %v, want %v", tt.tag, cb.Kind(), tt.kind)
		}
	}
}

func TestMustCubieUnknownTagPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCubie with unknown tag should panic")
		}
	}()
	MustCubie("sphere")
}

func TestDowncast(t *testing.T) {
	var cb Cubie = MustCubie("corner")

	corner, ok := cb.(*Corner)
	if !ok {
		t.Fatal("corner cubie should downcast to *Corner")
	}
	if len(corner.Faces()) != 3 {
		t.Errorf("downcast corner has %d faces, want 3", len(corner.Faces()))
	}

	if _, ok := cb.(*Center); ok {
		t.Error("corner cubie should not downcast to *Center")
	}
}

func TestFromStickersEmpty(t *testing.T) {
	if got := CenterFromStickers(nil); len(got.Faces()) != 1 || got.Faces()[0].Color != Uninit {
		t.Error("CenterFromStickers(nil) should behave like NewCenter")
	}
	if got := EdgeFromStickers([]Sticker{}); len(got.Faces()) != 2 {
		t.Error("EdgeFromStickers(empty) should behave like NewEdge")
	}
	if got := CornerFromStickers(nil); len(got.Faces()) != 3 {
		t.Error("CornerFromStickers(nil) should behave like NewCorner")
	}
}

func TestFromStickersTruncates(t *testing.T) {
	long := []Sticker{
		StickerOf(Blue), StickerOf(Green), StickerOf(Red),
		StickerOf(White), StickerOf(Yellow), StickerOf(Orange),
		StickerOf(Blue), StickerOf(Green), StickerOf(Red),
		StickerOf(White),
	}

	center := CenterFromStickers(long)
	if got := center.Faces(); len(got) != 1 || got[0].Color != Blue {
		t.Errorf("CenterFromStickers(10) = %v, want first sticker only", got)
	}

	edge := EdgeFromStickers(long[:4])
	if got := edge.Faces(); len(got) != 2 || got[0].Color != Blue || got[1].Color != Green {
		t.Errorf("EdgeFromStickers(4) = %v, want first two stickers", got)
	}

	corner := CornerFromStickers(long[:4])
	if got := corner.Faces(); len(got) != 3 || got[0].Color != Blue || got[1].Color != Green || got[2].Color != Red {
		t.Errorf("CornerFromStickers(4) = %v, want first three stickers", got)
	}
}

func TestFromStickersReplicatesShortInput(t *testing.T) {
	// An input shorter than the arity replicates its first sticker
	// across every slot, producing a uniform-color cubie.
	corner := CornerFromStickers([]Sticker{StickerOf(Red)})
	for i, f := range corner.Faces() {
		if f.Color != Red {
			t.Errorf("corner face %d = %v, want Red", i, f.Color)
		}
	}

	corner2 := CornerFromStickers([]Sticker{StickerOf(White), StickerOf(Blue)})
	for i, f := range corner2.Faces() {
		if f.Color != White {
			t.Errorf("corner face %d = %v, want White (first input replicated)", i, f.Color)
		}
	}

	edge := EdgeFromStickers([]Sticker{StickerOf(Yellow)})
	for i, f := range edge.Faces() {
		if f.Color != Yellow {
			t.Errorf("edge face %d = %v, want Yellow", i, f.Color)
		}
	}
}

func TestCornerRoundTrip(t *testing.T) {
	in := [3]Sticker{StickerOf(White), StickerOf(Green), StickerOf(Red)}
	corner := CornerOf(in)

	got := corner.Faces()
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("Faces()[%d] = %v, want %v", i, got[i], in[i])
		}
	}
}

func TestFixedArrayConstructors(t *testing.T) {
	center := CenterOf([1]Sticker{StickerOf(White)})
	if center.Faces()[0].Color != White {
		t.Error("CenterOf should preserve the given sticker")
	}

	edge := EdgeOf([2]Sticker{StickerOf(White), StickerOf(Green)})
	if edge.Faces()[0].Color != White || edge.Faces()[1].Color != Green {
		t.Error("EdgeOf should preserve sticker order")
	}
}

func TestSetFace(t *testing.T) {
	edge := NewEdge()
	edge.SetFace(1, StickerOf(Orange))

	if edge.Faces()[0].Color != Uninit {
		t.Error("SetFace should not touch other slots")
	}
	if edge.Faces()[1].Color != Orange {
		t.Error("SetFace should replace the addressed sticker")
	}
}

func TestSetFaceOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetFace past the arity should panic")
		}
	}()
	NewCenter().SetFace(1, StickerOf(Blue))
}
