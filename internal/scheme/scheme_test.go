package scheme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/twistyworks/twisty"
)

func TestClassicIsValid(t *testing.T) {
	if err := Classic().Validate(); err != nil {
		t.Errorf("Classic() should validate, got %v", err)
	}
}

func TestClassicOppositeFaces(t *testing.T) {
	s := Classic()

	pairs := []struct {
		a, b twisty.FaceKind
	}{
		{twisty.FaceTop, twisty.FaceBottom},
		{twisty.FaceLeft, twisty.FaceRight},
		{twisty.FaceFront, twisty.FaceBack},
	}
	for _, p := range pairs {
		if s.Color(p.a).Opposite() != s.Color(p.b) {
			t.Errorf("classic scheme: %s (%s) and %s (%s) should carry opposite colors",
				p.a, s.Color(p.a).Name(), p.b, s.Color(p.b).Name())
		}
	}
}

func TestValidateRejectsMissingColor(t *testing.T) {
	s := Classic()
	s.Front = twisty.Uninit
	if err := s.Validate(); err == nil {
		t.Error("scheme with an unset face should not validate")
	}
}

func TestValidateRejectsDuplicateColor(t *testing.T) {
	s := Classic()
	s.Front = s.Back
	if err := s.Validate(); err == nil {
		t.Error("scheme with a duplicate color should not validate")
	}
}

func TestApplyPaintsEverySticker(t *testing.T) {
	c := twisty.New()
	Apply(c, Classic())

	total := 0
	for i := 0; i < 26; i++ {
		for j, f := range c.Cubie(i).Faces() {
			total++
			if f.Color == twisty.Uninit {
				t.Errorf("slot %d sticker %d still Uninit after Apply", i, j)
			}
		}
	}
	if total != 54 {
		t.Errorf("cube carries %d stickers, want 54", total)
	}
}

func TestApplyFaceColors(t *testing.T) {
	c := twisty.New()
	s := Classic()
	Apply(c, s)

	for k := twisty.FaceTop; k <= twisty.FaceBottom; k++ {
		face := c.Face(k)
		for i := 0; i < 9; i++ {
			if got := face.Sticker(i); got.Color != s.Color(k) {
				t.Errorf("%s face sticker %d = %s, want %s", k, i, got.Color.Name(), s.Color(k).Name())
			}
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	c := twisty.New()
	Apply(c, Classic())
	Apply(c, Classic())

	top := c.Face(twisty.FaceTop)
	for i := 0; i < 9; i++ {
		if top.Sticker(i).Color != twisty.White {
			t.Errorf("top sticker %d changed on repeated Apply", i)
		}
	}
}

func TestParse(t *testing.T) {
	data := []byte(`top: white
left: orange
right: red
front: green
back: blue
bottom: yellow
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s != Classic() {
		t.Errorf("parsed scheme = %+v, want classic", s)
	}
}

func TestParseRejectsUnknownColor(t *testing.T) {
	data := []byte(`top: purple
left: orange
right: red
front: green
back: blue
bottom: yellow
`)
	if _, err := Parse(data); err == nil {
		t.Error("Parse should reject an unknown color name")
	}
}

func TestParseRejectsDuplicate(t *testing.T) {
	data := []byte(`top: white
left: white
right: red
front: green
back: blue
bottom: yellow
`)
	if _, err := Parse(data); err == nil {
		t.Error("Parse should reject a duplicate color")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.yaml")
	data := []byte(`top: yellow
left: red
right: orange
front: blue
back: green
bottom: white
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Top != twisty.Yellow || s.Bottom != twisty.White {
		t.Errorf("loaded scheme = %+v", s)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
