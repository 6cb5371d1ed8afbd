package placeholder

import (
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestCenter_BitmapFace(t *testing.T) {
	face := basicfont.Face7x13
	l := Center(face, "12", 100, 50)

	if l.TextH != 13 {
		t.Errorf("text height: got %v, want 13 (ascent+descent)", l.TextH)
	}
	if 2*l.X+l.TextW != 100 {
		t.Errorf("not horizontally centered: x=%v w=%v", l.X, l.TextW)
	}
	if 2*l.Y+l.TextH != 50 {
		t.Errorf("not vertically centered: y=%v h=%v", l.Y, l.TextH)
	}
	if got, want := l.Dot.Y, toFixed(l.Y)+face.Metrics().Ascent; got != want {
		t.Errorf("baseline: got %v, want %v", got, want)
	}
}

func TestCenter_ScalableFaceDeterministic(t *testing.T) {
	face, err := EmbeddedFont{Label: "Go Regular", Data: goregular.TTF}.Face(300)
	if err != nil {
		t.Fatalf("face: %v", err)
	}
	defer face.Close()

	a := Center(face, "42", 1920, 1080)
	b := Center(face, "42", 1920, 1080)
	if a != b {
		t.Errorf("layout differs between runs: %+v vs %+v", a, b)
	}
	if a.TextW <= 0 || a.TextH <= 0 {
		t.Fatalf("empty text box: %+v", a)
	}
	if a.TextH > 300 {
		t.Errorf("ink height %v exceeds the font size", a.TextH)
	}
	if 2*a.X+a.TextW != 1920 || 2*a.Y+a.TextH != 1080 {
		t.Errorf("not centered: %+v", a)
	}
}

func TestAdvanceBox_BitmapFace(t *testing.T) {
	box := AdvanceBox(basicfont.Face7x13, "  ")
	if box.Width() != 14 {
		t.Errorf("advance width: got %v, want 14", box.Width())
	}
	if box.Height() != 13 {
		t.Errorf("line height: got %v, want 13", box.Height())
	}
}

func TestCenter_EmptyInkUsesAdvance(t *testing.T) {
	face, err := EmbeddedFont{Label: "Go Regular", Data: goregular.TTF}.Face(40)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	if !InkBox(face, " ").empty() {
		t.Skip("space glyph has ink on this face")
	}
	l := Center(face, " ", 200, 100)
	want := AdvanceBox(face, " ")
	if l.TextW != want.Width() || l.TextH != want.Height() {
		t.Errorf("got %vx%v, want advance box %vx%v", l.TextW, l.TextH, want.Width(), want.Height())
	}
}
