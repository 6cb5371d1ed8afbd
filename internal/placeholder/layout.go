package placeholder

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Box is a text extent measured from the top-left of the line box, where
// y=0 is the ascender line rather than the baseline.
type Box struct {
	Left, Top, Right, Bottom float64
}

func (b Box) Width() float64  { return b.Right - b.Left }
func (b Box) Height() float64 { return b.Bottom - b.Top }

func (b Box) empty() bool { return b.Width() <= 0 || b.Height() <= 0 }

// Measurer reports the extent of text rendered with face.
type Measurer func(face font.Face, text string) Box

// InkBox measures the union of the glyph bounding boxes.
func InkBox(face font.Face, text string) Box {
	b, _ := font.BoundString(face, text)
	ascent := toFloat(face.Metrics().Ascent)
	return Box{
		Left:   toFloat(b.Min.X),
		Top:    ascent + toFloat(b.Min.Y),
		Right:  toFloat(b.Max.X),
		Bottom: ascent + toFloat(b.Max.Y),
	}
}

// AdvanceBox measures the advance width and the full line height.
func AdvanceBox(face font.Face, text string) Box {
	m := face.Metrics()
	return Box{
		Right:  toFloat(font.MeasureString(face, text)),
		Bottom: toFloat(m.Ascent + m.Descent),
	}
}

// measurers are tried in order; the first non-empty box wins.
var measurers = []Measurer{InkBox, AdvanceBox}

// Layout is the placement of a centered label.
type Layout struct {
	TextW, TextH float64
	// X and Y locate the top-left of the line box; the baseline sits at
	// Y plus the face ascent.
	X, Y float64
	Dot  fixed.Point26_6
}

// Center places text so that its measured box is centered on a w×h canvas.
func Center(face font.Face, text string, w, h int) Layout {
	var box Box
	for _, measure := range measurers {
		if box = measure(face, text); !box.empty() {
			break
		}
	}

	l := Layout{TextW: box.Width(), TextH: box.Height()}
	l.X = (float64(w) - l.TextW) / 2
	l.Y = (float64(h) - l.TextH) / 2
	l.Dot = fixed.Point26_6{
		X: toFixed(l.X),
		Y: toFixed(l.Y) + face.Metrics().Ascent,
	}
	return l
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
