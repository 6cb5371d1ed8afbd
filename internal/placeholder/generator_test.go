package placeholder

import (
	"image"
	"image/color"
	_ "image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/rs/zerolog"
)

func testOptions(dir string) Options {
	return Options{
		Dir:        dir,
		Count:      4,
		Width:      96,
		Height:     54,
		Saturation: 0.8,
		Value:      0.8,
		FontSize:   300,
		Quality:    80,
		Fonts:      []FontSource{BitmapFont{}},
		Logger:     zerolog.Nop(),
	}
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestGenerate_WritesSlots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets") // created on demand
	opts := testOptions(dir)

	res, err := Generate(opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(res.Files) != opts.Count {
		t.Fatalf("files: got %d, want %d", len(res.Files), opts.Count)
	}
	if res.Font != "basicfont 7x13" {
		t.Errorf("font: got %q", res.Font)
	}

	for i := 0; i < opts.Count; i++ {
		path := filepath.Join(dir, profile.SlotName(i))
		img := decodeFile(t, path)
		if b := img.Bounds(); b.Dx() != 96 || b.Dy() != 54 {
			t.Errorf("slot %d: size %dx%d", i, b.Dx(), b.Dy())
		}
		want := Background(i, opts.Count, 0.8, 0.8)
		r, g, b, _ := img.At(2, 2).RGBA()
		got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		if !near(got.R, want.R, 12) || !near(got.G, want.G, 12) || !near(got.B, want.B, 12) {
			t.Errorf("slot %d: corner colour %v, want ≈%v", i, got, want)
		}
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(dir)

	if _, err := Generate(opts); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "img_2.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(opts); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "img_2.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("regenerating with the same font produced different bytes")
	}
}

func TestGenerate_LabelDrawn(t *testing.T) {
	opts := testOptions("")
	face, _, err := ResolveFace(opts.Fonts, opts.FontSize)
	if err != nil {
		t.Fatal(err)
	}
	img := Render(3, opts, face)

	white := 0
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			if img.RGBAAt(x, y) == (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				white++
			}
		}
	}
	if white == 0 {
		t.Fatal("no label pixels drawn")
	}
	if c := img.RGBAAt(0, 0); c != Background(3, opts.Count, 0.8, 0.8) {
		t.Errorf("background: got %v", c)
	}
}

func TestGenerate_FailFast(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "assets")
	if err := os.WriteFile(blocker, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(testOptions(blocker)); err == nil {
		t.Fatal("expected error when asset dir is a file")
	}
}

func TestResolveFace_Order(t *testing.T) {
	sources := []FontSource{
		FontFile{Path: filepath.Join(t.TempDir(), "missing.ttc")},
		FontName{File: "NoSuchFont.ttf", Dirs: []string{t.TempDir()}},
		BitmapFont{},
	}
	face, name, err := ResolveFace(sources, 300)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	defer face.Close()
	if name != "basicfont 7x13" {
		t.Errorf("resolved %q, want the bitmap fallback", name)
	}

	if _, _, err := ResolveFace(sources[:2], 300); err == nil {
		t.Error("expected error when every source fails")
	}
}

func TestFontFile_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FontFile{Path: path}).Face(12); err == nil {
		t.Error("expected parse error")
	}
}
