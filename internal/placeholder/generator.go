package placeholder

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AnyUserName/assetprep-cli/internal/encoder"
	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
)

// Options holds all parameters for a generator run.
type Options struct {
	Dir        string
	Count      int
	Width      int
	Height     int
	Saturation float64
	Value      float64
	FontSize   float64
	Quality    int
	// Fonts overrides DefaultFontSources when non-empty.
	Fonts  []FontSource
	Logger zerolog.Logger
}

// Result summarizes a generator run.
type Result struct {
	Files []string
	Font  string
}

// Generate writes Count placeholder images named img_0.jpg … into Dir.
// The first error aborts the run; files already written are left in place.
func Generate(opts Options) (*Result, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset dir: %w", err)
	}

	sources := opts.Fonts
	if len(sources) == 0 {
		sources = DefaultFontSources()
	}
	face, fontName, err := ResolveFace(sources, opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	log := opts.Logger
	log.Info().Msgf("Generating %d images in %s...", opts.Count, opts.Dir)
	log.Debug().Str("font", fontName).Msg("label font")

	res := &Result{Font: fontName}
	enc := &encoder.JPEGEncoder{}
	for i := 0; i < opts.Count; i++ {
		img := Render(i, opts, face)
		path := filepath.Join(opts.Dir, profile.SlotName(i))
		if _, err := encoder.Save(enc, img, opts.Quality, path); err != nil {
			return res, fmt.Errorf("write %s: %w", path, err)
		}
		res.Files = append(res.Files, path)
		log.Debug().Str("file", path).Msg("generated")
	}

	log.Info().Msg("Done.")
	return res, nil
}

// Render paints slot i: a hue-cycled background with the index centered in white.
func Render(i int, opts Options, face font.Face) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	bg := Background(i, opts.Count, opts.Saturation, opts.Value)
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	text := strconv.Itoa(i)
	l := Center(face, text, opts.Width, opts.Height)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  l.Dot,
	}
	d.DrawString(text)
	return img
}
