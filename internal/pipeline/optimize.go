package pipeline

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/AnyUserName/assetprep-cli/internal/encoder"
	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// OptimizeConfig holds all parameters for a resize pass.
type OptimizeConfig struct {
	Dir      string
	MaxWidth int
	Quality  int
	DryRun   bool
	Logger   zerolog.Logger
}

// Outcome describes what happened to one file.
type Outcome struct {
	Name          string
	Width, Height int
	NewWidth      int
	NewHeight     int
	Resized       bool
}

// OptimizeResult summarizes a resize pass.
type OptimizeResult struct {
	Missing bool // directory did not exist; nothing was done
	Found   int
	Resized []Outcome
	Skipped []Outcome
	Errors  *ErrorStats
}

// ScaledHeight returns the height that keeps the aspect ratio of a w×h image
// scaled to maxWidth, rounded to the nearest pixel (halves to even) and
// never below 1.
func ScaledHeight(w, h, maxWidth int) int {
	nh := int(math.RoundToEven(float64(h) * float64(maxWidth) / float64(w)))
	if nh < 1 {
		nh = 1
	}
	return nh
}

// Optimize downsamples every JPEG in cfg.Dir wider than cfg.MaxWidth in
// place. A failure on one file is logged and recorded; the pass always
// continues to the next file. A missing directory is a reported no-op.
func Optimize(cfg OptimizeConfig) (*OptimizeResult, error) {
	if cfg.MaxWidth <= 0 {
		return nil, fmt.Errorf("max width must be positive, got %d", cfg.MaxWidth)
	}
	log := cfg.Logger
	res := &OptimizeResult{Errors: NewErrorStats()}

	sources, err := ScanAssets(cfg.Dir)
	if err != nil {
		if errors.Is(err, ErrDirNotFound) {
			log.Warn().Msgf("Directory %s not found.", cfg.Dir)
			res.Missing = true
			return res, nil
		}
		return nil, fmt.Errorf("scan: %w", err)
	}
	res.Found = len(sources)
	log.Info().Msgf("Found %d images to optimize.", len(sources))

	for _, src := range sources {
		out, err := optimizeFile(src, cfg)
		if err != nil {
			pe := Categorize(src.Name, err)
			res.Errors.Add(pe)
			log.Error().Str("category", string(pe.Category)).Msgf("Error processing %s: %v", src.Name, err)
			continue
		}
		if out.Resized {
			res.Resized = append(res.Resized, out)
			verb := "Resized"
			if cfg.DryRun {
				verb = "Would resize"
			}
			log.Info().Msgf("%s %s: %dx%d -> %dx%d", verb, out.Name, out.Width, out.Height, out.NewWidth, out.NewHeight)
		} else {
			res.Skipped = append(res.Skipped, out)
			log.Info().Msgf("Skipped %s (Width %d <= %d)", out.Name, out.Width, cfg.MaxWidth)
		}
	}

	if res.Errors.Total > 0 {
		log.Warn().Msgf("%d of %d images had errors", res.Errors.Total, res.Found)
	}
	log.Info().Msg("Optimization complete.")
	return res, nil
}

// optimizeFile handles a single asset: read the header, and only when the
// image is too wide decode, resize and replace it.
func optimizeFile(src Source, cfg OptimizeConfig) (Outcome, error) {
	out := Outcome{Name: src.Name}

	f, err := os.Open(src.Path)
	if err != nil {
		return out, err
	}
	defer f.Close()

	conf, _, err := image.DecodeConfig(f)
	if err != nil {
		return out, fmt.Errorf("%w: %w", errDecode, err)
	}
	out.Width, out.Height = conf.Width, conf.Height
	if conf.Width <= cfg.MaxWidth {
		return out, nil
	}

	out.Resized = true
	out.NewWidth = cfg.MaxWidth
	out.NewHeight = ScaledHeight(conf.Width, conf.Height, cfg.MaxWidth)
	if cfg.DryRun {
		return out, nil
	}

	info, err := f.Stat()
	if err != nil {
		return out, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return out, err
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return out, fmt.Errorf("%w: %w", errDecode, err)
	}
	f.Close()

	resized := imaging.Resize(img, out.NewWidth, out.NewHeight, imaging.Lanczos)
	data, err := (&encoder.JPEGEncoder{}).Encode(resized, cfg.Quality)
	if err != nil {
		return out, fmt.Errorf("%w: %w", errEncode, err)
	}
	// A symlinked asset is replaced at its target, leaving the link intact.
	target, err := filepath.EvalSymlinks(src.Path)
	if err != nil {
		return out, err
	}
	if err := encoder.WriteFileAtomic(target, data, info.Mode().Perm()); err != nil {
		return out, err
	}
	return out, nil
}
