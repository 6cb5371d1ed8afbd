package placeholder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource produces a face for the label. Sources are tried in order
// until one succeeds.
type FontSource interface {
	Name() string
	Face(size float64) (font.Face, error)
}

// FontFile loads a TrueType/OpenType font or collection from a fixed path.
type FontFile struct {
	Path string
}

func (f FontFile) Name() string { return f.Path }

func (f FontFile) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return parseFace(data, size)
}

// FontName resolves a bare font file name against a list of directories.
type FontName struct {
	File string
	Dirs []string
}

func (f FontName) Name() string { return f.File }

func (f FontName) Face(size float64) (font.Face, error) {
	for _, dir := range f.Dirs {
		path := filepath.Join(dir, f.File)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return FontFile{Path: path}.Face(size)
	}
	return nil, fmt.Errorf("font %s not found", f.File)
}

// EmbeddedFont parses font bytes compiled into the binary.
type EmbeddedFont struct {
	Label string
	Data  []byte
}

func (f EmbeddedFont) Name() string { return f.Label }

func (f EmbeddedFont) Face(size float64) (font.Face, error) {
	return parseFace(f.Data, size)
}

// BitmapFont is the fixed 7x13 built-in face. It ignores size and never fails.
type BitmapFont struct{}

func (BitmapFont) Name() string { return "basicfont 7x13" }

func (BitmapFont) Face(float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}

// DefaultFontSources returns the lookup order: the platform's Helvetica-like
// font, a generic Arial, the embedded Go Regular, then the bitmap face.
func DefaultFontSources() []FontSource {
	var sources []FontSource
	if p := platformFontPath(runtime.GOOS); p != "" {
		sources = append(sources, FontFile{Path: p})
	}
	sources = append(sources,
		FontName{File: "Arial.ttf", Dirs: fontDirs(runtime.GOOS)},
		EmbeddedFont{Label: "Go Regular", Data: goregular.TTF},
		BitmapFont{},
	)
	return sources
}

func platformFontPath(goos string) string {
	switch goos {
	case "darwin":
		return "/System/Library/Fonts/Helvetica.ttc"
	case "linux":
		return "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	case "windows":
		return `C:\Windows\Fonts\arial.ttf`
	}
	return ""
}

func fontDirs(goos string) []string {
	dirs := []string{"."}
	switch goos {
	case "darwin":
		dirs = append(dirs, "/Library/Fonts", "/System/Library/Fonts/Supplemental")
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	case "windows":
		dirs = append(dirs, `C:\Windows\Fonts`)
	default:
		dirs = append(dirs, "/usr/share/fonts/truetype/msttcorefonts", "/usr/share/fonts/TTF")
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".fonts"))
		}
	}
	return dirs
}

// ResolveFace returns the first face any source can produce, along with the
// name of that source.
func ResolveFace(sources []FontSource, size float64) (font.Face, string, error) {
	var errs []error
	for _, src := range sources {
		face, err := src.Face(size)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		return face, src.Name(), nil
	}
	if len(errs) == 0 {
		return nil, "", errors.New("no font sources configured")
	}
	return nil, "", fmt.Errorf("no usable font: %w", errors.Join(errs...))
}

func parseFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		coll, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, err
		}
		if f, err = coll.Font(0); err != nil {
			return nil, err
		}
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
