package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/AnyUserName/assetprep-cli/internal/hasher"
	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/rwcarlsen/goexif/exif"
)

// New creates an empty report with defaults.
func New(dir string, expected int) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Dir:         dir,
		Expected:    expected,
	}
}

// Scan inspects slots 0..expected-1 of dir and lists stray files.
// It never modifies the directory.
func Scan(dir string, expected int) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	r := New(dir, expected)
	for i := 0; i < expected; i++ {
		r.Slots = append(r.Slots, inspectSlot(dir, i))
	}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if i, ok := ParseSlotName(e.Name()); ok && i < expected {
			continue
		}
		r.Strays = append(r.Strays, e.Name())
	}
	r.ComputeStats()
	return r, nil
}

// ParseSlotName reports the index encoded in an img_{i}.jpg name. Zero-padded
// indices and other extensions are not slot names.
func ParseSlotName(name string) (int, bool) {
	digits, ok := strings.CutPrefix(name, "img_")
	if !ok {
		return 0, false
	}
	digits, ok = strings.CutSuffix(digits, ".jpg")
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(digits)
	if err != nil || i < 0 || profile.SlotName(i) != name {
		return 0, false
	}
	return i, true
}

func inspectSlot(dir string, i int) Slot {
	s := Slot{Index: i, Name: profile.SlotName(i)}
	path := filepath.Join(dir, s.Name)

	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.Error = err.Error()
		}
		return s
	}
	s.Present = true
	s.Size = info.Size()

	if s.Hash, err = hasher.FileHash(path); err != nil {
		s.Error = err.Error()
		return s
	}

	f, err := os.Open(path)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		s.Error = fmt.Sprintf("decode: %v", err)
		return s
	}
	b := img.Bounds()
	s.Width, s.Height = b.Dx(), b.Dy()
	avg := computeAvgColor(img)
	s.AvgColor = &avg

	if _, err := f.Seek(0, io.SeekStart); err == nil {
		if x, err := exif.Decode(f); err == nil {
			if t, err := x.DateTime(); err == nil {
				s.TakenAt = t.Format(time.RFC3339)
			}
		}
	}
	return s
}

// ComputeStats recalculates aggregate statistics from slots.
func (r *Report) ComputeStats() {
	var s Stats
	seen := map[string]bool{}
	for _, slot := range r.Slots {
		switch {
		case !slot.Present:
			s.Missing++
			continue
		case slot.Error != "":
			s.Invalid++
		}
		s.Present++
		s.TotalBytes += slot.Size
		if slot.Hash != "" {
			if seen[slot.Hash] {
				s.Duplicates++
			}
			seen[slot.Hash] = true
		}
	}
	r.Stats = s
}

// Problems lists the invariant violations that make the directory unusable
// by the front-end, and softer warnings about oversized or duplicate assets.
func (r *Report) Problems(maxWidth int) (errs, warnings []string) {
	hashes := map[string]int{}
	for _, s := range r.Slots {
		switch {
		case !s.Present && s.Error != "":
			errs = append(errs, fmt.Sprintf("%s: %s", s.Name, s.Error))
		case !s.Present:
			errs = append(errs, fmt.Sprintf("%s: missing", s.Name))
		case s.Error != "":
			errs = append(errs, fmt.Sprintf("%s: %s", s.Name, s.Error))
		default:
			if maxWidth > 0 && s.Width > maxWidth {
				warnings = append(warnings, fmt.Sprintf("%s: width %d exceeds %d", s.Name, s.Width, maxWidth))
			}
			if prev, ok := hashes[s.Hash]; ok {
				warnings = append(warnings, fmt.Sprintf("%s: same content as %s", s.Name, profile.SlotName(prev)))
			} else {
				hashes[s.Hash] = s.Index
			}
		}
	}
	for _, name := range r.Strays {
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".jpg" || ext == ".jpeg" {
			warnings = append(warnings, fmt.Sprintf("%s: not a slot name and will not be loaded", name))
		}
	}
	return errs, warnings
}

// WriteJSON serializes the report as indented JSON.
func WriteJSON(r *Report, w io.Writer) error {
	r.ComputeStats()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// computeAvgColor calculates the average RGB color of an image.
func computeAvgColor(img image.Image) [3]uint8 {
	bounds := img.Bounds()
	count := uint64(bounds.Dx()) * uint64(bounds.Dy())
	if count == 0 {
		return [3]uint8{}
	}
	var rSum, gSum, bSum uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
		}
	}
	return [3]uint8{uint8(rSum / count), uint8(gSum / count), uint8(bSum / count)}
}
