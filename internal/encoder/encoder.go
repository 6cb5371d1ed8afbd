package encoder

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// Encoder encodes an image to a specific format.
type Encoder interface {
	// Format returns the output format name (e.g. "jpeg").
	Format() string

	// Encode converts the image to bytes at the given quality (1-100).
	Encode(img image.Image, quality int) ([]byte, error)
}

// Save encodes img and replaces path with the result. The data is written
// to a temporary file in the destination directory and renamed into place,
// so an existing file is either fully replaced or left untouched.
func Save(enc Encoder, img image.Image, quality int, path string) (int64, error) {
	data, err := enc.Encode(img, quality)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	if err := WriteFileAtomic(path, data, 0o644); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// WriteFileAtomic writes data to a temp sibling of path and renames it over path.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
