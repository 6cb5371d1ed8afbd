package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source represents a discovered image file.
type Source struct {
	// Path is the path to the file on disk.
	Path string
	// Name is the base file name.
	Name string
}

// sourcePatterns are the exact-case globs the importer accepts. Other case
// mixes such as ".Jpg" are not matched.
var sourcePatterns = []string{"*.jpg", "*.JPG", "*.jpeg", "*.JPEG"}

// ErrDirNotFound reports a missing input directory. Callers treat it as a
// no-op rather than a failure.
var ErrDirNotFound = errors.New("directory not found")

// ScanAssets lists the entries in dir whose lowercased name ends in .jpg or
// .jpeg, sorted by name in plain byte order. Entries are selected by name
// alone: symlinks are followed when opened, and anything that cannot be read
// as an image fails later as a per-file error.
func ScanAssets(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, err
	}

	var sources []Source
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".jpg" && ext != ".jpeg" {
			continue
		}
		sources = append(sources, Source{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
		})
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name })
	return sources, nil
}

// GlobSources collects the files in dir matching each of the accepted
// patterns and sorts the combined full paths as plain strings, so
// "img_10.jpg" comes before "img_2.jpg" and "B.JPG" before "a.jpg".
func GlobSources(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var files []string
	for _, pattern := range sourcePatterns {
		matches, err := filepath.Glob(filepath.Join(globEscape(dir), pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// globEscape quotes glob metacharacters in a literal directory path.
func globEscape(path string) string {
	if !strings.ContainsAny(path, `*?[\`) || filepath.Separator == '\\' {
		return path
	}
	var b strings.Builder
	for _, r := range path {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
