package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AnyUserName/assetprep-cli/internal/hasher"
	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
)

// ImportConfig holds all parameters for an import run.
type ImportConfig struct {
	SourceDir   string
	DestDir     string
	TargetCount int
	DryRun      bool
	Logger      zerolog.Logger
}

// Copied records one source file placed into a slot.
type Copied struct {
	Index  int
	Source string
	Dest   string
	Hash   string // xxhash64 of the copied content; empty on dry runs
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Missing bool // source directory did not exist
	Found   int
	Copied  []Copied
}

// Import copies the first TargetCount source photographs, in plain string
// order of their paths, to img_0.jpg … in DestDir, replacing whatever is
// there. The first copy error aborts the run; earlier copies stay.
func Import(cfg ImportConfig) (*ImportResult, error) {
	if cfg.TargetCount <= 0 {
		return nil, fmt.Errorf("target count must be positive, got %d", cfg.TargetCount)
	}
	log := cfg.Logger
	res := &ImportResult{}

	files, err := GlobSources(cfg.SourceDir)
	if err != nil {
		if errors.Is(err, ErrDirNotFound) {
			log.Warn().Msgf("Directory %s not found.", cfg.SourceDir)
			res.Missing = true
			return res, nil
		}
		return nil, fmt.Errorf("scan sources: %w", err)
	}
	res.Found = len(files)
	if len(files) == 0 {
		log.Warn().Msg("No images found in source directory.")
		return res, nil
	}

	log.Info().Msgf("Found %d images in %s.", len(files), cfg.SourceDir)
	count := min(len(files), cfg.TargetCount)
	log.Info().Msgf("Processing first %d images...", count)

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.DestDir, 0o755); err != nil {
			return res, fmt.Errorf("create dest dir: %w", err)
		}
	}

	for i, src := range files[:count] {
		dst := filepath.Join(cfg.DestDir, profile.SlotName(i))
		if cfg.DryRun {
			res.Copied = append(res.Copied, Copied{Index: i, Source: src, Dest: dst})
			log.Info().Msgf("[dry-run] would copy %s -> %s", src, dst)
			continue
		}

		sum, err := copyFile(src, dst)
		if err != nil {
			return res, fmt.Errorf("copy %s to %s: %w", src, dst, err)
		}
		res.Copied = append(res.Copied, Copied{Index: i, Source: src, Dest: dst, Hash: sum})
		log.Info().Msgf("Copied %s -> %s", src, dst)
	}

	log.Info().Msg("Done processing images.")
	return res, nil
}

// copyFile replaces dst with the content of src, then carries over the
// permission bits and timestamps. The copy goes through a temp file in the
// destination directory and is verified against the source hash.
func copyFile(src, dst string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	h := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), in); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return "", err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return "", err
	}

	// Access time is not portable to read; both times take the source mtime.
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return "", err
	}

	want := hasher.Sum(h.Sum64())
	got, err := hasher.FileHash(dst)
	if err != nil {
		return "", err
	}
	if got != want {
		return "", fmt.Errorf("hash mismatch: source %s, copy %s", want, got)
	}
	return got, nil
}
