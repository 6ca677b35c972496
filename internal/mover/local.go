// Package mover relocates classified files into category folders on the local
// filesystem.
package mover

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"docsort/internal/store"
)

// Classifier decides the category for a file path.
type Classifier interface {
	Classify(path string) string
}

// Result describes one completed or planned move.
type Result struct {
	Name     string
	Category string
	From     string
	To       string
}

// Local moves top-level files of a base directory into category
// subdirectories.
type Local struct {
	engine  Classifier
	history store.Recorder
}

// NewLocal returns a local mover. history may be nil to skip recording.
func NewLocal(engine Classifier, history store.Recorder) *Local {
	return &Local{engine: engine, history: history}
}

// EnsureDirs creates one subdirectory per category under base.
func (l *Local) EnsureDirs(base string, categories []string) error {
	for _, c := range categories {
		if err := os.MkdirAll(filepath.Join(base, c), 0o755); err != nil {
			return fmt.Errorf("create category dir %q: %w", c, err)
		}
	}
	return nil
}

// Run classifies and moves every eligible top-level file under base. Hidden
// files (leading "." or "~") and directories, including the category dirs
// themselves, are skipped. With dryRun set, nothing is created or moved and
// the returned results describe what would happen.
func (l *Local) Run(ctx context.Context, base string, categories []string, dryRun bool) ([]Result, error) {
	if !dryRun {
		if err := l.EnsureDirs(base, categories); err != nil {
			return nil, err
		}
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("read base dir: %w", err)
	}

	var results []Result
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() {
			continue
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") {
			continue
		}

		src := filepath.Join(base, name)
		category := l.engine.Classify(src)
		dest, skip := destPath(filepath.Join(base, category), name, src)
		if skip {
			continue
		}

		res := Result{Name: name, Category: category, From: src, To: dest}
		if dryRun {
			results = append(results, res)
			continue
		}

		if err := moveFile(src, dest); err != nil {
			log.WithError(err).WithField("file", name).Warn("move failed, skipping")
			continue
		}
		results = append(results, res)
		log.WithFields(log.Fields{"file": name, "category": category}).Info("moved")

		if l.history != nil {
			rec := store.Move{
				Name:        name,
				Source:      src,
				Destination: dest,
				Category:    category,
				Backend:     "local",
			}
			if err := l.history.Record(ctx, rec); err != nil {
				log.WithError(err).WithField("file", name).Warn("failed to record move")
			}
		}
	}
	return results, nil
}

// destPath picks a collision-free destination for name inside dir. skip is
// true when the destination already holds the very same file. On collision
// with a different file, a _dupN suffix is inserted before the extension,
// using the smallest free N.
func destPath(dir, name, src string) (dest string, skip bool) {
	dest = filepath.Join(dir, name)
	if _, err := os.Lstat(dest); err != nil {
		return dest, false
	}
	if sameFile(src, dest) {
		return "", true
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		dest = filepath.Join(dir, fmt.Sprintf("%s_dup%d%s", stem, n, ext))
		if _, err := os.Lstat(dest); err != nil {
			return dest, false
		}
	}
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// moveFile renames src to dest, falling back to copy+remove when rename fails
// (cross-device moves).
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return os.Remove(src)
}
