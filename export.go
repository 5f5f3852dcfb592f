package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ExportFileName is the download name for a ticket exported at t.
func ExportFileName(t time.Time) string {
	return "lotto-ticket-" + t.UTC().Format("2006-01-02") + ".png"
}

// Exporter renders a ticket and writes it atomically into a directory.
type Exporter struct {
	r   *Renderer
	gen *Generator
	dir string
	now func() time.Time
}

func NewExporter(r *Renderer, gen *Generator, dir string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{r: r, gen: gen, dir: dir, now: time.Now}
}

// Bytes renders the sets and returns the PNG along with its file name.
func (e *Exporter) Bytes(sets []NumberSet) (string, []byte, error) {
	now := e.now()
	b, err := e.r.EncodePNG(sets, now, e.gen.IssueNumber())
	if err != nil {
		return "", nil, err
	}
	return ExportFileName(now), b, nil
}

// Save writes the exported ticket and returns the path. name may be empty
// to use ExportFileName.
func (e *Exporter) Save(sets []NumberSet, name string) (string, error) {
	fn, b, err := e.Bytes(sets)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = fn
	}
	path := filepath.Join(e.dir, name)
	if err := writeFileAtomic(path, b); err != nil {
		return "", err
	}
	return path, nil
}

func writeFileAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	f, err := os.CreateTemp(dir, ".lotto-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp := f.Name()
	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write image: %w", err)
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to set image mode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close image: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move image into place: %w", err)
	}
	return nil
}
