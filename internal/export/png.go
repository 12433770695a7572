// Package export writes the drawing out as image files.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultFilename is offered for every download.
const DefaultFilename = "drawing.png"

// PNGWriter is satisfied by a sketch session.
type PNGWriter interface {
	WritePNG(w io.Writer) error
}

// Download writes the drawing to dir/DefaultFilename and returns the path.
func Download(dir string, src PNGWriter) (string, error) {
	path := filepath.Join(dir, DefaultFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if err := src.WritePNG(f); err != nil {
		f.Close()
		return "", fmt.Errorf("download: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	return path, nil
}
