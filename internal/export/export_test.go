package export

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/sketch"
	"LocalSketch/internal/state"
)

func TestDownloadWritesDefaultFilename(t *testing.T) {
	s, err := sketch.New(40, 20, sketch.WithPixelRatio(2))
	require.NoError(t, err)
	defer s.Close()
	s.BeginStroke(state.Point{X: 2, Y: 2})
	s.ExtendStroke(state.Point{X: 38, Y: 18})
	s.EndStroke()

	dir := t.TempDir()
	path, err := Download(dir, s)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "drawing.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 80, 40), img.Bounds())
	assert.Equal(t, 2, s.HistoryLen(), "download does not touch history")
}

type failingWriter struct{}

func (failingWriter) WritePNG(io.Writer) error { return errors.New("boom") }

func TestDownloadReportsEncodeError(t *testing.T) {
	_, err := Download(t.TempDir(), failingWriter{})
	assert.Error(t, err)
}

func TestPDF(t *testing.T) {
	s, err := sketch.New(200, 100, sketch.WithPixelRatio(2))
	require.NoError(t, err)
	defer s.Close()
	s.BeginStroke(state.Point{X: 10, Y: 50})
	s.ExtendStroke(state.Point{X: 190, Y: 50})
	s.EndStroke()

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, s.Image(), s.PixelRatio()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestPDFEmptyImage(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PDF(&buf, image.NewRGBA(image.Rectangle{}), 1))
}
