package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"LocalSketch/internal/export"
)

// downloadDir mirrors a browser download: ~/Downloads when it exists,
// the temp dir otherwise.
func downloadDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, "Downloads")
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			return dir
		}
	}
	return os.TempDir()
}

// download saves the PNG under the default name without asking.
func (c *controller) download() {
	path, err := export.Download(downloadDir(), c.board.Session())
	if err != nil {
		c.log.Warn("download failed", "err", err)
		dialog.ShowError(err, c.window)
		return
	}
	c.log.Info("drawing downloaded", "path", path)
	c.setStatus("Saved " + path)
}

// saveAs lets the user pick where the PNG goes.
func (c *controller) saveAs() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, c.window)
			return
		}
		if writer == nil {
			return
		}
		if err := c.writeTo(writer, func(w fyne.URIWriteCloser) error {
			return c.board.Session().WritePNG(w)
		}); err != nil {
			dialog.ShowError(err, c.window)
		}
	}, c.window)
	d.SetFileName(export.DefaultFilename)
	d.Show()
}

func (c *controller) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, c.window)
			return
		}
		if writer == nil {
			return
		}
		s := c.board.Session()
		if err := c.writeTo(writer, func(w fyne.URIWriteCloser) error {
			return export.PDF(w, s.Image(), s.PixelRatio())
		}); err != nil {
			dialog.ShowError(err, c.window)
		}
	}, c.window)
	d.SetFileName("drawing.pdf")
	d.Show()
}

func (c *controller) writeTo(writer fyne.URIWriteCloser, write func(fyne.URIWriteCloser) error) error {
	uri := writer.URI().String()
	werr := write(writer)
	cerr := writer.Close()
	if err := errors.Join(werr, cerr); err != nil {
		c.log.Warn("export failed", "uri", uri, "err", err)
		return fmt.Errorf("save %s: %w", uri, err)
	}
	c.log.Info("drawing exported", "uri", uri)
	c.setStatus("Saved " + uri)
	return nil
}
