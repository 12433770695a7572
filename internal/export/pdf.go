package export

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"

	"LocalSketch/internal/surface"
)

// PDF writes a one-page document sized to the logical canvas (one point
// per logical unit) with img embedded at full device resolution.
func PDF(w io.Writer, img image.Image, ratio float64) error {
	if ratio <= 0 {
		ratio = 1
	}
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("export pdf: empty image")
	}
	pw, ph := float64(b.Dx())/ratio, float64(b.Dy())/ratio

	var encoded bytes.Buffer
	if err := surface.EncodePNG(&encoded, img); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	p.SetAutoPageBreak(false, 0)
	p.SetMargins(0, 0, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("drawing", opts, &encoded)
	p.ImageOptions("drawing", 0, 0, pw, ph, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}
