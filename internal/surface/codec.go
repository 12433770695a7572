package surface

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/tiff"
)

// Codec turns buffer content into snapshot bytes and back. Implementations
// must round-trip *image.RGBA without loss.
type Codec interface {
	Encode(w io.Writer, img image.Image) error
	Decode(r io.Reader) (image.Image, error)
}

// TIFFCodec stores snapshots as deflated TIFF with associated alpha, which
// keeps premultiplied pixels bit-exact across a round trip.
type TIFFCodec struct{}

func (TIFFCodec) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func (TIFFCodec) Decode(r io.Reader) (image.Image, error) {
	return tiff.Decode(r)
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return pngEncoder.Encode(w, img)
}
