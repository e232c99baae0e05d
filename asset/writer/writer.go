package writer

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encode img to w using the requested format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPPM:
		err = EncodePPM(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("writer: unsupported image format %s", format)
	}

	if err != nil {
		return fmt.Errorf("writer: could not encode %s image: %w", format, err)
	}
	return nil
}

// Encode img into a byte slice using the requested format.
func EncodeBytes(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode img as a binary (P6) portable pixmap. Pixels are written in
// row-major order, top row first, one byte per channel.
func EncodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6 %d %d 255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	var rgb [3]byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rgb[0], rgb[1], rgb[2] = c.R, c.G, c.B
			if _, err := bw.Write(rgb[:]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// Write img to filename using the requested format.
func WriteImage(filename string, img image.Image, format Format) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	defer f.Close()

	if err = Encode(f, img, format); err != nil {
		return err
	}
	return f.Close()
}

// Scale img to the requested width preserving its aspect ratio. A zero
// width returns img unchanged.
func Resize(img image.Image, width uint) image.Image {
	if width == 0 || int(width) == img.Bounds().Dx() {
		return img
	}
	return resize.Resize(width, 0, img, resize.Bilinear)
}
