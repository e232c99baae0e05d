package renderer

import (
	"fmt"
	"image"

	"github.com/achilleasa/polaris-rt/types"
)

// A row-major colour buffer. Colours are stored unclamped and only
// tone-mapped when the image is converted for encoding.
type Image struct {
	Width  uint32
	Height uint32
	Pixels []types.Colour
}

// Allocate an image with every pixel set to the background colour.
func NewImage(width, height uint32, background types.Colour) (*Image, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidFrameDims, width, height)
	}

	pixels := make([]types.Colour, int(width)*int(height))
	for idx := range pixels {
		pixels[idx] = background
	}

	return &Image{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// Get pixel colour.
func (img *Image) At(x, y uint32) types.Colour {
	return img.Pixels[y*img.Width+x]
}

// Set pixel colour.
func (img *Image) Set(x, y uint32, c types.Colour) {
	img.Pixels[y*img.Width+x] = c
}

// Tone-map and quantize the image into an 8-bit RGBA image.
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, int(img.Width), int(img.Height)))
	for idx, c := range img.Pixels {
		rgb := c.RGB8()
		offset := idx * 4
		out.Pix[offset] = rgb[0]
		out.Pix[offset+1] = rgb[1]
		out.Pix[offset+2] = rgb[2]
		out.Pix[offset+3] = 255
	}
	return out
}

func (img *Image) String() string {
	return fmt.Sprintf("%dx%d image", img.Width, img.Height)
}
