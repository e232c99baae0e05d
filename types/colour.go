package types

import "fmt"

// An RGB colour. Channels are nominally in the [0, 1] range but are not
// clamped so that light contributions can be accumulated before tone-mapping.
type Colour struct {
	R, G, B float32
}

var (
	Black = Colour{}
	White = Colour{1, 1, 1}
)

// Decode a 0xRRGGBB value.
func ColourFromHex(hex uint32) Colour {
	return Colour{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
	}
}

// Encode colour as a 0xRRGGBB value. Each channel is scaled to 255 and
// truncated to the byte range.
func (c Colour) Hex() uint32 {
	return uint32(channelToByte(c.R))<<16 | uint32(channelToByte(c.G))<<8 | uint32(channelToByte(c.B))
}

// Add a colour.
func (c Colour) Add(c2 Colour) Colour {
	return Colour{c.R + c2.R, c.G + c2.G, c.B + c2.B}
}

// Multiply two colours channel by channel.
func (c Colour) Mul(c2 Colour) Colour {
	return Colour{c.R * c2.R, c.G * c2.G, c.B * c2.B}
}

// Multiply all channels with a scalar.
func (c Colour) Scale(s float32) Colour {
	return Colour{c.R * s, c.G * s, c.B * s}
}

// Get the value of the brightest channel.
func (c Colour) MaxChannel() float32 {
	max := c.R
	if c.G > max {
		max = c.G
	}
	if c.B > max {
		max = c.B
	}
	return max
}

// Map colour into displayable range. If any channel exceeds 1 the whole
// colour is rescaled by 1/max so channel ratios are preserved; the result
// is then clamped to [0, 1].
func (c Colour) ToneMap() Colour {
	if max := c.MaxChannel(); max > 1 {
		c = c.Scale(1 / max)
	}
	return Colour{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Tone-map and quantize the colour to 8 bits per channel.
func (c Colour) RGB8() [3]uint8 {
	c = c.ToneMap()
	return [3]uint8{channelToByte(c.R), channelToByte(c.G), channelToByte(c.B)}
}

// RGBA implements the color.Color interface using the tone-mapped value.
func (c Colour) RGBA() (r, g, b, a uint32) {
	rgb := c.RGB8()
	r = uint32(rgb[0])
	r |= r << 8
	g = uint32(rgb[1])
	g |= g << 8
	b = uint32(rgb[2])
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Colour) String() string {
	return fmt.Sprintf("#%06x", c.Hex())
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func channelToByte(v float32) uint8 {
	return uint8(255 * clamp01(v))
}
