package color

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	componentMask = 0xFF

	redShift   = 16
	greenShift = 8
	blueShift  = 0

	rgbMask = componentMask<<redShift | componentMask<<greenShift | componentMask<<blueShift
)

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("color: invalid hex code")

// Color is an immutable sRGB color packed into 24 bits. The zero value is
// black. Colors are comparable; two colors are equal iff their packed
// encodings are equal.
type Color struct {
	enc uint32
}

// FromHexCode constructs a color from a packed 0xRRGGBB value. Bits above
// the low 24 are discarded.
func FromHexCode(code uint32) Color {
	return Color{enc: code & rgbMask}
}

// ParseHex parses a six-digit hex color string, with or without the leading
// "#". Returns ErrInvalidHex (wrapped) on malformed input.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	var enc uint32
	for _, r := range h {
		var d uint32
		switch {
		case r >= '0' && r <= '9':
			d = uint32(r - '0')
		case r >= 'a' && r <= 'f':
			d = uint32(r-'a') + 10
		case r >= 'A' && r <= 'F':
			d = uint32(r-'A') + 10
		default:
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		enc = enc<<4 | d
	}
	return Color{enc: enc}, nil
}

// FromRGBOctets constructs a color from 8-bit RGB components.
func FromRGBOctets(r, g, b uint8) Color {
	return Color{enc: uint32(r)<<redShift | uint32(g)<<greenShift | uint32(b)<<blueShift}
}

// FromRGB constructs a color from unit-interval RGB components.
// Inputs are clamped to [0, 1].
func FromRGB(r, g, b float64) Color {
	return FromRGBOctets(
		uint8(math.Round(clamp(r, 0, 1)*componentMask)),
		uint8(math.Round(clamp(g, 0, 1)*componentMask)),
		uint8(math.Round(clamp(b, 0, 1)*componentMask)),
	)
}

// Hex returns the packed 0xRRGGBB encoding.
func (c Color) Hex() uint32 {
	return c.enc
}

// String renders the color as "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%06X", c.enc)
}

// RedOctet returns the 8-bit red component.
func (c Color) RedOctet() uint8 {
	return uint8(c.enc >> redShift & componentMask)
}

// GreenOctet returns the 8-bit green component.
func (c Color) GreenOctet() uint8 {
	return uint8(c.enc >> greenShift & componentMask)
}

// BlueOctet returns the 8-bit blue component.
func (c Color) BlueOctet() uint8 {
	return uint8(c.enc >> blueShift & componentMask)
}

// Red returns the red component in [0, 1].
func (c Color) Red() float64 {
	return float64(c.RedOctet()) / componentMask
}

// Green returns the green component in [0, 1].
func (c Color) Green() float64 {
	return float64(c.GreenOctet()) / componentMask
}

// Blue returns the blue component in [0, 1].
func (c Color) Blue() float64 {
	return float64(c.BlueOctet()) / componentMask
}

// RGB returns the unit-interval RGB components.
func (c Color) RGB() (r, g, b float64) {
	return c.Red(), c.Green(), c.Blue()
}

// IsGrayscale reports whether all RGB components are equal.
func (c Color) IsGrayscale() bool {
	return c.RedOctet() == c.GreenOctet() && c.GreenOctet() == c.BlueOctet()
}

// Invert returns the RGB-inverted color.
func (c Color) Invert() Color {
	return FromRGB(1-c.Red(), 1-c.Green(), 1-c.Blue())
}

// Reduce rounds each RGB component to the given precision, producing a
// nearby color with fewer distinct values. Non-positive precision returns
// the color unchanged.
func (c Color) Reduce(precision float64) Color {
	if precision <= 0 {
		return c
	}
	return FromRGB(
		math.Round(c.Red()/precision)*precision,
		math.Round(c.Green()/precision)*precision,
		math.Round(c.Blue()/precision)*precision,
	)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
