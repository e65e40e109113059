package color

import "math"

// FromHSV constructs a color from a hue angle in degrees and HSV saturation
// and value components. The hue is normalized into [0, 360); saturation and
// value are clamped to [0, 1].
func FromHSV(hue, saturation, value float64) Color {
	hue = normalizeHue(hue)
	saturation = clamp(saturation, 0, 1)
	value = clamp(value, 0, 1)

	chroma := saturation * value
	x := chroma * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := value - chroma
	return fromSector(hue, chroma, x, m)
}

// FromHSL constructs a color from a hue angle in degrees and HSL saturation
// and lightness components. The hue is normalized into [0, 360); saturation
// and lightness are clamped to [0, 1].
func FromHSL(hue, saturation, lightness float64) Color {
	hue = normalizeHue(hue)
	saturation = clamp(saturation, 0, 1)
	lightness = clamp(lightness, 0, 1)

	chroma := saturation * (1 - math.Abs(2*lightness-1))
	x := chroma * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := lightness - chroma/2
	return fromSector(hue, chroma, x, m)
}

// FromCMYK constructs a color from CMYK components, each clamped to [0, 1].
func FromCMYK(cyan, magenta, yellow, key float64) Color {
	cyan = clamp(cyan, 0, 1)
	magenta = clamp(magenta, 0, 1)
	yellow = clamp(yellow, 0, 1)
	key = clamp(key, 0, 1)

	return FromRGB(
		(1-cyan)*(1-key),
		(1-magenta)*(1-key),
		(1-yellow)*(1-key),
	)
}

// Hue returns the hue angle of the color in degrees, in [0, 360).
// Grays have no hue and report 0.
func (c Color) Hue() float64 {
	r, g, b := c.RGB()
	maxC, minC := max(r, g, b), min(r, g, b)
	delta := maxC - minC
	if delta == 0 {
		return 0
	}
	var h float64
	switch maxC {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return normalizeHue(h * 60)
}

// Value returns the HSV value component.
func (c Color) Value() float64 {
	r, g, b := c.RGB()
	return max(r, g, b)
}

// Lightness returns the HSL lightness component.
func (c Color) Lightness() float64 {
	r, g, b := c.RGB()
	return (max(r, g, b) + min(r, g, b)) / 2
}

// HSVSaturation returns the saturation component in the HSV color space.
func (c Color) HSVSaturation() float64 {
	r, g, b := c.RGB()
	delta := max(r, g, b) - min(r, g, b)
	if delta == 0 {
		return 0
	}
	return delta / c.Value()
}

// HSLSaturation returns the saturation component in the HSL color space.
func (c Color) HSLSaturation() float64 {
	r, g, b := c.RGB()
	delta := max(r, g, b) - min(r, g, b)
	if delta == 0 {
		return 0
	}
	return delta / (1 - math.Abs(2*c.Lightness()-1))
}

// HSV returns the hue (degrees), HSV saturation, and value components.
func (c Color) HSV() (hue, saturation, value float64) {
	return c.Hue(), c.HSVSaturation(), c.Value()
}

// HSL returns the hue (degrees), HSL saturation, and lightness components.
func (c Color) HSL() (hue, saturation, lightness float64) {
	return c.Hue(), c.HSLSaturation(), c.Lightness()
}

// Key returns the key (black) component in the CMYK color space.
func (c Color) Key() float64 {
	return 1 - c.Value()
}

// Cyan returns the cyan component in the CMYK color space.
func (c Color) Cyan() float64 {
	return cmykComponent(c.Red(), c.Key())
}

// Magenta returns the magenta component in the CMYK color space.
func (c Color) Magenta() float64 {
	return cmykComponent(c.Green(), c.Key())
}

// Yellow returns the yellow component in the CMYK color space.
func (c Color) Yellow() float64 {
	return cmykComponent(c.Blue(), c.Key())
}

// CMYK returns the cyan, magenta, yellow, and key components.
func (c Color) CMYK() (cyan, magenta, yellow, key float64) {
	return c.Cyan(), c.Magenta(), c.Yellow(), c.Key()
}

// Lighten moves the color toward white by the given proportion of the
// remaining lightness headroom, in [0, 1].
func (c Color) Lighten(amount float64) Color {
	l := c.Lightness()
	return FromHSL(c.Hue(), c.HSLSaturation(), l+(1-l)*amount)
}

// Darken moves the color toward black by the given proportion of its
// current lightness, in [0, 1].
func (c Color) Darken(amount float64) Color {
	l := c.Lightness()
	return FromHSL(c.Hue(), c.HSLSaturation(), l-l*amount)
}

// Saturate increases HSL saturation by the given proportion of its current
// value.
func (c Color) Saturate(amount float64) Color {
	s := c.HSLSaturation()
	return FromHSL(c.Hue(), s+s*amount, c.Lightness())
}

// Desaturate decreases HSL saturation by the given proportion of its
// current value.
func (c Color) Desaturate(amount float64) Color {
	s := c.HSLSaturation()
	return FromHSL(c.Hue(), s-s*amount, c.Lightness())
}

// ShiftHue rotates the hue by the given number of degrees, preserving HSV
// saturation and value.
func (c Color) ShiftHue(degrees float64) Color {
	return FromHSV(c.Hue()+degrees, c.HSVSaturation(), c.Value())
}

func fromSector(hue, chroma, x, m float64) Color {
	switch {
	case hue < 60:
		return FromRGB(chroma+m, x+m, m)
	case hue < 120:
		return FromRGB(x+m, chroma+m, m)
	case hue < 180:
		return FromRGB(m, chroma+m, x+m)
	case hue < 240:
		return FromRGB(m, x+m, chroma+m)
	case hue < 300:
		return FromRGB(x+m, m, chroma+m)
	default:
		return FromRGB(chroma+m, m, x+m)
	}
}

func cmykComponent(channel, key float64) float64 {
	if key == 1 {
		return 0
	}
	return (1 - channel - key) / (1 - key)
}

func normalizeHue(hue float64) float64 {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}
