package color

import "math"

// RGBDistance is the Euclidean distance between two colors in the RGB unit
// cube. Range [0, sqrt(3)]. Non-negative and symmetric, satisfies the
// triangle inequality.
func RGBDistance(a, b Color) float64 {
	dr := a.Red() - b.Red()
	dg := a.Green() - b.Green()
	db := a.Blue() - b.Blue()
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// HSLDistance measures color distance in the HSL space. Hue and lightness
// are embedded on a cone (radius proportional to lightness) so that hue
// differences vanish toward black, with saturation as a third axis, scaled
// by 1/sqrt(6). Non-negative and symmetric.
func HSLDistance(a, b Color) float64 {
	ax, ay := hslConePoint(a)
	bx, by := hslConePoint(b)
	ds := a.HSLSaturation() - b.HSLSaturation()
	return math.Sqrt(ds*ds+(ax-bx)*(ax-bx)+(ay-by)*(ay-by)) / math.Sqrt(6)
}

func hslConePoint(c Color) (x, y float64) {
	hue := c.Hue() * math.Pi / 180
	r := 2 * c.Lightness()
	return r * math.Cos(hue), r * math.Sin(hue)
}
