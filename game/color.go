package game

import "math"

// Rgb is a player's three-channel display color.
type Rgb struct {
	R uint8
	G uint8
	B uint8
}

const goldenRatio = 0.618033988749895

// newColorPalette builds n deterministic colors from a golden-ratio hue
// sweep, so repeated runs with the same max_clients always produce the
// same palette.
func newColorPalette(n int) []Rgb {
	palette := make([]Rgb, n)
	hue := 0.0
	for i := 0; i < n; i++ {
		hue = math.Mod(hue+goldenRatio, 1.0)
		saturation := 0.5 + math.Sin(hue*2*math.Pi)*0.1
		lightness := 0.6 + math.Cos(hue*2*math.Pi)*0.1
		palette[i] = hslToRgb(hue*360, saturation, lightness)
	}
	return palette
}

func hslToRgb(h, s, l float64) Rgb {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return Rgb{
		R: uint8((rf + m) * 255),
		G: uint8((gf + m) * 255),
		B: uint8((bf + m) * 255),
	}
}
