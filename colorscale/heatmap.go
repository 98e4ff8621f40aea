// Package colorscale implements the HSV heatmap ramp used to colour-code
// bundles by area, factored out of package generator so an external SVG
// exporter can reproduce the same legend colours without importing the
// generator itself.
package colorscale

import "math"

// RGB is an 8-bit-per-channel colour.
type RGB struct {
	R, G, B uint8
}

// Heatmap maps t in [0,1] to an RGB colour via HSV with H = (1-t)*240deg,
// S = 0.85, V = 0.95 — blue (t=0, smallest bundle) through red (t=1,
// largest bundle). t is clamped to [0,1] so a caller that passes a value
// outside the expected range (rounding noise from the area normalization
// in generator.colourBundles) still gets a defined colour instead of an
// out-of-gamut one.
func Heatmap(t float64) RGB {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	h := (1 - t) * 240.0
	s := 0.85
	v := 0.95

	r, g, b := hsvToRGB(h, s, v)
	return RGB{R: r, G: g, B: b}
}

// hsvToRGB converts HSV (h in degrees [0,360), s and v in [0,1]) to 8-bit
// RGB using the standard sector decomposition.
func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	hp := h / 60.0
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := v - c

	var rf, gf, bf float64
	switch {
	case hp < 1:
		rf, gf, bf = c, x, 0
	case hp < 2:
		rf, gf, bf = x, c, 0
	case hp < 3:
		rf, gf, bf = 0, c, x
	case hp < 4:
		rf, gf, bf = 0, x, c
	case hp < 5:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return to8(rf + m), to8(gf + m), to8(bf + m)
}

func to8(f float64) uint8 {
	v := int(math.Round(f * 255))
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}
