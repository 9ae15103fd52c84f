// Package colorspace canonicalizes CSS color values and measures perceptual
// distance between them.
//
// Every color that survives Normalize is represented as a 6-digit lowercase
// hex string ("#3b82f6"). Distances are computed in CIE L*a*b* under the D65
// illuminant, either with the full CIEDE2000 formula (DeltaE2000) or plain
// Euclidean distance (DeltaE76). All functions are pure and safe for
// concurrent use.
package colorspace

import (
	"fmt"
	"math"
)

// RGB holds integer channels clamped to [0,255].
type RGB struct {
	R int
	G int
	B int
}

// HSL holds hue in degrees [0,360) and saturation/lightness as percentages.
type HSL struct {
	H float64
	S float64
	L float64
}

// Lab is a CIE L*a*b* coordinate (L in [0,100]) computed from sRGB under D65.
type Lab struct {
	L float64
	A float64
	B float64
}

// D65 reference white and Lab compression constants.
const (
	refWhiteX = 95.047
	refWhiteY = 100.000
	refWhiteZ = 108.883

	labEpsilon = 0.008856
	labKappa   = 903.3
)

// ToRGB parses a 3- or 6-digit hex color, with or without a leading '#'.
// Anything else (rgb(), named colors, garbage) reports false; run such
// values through Normalize first.
func ToRGB(s string) (RGB, bool) {
	hex, ok := parseHex(s)
	if !ok {
		return RGB{}, false
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, false
	}
	return RGB{R: r, G: g, B: b}, true
}

// ToHex formats an RGB triple as "#rrggbb". Channels outside [0,255] are
// clamped, so this never fails.
func ToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// RGBToHSL converts to hue/saturation/lightness. Grayscale inputs
// (max == min) take the distinguished zero-saturation branch.
func RGBToHSL(c RGB) HSL {
	r := float64(clampChannel(c.R)) / 255
	g := float64(clampChannel(c.G)) / 255
	b := float64(clampChannel(c.B)) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		// Achromatic: hue is undefined, report 0.
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB is the inverse of RGBToHSL. Zero saturation short-circuits to
// gray so the hue branch never divides by zero.
func HSLToRGB(c HSL) RGB {
	h := math.Mod(math.Mod(c.H, 360)+360, 360) / 360
	s := math.Min(math.Max(c.S, 0), 100) / 100
	l := math.Min(math.Max(c.L, 0), 100) / 100

	if s == 0 {
		v := int(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+1.0/3)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3)

	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// ToLab converts sRGB to CIE L*a*b* (D65): gamma decode, scale the linear
// channels to [0,100], apply the sRGB-to-XYZ matrix, normalize by the
// reference white, then compress each axis.
func ToLab(c RGB) Lab {
	r := srgbDecode(float64(clampChannel(c.R))/255) * 100
	g := srgbDecode(float64(clampChannel(c.G))/255) * 100
	b := srgbDecode(float64(clampChannel(c.B))/255) * 100

	// Row sums match the reference white exactly, so white lands on
	// (100, 0, 0) instead of picking up a stray a*/b* offset.
	x := r*0.4124564 + g*0.3575761 + b*0.1804375
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	z := r*0.0193339 + g*0.1191920 + b*0.9503041

	fx := labCompress(x / refWhiteX)
	fy := labCompress(y / refWhiteY)
	fz := labCompress(z / refWhiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// srgbDecode linearizes a gamma-encoded sRGB channel in [0,1].
func srgbDecode(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// labCompress applies the cube root above epsilon and the linear
// approximation below it.
func labCompress(v float64) float64 {
	if v > labEpsilon {
		return math.Cbrt(v)
	}
	return (labKappa*v + 16) / 116
}
