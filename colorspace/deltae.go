package colorspace

import "math"

// DefaultSimilarThreshold is the ΔE2000 value below which two colors are
// considered the same design intent. Conventional bands: <1 imperceptible,
// <5 perceptible but similar, >=5 clearly different.
const DefaultSimilarThreshold = 5.0

// Incomparable is the distance reported when one or both inputs cannot be
// canonicalized. It sorts after every real distance so broken values surface
// as maximally dissimilar instead of aborting a scoring pipeline.
var Incomparable = math.Inf(1)

// IsIncomparable reports whether d is the sentinel returned for
// uncanonicalizable inputs.
func IsIncomparable(d float64) bool {
	return math.IsInf(d, 1)
}

// DeltaE2000 computes the CIEDE2000 perceptual distance between two colors
// given in any form Normalize accepts, with kL = kC = kH = 1. The result is
// symmetric and zero (within floating-point noise) for identical inputs.
// Returns Incomparable when either input fails to canonicalize.
func DeltaE2000(colorA, colorB string) float64 {
	la, lb, ok := labPair(colorA, colorB)
	if !ok {
		return Incomparable
	}
	return deltaE2000Lab(la, lb)
}

// DeltaE76 is the original 1976 formula: Euclidean distance in Lab. Cheaper
// and less perceptually uniform than DeltaE2000; same sentinel contract.
func DeltaE76(colorA, colorB string) float64 {
	la, lb, ok := labPair(colorA, colorB)
	if !ok {
		return Incomparable
	}
	dl := la.L - lb.L
	da := la.A - lb.A
	db := la.B - lb.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Similar reports whether the perceptual distance between a and b is below
// DefaultSimilarThreshold.
func Similar(a, b string) bool {
	return SimilarWithin(a, b, DefaultSimilarThreshold)
}

// SimilarWithin reports whether DeltaE2000(a, b) < threshold. Incomparable
// pairs are never similar.
func SimilarWithin(a, b string, threshold float64) bool {
	return DeltaE2000(a, b) < threshold
}

func labPair(colorA, colorB string) (Lab, Lab, bool) {
	hexA, okA := Normalize(colorA)
	hexB, okB := Normalize(colorB)
	if !okA || !okB {
		return Lab{}, Lab{}, false
	}
	rgbA, _ := ToRGB(hexA)
	rgbB, _ := ToRGB(hexB)
	return ToLab(rgbA), ToLab(rgbB), true
}

// deltaE2000Lab implements the full CIEDE2000 formula (Sharma et al. 2005
// formulation) on Lab coordinates.
func deltaE2000Lab(lab1, lab2 Lab) float64 {
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar := (c1 + c2) / 2

	// G rotation: desaturate a* for near-neutral colors.
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+math.Pow(25, 7))))

	a1p := (1 + g) * lab1.A
	a2p := (1 + g) * lab2.A
	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)
	h1p := hueDegrees(a1p, lab1.B)
	h2p := hueDegrees(a2p, lab2.B)

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	// Δh' normalized to [-180°, 180°]; undefined when either chroma is zero.
	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2)

	lBarP := (lab1.L + lab2.L) / 2
	cBarP := (c1p + c2p) / 2

	// Mean hue with the three wraparound/degenerate cases.
	var hBarP float64
	switch {
	case c1p*c2p == 0:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2
	default:
		hBarP = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hBarP-30)) +
		0.24*math.Cos(radians(2*hBarP)) +
		0.32*math.Cos(radians(3*hBarP+6)) -
		0.20*math.Cos(radians(4*hBarP-63))

	dTheta := 30 * math.Exp(-math.Pow((hBarP-275)/25, 2))
	cBarP7 := math.Pow(cBarP, 7)
	rc := 2 * math.Sqrt(cBarP7/(cBarP7+math.Pow(25, 7)))
	rt := -math.Sin(radians(2*dTheta)) * rc

	l50 := (lBarP - 50) * (lBarP - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	termL := dLp / sl
	termC := dCp / sc
	termH := dHp / sh

	return math.Sqrt(termL*termL + termC*termC + termH*termH + rt*termC*termH)
}

// hueDegrees returns atan2(b, a') in degrees normalized to [0, 360), with
// zero for the achromatic case.
func hueDegrees(ap, b float64) float64 {
	if ap == 0 && b == 0 {
		return 0
	}
	deg := math.Atan2(b, ap) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
