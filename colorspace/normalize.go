package colorspace

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern  = regexp.MustCompile(`^#?([0-9a-f]{3,8})$`)
	funcPattern = regexp.MustCompile(`^(rgba?|hsla?)\(([^)]*)\)$`)
	numPattern  = regexp.MustCompile(`-?\d*\.?\d+`)
)

// parseHex validates a 3- or 6-digit hex color and expands it to six
// lowercase digits without the leading '#'.
func parseHex(s string) (string, bool) {
	m := hexPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return "", false
	}
	digits := m[1]
	switch len(digits) {
	case 3:
		return expandShortHex(digits), true
	case 6:
		return digits, true
	}
	return "", false
}

// expandShortHex doubles each digit: "f0a" -> "ff00aa".
func expandShortHex(digits string) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteRune(d)
		b.WriteRune(d)
	}
	return b.String()
}

// Normalize canonicalizes any supported textual color encoding to a 6-digit
// lowercase "#rrggbb" string. Supported forms: hex (3, 4, 6 or 8 digits, any
// case, '#' optional), rgb()/rgba(), hsl()/hsla(), and the named-color table.
// The alpha component of 4/8-digit hex and rgba()/hsla() is dropped.
//
// "transparent" and unrecognized tokens report false. Normalize is
// idempotent: feeding its output back in returns the same string.
func Normalize(text string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" || s == "transparent" {
		return "", false
	}

	if hex, ok := namedColors[s]; ok {
		return hex, true
	}

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		digits := m[1]
		switch len(digits) {
		case 3:
			return "#" + expandShortHex(digits), true
		case 4:
			// #rgba: drop the alpha digit.
			return "#" + expandShortHex(digits[:3]), true
		case 6:
			return "#" + digits, true
		case 8:
			// #rrggbbaa: drop the alpha byte.
			return "#" + digits[:6], true
		}
		return "", false
	}

	if m := funcPattern.FindStringSubmatch(s); m != nil {
		nums := numPattern.FindAllString(m[2], -1)
		if len(nums) < 3 {
			return "", false
		}
		switch m[1] {
		case "rgb", "rgba":
			r, _ := strconv.ParseFloat(nums[0], 64)
			g, _ := strconv.ParseFloat(nums[1], 64)
			b, _ := strconv.ParseFloat(nums[2], 64)
			return ToHex(RGB{R: roundChannel(r), G: roundChannel(g), B: roundChannel(b)}), true
		case "hsl", "hsla":
			h, _ := strconv.ParseFloat(nums[0], 64)
			sat, _ := strconv.ParseFloat(nums[1], 64)
			l, _ := strconv.ParseFloat(nums[2], 64)
			return ToHex(HSLToRGB(HSL{H: h, S: sat, L: l})), true
		}
	}

	return "", false
}

func roundChannel(v float64) int {
	return int(v + 0.5)
}
