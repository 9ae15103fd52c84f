package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
		ok    bool
	}{
		{name: "six digit with hash", input: "#3b82f6", want: RGB{59, 130, 246}, ok: true},
		{name: "six digit without hash", input: "3b82f6", want: RGB{59, 130, 246}, ok: true},
		{name: "three digit", input: "#f00", want: RGB{255, 0, 0}, ok: true},
		{name: "uppercase", input: "#FF00AA", want: RGB{255, 0, 170}, ok: true},
		{name: "named color rejected", input: "red", ok: false},
		{name: "rgb function rejected", input: "rgb(1,2,3)", ok: false},
		{name: "garbage", input: "#xyzxyz", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToRGB(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToHexClamps(t *testing.T) {
	tests := []struct {
		name  string
		input RGB
		want  string
	}{
		{name: "in range", input: RGB{255, 0, 170}, want: "#ff00aa"},
		{name: "above range", input: RGB{300, 256, 999}, want: "#ffffff"},
		{name: "below range", input: RGB{-1, -20, 0}, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToHex(tt.input))
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#3b82f6", "#0a0b0c"} {
		rgb, ok := ToRGB(hex)
		require.True(t, ok, hex)
		require.Equal(t, hex, ToHex(rgb))
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name  string
		input RGB
		want  HSL
	}{
		{name: "pure red", input: RGB{255, 0, 0}, want: HSL{H: 0, S: 100, L: 50}},
		{name: "pure green", input: RGB{0, 255, 0}, want: HSL{H: 120, S: 100, L: 50}},
		{name: "pure blue", input: RGB{0, 0, 255}, want: HSL{H: 240, S: 100, L: 50}},
		{name: "white is achromatic", input: RGB{255, 255, 255}, want: HSL{H: 0, S: 0, L: 100}},
		{name: "black is achromatic", input: RGB{0, 0, 0}, want: HSL{H: 0, S: 0, L: 0}},
		{name: "mid gray", input: RGB{128, 128, 128}, want: HSL{H: 0, S: 0, L: 50.19607843137255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.input)
			assert.InDelta(t, tt.want.H, got.H, 1e-9)
			assert.InDelta(t, tt.want.S, got.S, 1e-9)
			assert.InDelta(t, tt.want.L, got.L, 1e-9)
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	colors := []RGB{
		{255, 0, 0},
		{0, 128, 0},
		{59, 130, 246},
		{17, 24, 39},
		{128, 128, 128},
		{250, 204, 21},
	}

	for _, c := range colors {
		got := HSLToRGB(RGBToHSL(c))
		// Rounding through percentage space may move a channel by one.
		assert.InDelta(t, c.R, got.R, 1, "red channel of %v", c)
		assert.InDelta(t, c.G, got.G, 1, "green channel of %v", c)
		assert.InDelta(t, c.B, got.B, 1, "blue channel of %v", c)
	}
}

func TestHSLToRGBZeroSaturation(t *testing.T) {
	got := HSLToRGB(HSL{H: 213, S: 0, L: 50})
	require.Equal(t, got.R, got.G)
	require.Equal(t, got.G, got.B)
}

func TestToLabEndpoints(t *testing.T) {
	white := ToLab(RGB{255, 255, 255})
	assert.InDelta(t, 100, white.L, 0.01)
	assert.InDelta(t, 0, white.A, 0.01)
	assert.InDelta(t, 0, white.B, 0.01)

	black := ToLab(RGB{0, 0, 0})
	assert.InDelta(t, 0, black.L, 0.01)
	assert.InDelta(t, 0, black.A, 0.01)
	assert.InDelta(t, 0, black.B, 0.01)
}

func TestToLabOrdering(t *testing.T) {
	// L* must grow monotonically along the grayscale ramp.
	prev := -1.0
	for _, v := range []int{0, 32, 64, 96, 128, 160, 192, 224, 255} {
		l := ToLab(RGB{v, v, v}).L
		require.Greater(t, l, prev, "gray %d", v)
		prev = l
	}
}
