package colorspace

// namedColors maps the CSS keyword colors the extractor encounters in
// practice to their canonical hex form. "transparent" is deliberately
// excluded: it has no opaque canonical form and Normalize rejects it.
var namedColors = map[string]string{
	"black":         "#000000",
	"silver":        "#c0c0c0",
	"gray":          "#808080",
	"grey":          "#808080",
	"white":         "#ffffff",
	"maroon":        "#800000",
	"red":           "#ff0000",
	"purple":        "#800080",
	"fuchsia":       "#ff00ff",
	"magenta":       "#ff00ff",
	"green":         "#008000",
	"lime":          "#00ff00",
	"olive":         "#808000",
	"yellow":        "#ffff00",
	"navy":          "#000080",
	"blue":          "#0000ff",
	"teal":          "#008080",
	"aqua":          "#00ffff",
	"cyan":          "#00ffff",
	"orange":        "#ffa500",
	"gold":          "#ffd700",
	"pink":          "#ffc0cb",
	"hotpink":       "#ff69b4",
	"crimson":       "#dc143c",
	"salmon":        "#fa8072",
	"coral":         "#ff7f50",
	"tomato":        "#ff6347",
	"chocolate":     "#d2691e",
	"brown":         "#a52a2a",
	"tan":           "#d2b48c",
	"khaki":         "#f0e68c",
	"beige":         "#f5f5dc",
	"ivory":         "#fffff0",
	"lavender":      "#e6e6fa",
	"plum":          "#dda0dd",
	"orchid":        "#da70d6",
	"violet":        "#ee82ee",
	"indigo":        "#4b0082",
	"rebeccapurple": "#663399",
	"turquoise":     "#40e0d0",
	"skyblue":       "#87ceeb",
	"steelblue":     "#4682b4",
	"slategray":     "#708090",
	"slategrey":     "#708090",
	"lightgray":     "#d3d3d3",
	"lightgrey":     "#d3d3d3",
	"darkgray":      "#a9a9a9",
	"darkgrey":      "#a9a9a9",
	"darkred":       "#8b0000",
	"darkgreen":     "#006400",
	"darkblue":      "#00008b",
	"seagreen":      "#2e8b57",
	"forestgreen":   "#228b22",
	"whitesmoke":    "#f5f5f5",
	"ghostwhite":    "#f8f8ff",
}
