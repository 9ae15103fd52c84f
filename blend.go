package tokendrift

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tokendrift/tokendrift/colorspace"
)

// BlendDocuments produces a token document whose color leaves sit between
// the project and reference values, blended in Lab space at ratio t
// (0 keeps the project color, 1 lands on the reference). Non-color leaves
// and structure take the reference side; tokens only one document has are
// carried through unchanged. Useful for staging a gradual migration toward
// a reference set instead of a single breaking change.
func BlendDocuments(project, reference map[string]any, t float64) map[string]any {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	merged := make(map[string]any, len(reference))
	for key, refVal := range reference {
		projVal, inProject := project[key]
		if !inProject {
			merged[key] = refVal
			continue
		}
		merged[key] = blendValue(projVal, refVal, t)
	}
	for key, projVal := range project {
		if _, inReference := reference[key]; !inReference {
			merged[key] = projVal
		}
	}
	return merged
}

func blendValue(projVal, refVal any, t float64) any {
	switch ref := refVal.(type) {
	case map[string]any:
		proj, ok := projVal.(map[string]any)
		if !ok {
			return refVal
		}
		return BlendDocuments(proj, ref, t)
	case []any:
		proj, ok := projVal.([]any)
		if !ok {
			return refVal
		}
		blended := make([]any, len(ref))
		for i := range ref {
			if i < len(proj) {
				blended[i] = blendValue(proj[i], ref[i], t)
			} else {
				blended[i] = ref[i]
			}
		}
		return blended
	default:
		if hex, ok := blendColors(projVal, refVal, t); ok {
			return hex
		}
		return refVal
	}
}

// blendColors interpolates two color leaves in Lab space. Reports false
// unless both sides canonicalize.
func blendColors(projVal, refVal any, t float64) (string, bool) {
	projStr, ok := projVal.(string)
	if !ok {
		return "", false
	}
	refStr, ok := refVal.(string)
	if !ok {
		return "", false
	}

	projHex, okP := colorspace.Normalize(projStr)
	refHex, okR := colorspace.Normalize(refStr)
	if !okP || !okR {
		return "", false
	}

	from, errF := colorful.Hex(projHex)
	to, errT := colorful.Hex(refHex)
	if errF != nil || errT != nil {
		return "", false
	}

	// Lab interpolation can leave the sRGB gamut; clamp back in.
	return from.BlendLab(to, t).Clamped().Hex(), true
}
