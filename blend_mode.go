package sprite

import (
	"fmt"
	"strings"
)

// BlendMode selects how a layer's pixels combine with the pixels below it.
// The numbering follows the order used by Aseprite documents.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendAddition
	BlendSubtract
	BlendDivide
)

// blendModeNames maps BlendMode values to their string representation.
var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color_dodge",
	BlendColorBurn:  "color_burn",
	BlendHardLight:  "hard_light",
	BlendSoftLight:  "soft_light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
	BlendAddition:   "addition",
	BlendSubtract:   "subtract",
	BlendDivide:     "divide",
}

// String returns the string representation of a BlendMode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "unknown"
}

// ParseBlendMode converts a name produced by BlendMode.String back to a
// BlendMode. Matching ignores case, and dashes or spaces may replace
// underscores. An empty name yields BlendNormal.
func ParseBlendMode(name string) (BlendMode, error) {
	if name == "" {
		return BlendNormal, nil
	}
	key := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(name))
	for i, n := range blendModeNames {
		if n == key {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("sprite: unknown blend mode %q", name)
}
