// Colour parsing and the default series palette.

package plotfile

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors maps the colour names accepted in plot documents to hex values.
var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#00ff00",
	"blue":      "#0000ff",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"yellow":    "#ffff00",
	"gray":      "#a0a0a4",
	"grey":      "#a0a0a4",
	"darkgray":  "#808080",
	"lightgray": "#c0c0c0",
	"orange":    "#ffa500",
	"darkred":   "#800000",
	"darkgreen": "#008000",
	"darkblue":  "#000080",
}

// ParseColor parses "#rrggbb", "#rgb" or a colour name.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if len(s) == 4 && s[0] == '#' {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	return toRGBA(c), nil
}

// FormatColor renders c as "#rrggbb".
func FormatColor(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// goldenAngle spreads consecutive palette hues evenly around the wheel.
const goldenAngle = 180 * (3 - 2.23606797749979) // 180*(3-sqrt 5) degrees

// PaletteColor returns the default colour of the i-th series. Colours
// share lightness and chroma in HCL space so no series dominates.
func PaletteColor(i int) color.Color {
	h := math.Mod(30+float64(i)*goldenAngle, 360)
	return toRGBA(colorful.Hcl(h, 0.6, 0.75))
}
