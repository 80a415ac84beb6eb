package customization

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// parseHex accepts #RGB and #RRGGBB, with or without the leading #.
func parseHex(hex string) (colorful.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 3 && len(s) != 6 {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// hexOf renders c as upper-case #RRGGBB, rounding each channel.
func hexOf(c colorful.Color) string {
	return strings.ToUpper(c.Clamped().Hex())
}

// blend mixes a and b channel-wise; weight is the share of a.
func blend(a, b colorful.Color, weight float64) colorful.Color {
	return a.BlendRgb(b, 1-weight)
}

// rotateHue shifts the hue by degrees, keeping saturation and lightness.
// Achromatic colors have no hue to rotate; they get a lightness shift instead
// so the derived color still differs from its source.
func rotateHue(c colorful.Color, degrees float64) colorful.Color {
	h, s, l := c.Hsl()
	if s == 0 {
		shift := degrees / 360 * 0.5
		if l > 0.5 {
			l -= shift
		} else {
			l += shift
		}
		return colorful.Hsl(0, 0, l)
	}
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, s, l)
}

// relativeLuminance follows the WCAG definition over linear sRGB.
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
