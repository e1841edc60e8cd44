package imaging

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor resolves a user-supplied color argument into an opaque RGBA.
//
// Accepted forms are hex strings ("#RRGGBB" or the short "#RGB") and SVG 1.1
// color names ("black", "crimson", "lightsteelblue", ...). Names are matched
// case-insensitively. Errors wrap ErrInvalidColor.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty color", ErrInvalidColor)
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q is not #RGB or #RRGGBB", ErrInvalidColor, s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
}
