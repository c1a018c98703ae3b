package screen

import (
	"fmt"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Mix blends c1 toward c2 by t in [0, 1]. Greys are blended in RGB, anything
// else in L*a*b* so hues do not wash out on the way.
func Mix(c1, c2 color.Color, t float64) color.Color {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	if isGrey(clr1) || isGrey(clr2) {
		return clr1.BlendRgb(clr2, t).Clamped()
	}
	return clr1.BlendLab(clr2, t).Clamped()
}

func isGrey(c clr.Color) bool {
	return c.R == c.G && c.G == c.B
}

// Lighten raises the HCL luminance of src by p.
func Lighten(src color.Color, p float64) color.Color {
	srcColor, ok := clr.MakeColor(src)
	if !ok {
		return src
	}
	h, c, l := srcColor.Hcl()
	return clr.Hcl(h, c, l+p).Clamped()
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque colour.
func ParseHex(s string) (color.Color, error) {
	c, err := clr.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return rgb(c.RGB255()), nil
}

type rgb24Color uint32

func (rgb24 rgb24Color) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := (rgb24>>16)&0xFF, (rgb24>>8)&0xFF, (rgb24>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
