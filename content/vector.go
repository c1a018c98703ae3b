package content

import (
	"fmt"
	"image/color"

	"github.com/32bitkid/onionskin/screen"
)

// VectorFlags select which normally invisible elements of a vector image are
// drawn.
type VectorFlags uint8

const (
	// ShowThinLines draws zero-width strokes as hairlines.
	ShowThinLines VectorFlags = 1 << iota
	// ShowGuides draws construction guides.
	ShowGuides
	// ShowHidden draws strokes marked hidden.
	ShowHidden

	ShowAll = ShowThinLines | ShowGuides | ShowHidden
)

func (f VectorFlags) Has(flag VectorFlags) bool {
	return f&flag == flag
}

func (f VectorFlags) String() string {
	return fmt.Sprintf("VectorFlags(thin=%t, guides=%t, hidden=%t)",
		f.Has(ShowThinLines), f.Has(ShowGuides), f.Has(ShowHidden))
}

// Element is one drawable item of a vector image.
type Element interface {
	paint(ctx *screen.Context, flags VectorFlags)
}

// Stroke is a polyline. A zero Width makes it a thin line that only shows
// with ShowThinLines.
type Stroke struct {
	Points []screen.Point
	Color  color.Color
	Width  float64
	Hidden bool
}

func (s Stroke) paint(ctx *screen.Context, flags VectorFlags) {
	if s.Hidden && !flags.Has(ShowHidden) {
		return
	}
	c := s.Color
	if c == nil {
		c = screen.DefaultColors.Ink
	}
	if s.Width <= 0 {
		if !flags.Has(ShowThinLines) {
			return
		}
		ctx.Stroke(s.Points, 0, screen.Mix(c, screen.DefaultColors.ThinLine, 0.5))
		return
	}
	ctx.Stroke(s.Points, s.Width, c)
}

// Fill floods the region under At.
type Fill struct {
	At    screen.Point
	Color color.Color
}

func (f Fill) paint(ctx *screen.Context, _ VectorFlags) {
	c := f.Color
	if c == nil {
		c = screen.DefaultColors.Ink
	}
	ctx.FillAt(f.At, c)
}

// Guide is a construction line that is never part of the finished frame.
type Guide struct {
	From, To screen.Point
	Color    color.Color
}

func (g Guide) paint(ctx *screen.Context, flags VectorFlags) {
	if !flags.Has(ShowGuides) {
		return
	}
	c := g.Color
	if c == nil {
		c = screen.DefaultColors.Guide
	} else {
		c = screen.Lighten(c, screen.HairlineLift)
	}
	ctx.Stroke([]screen.Point{g.From, g.To}, 0, c)
}

// Vector is frame content made of strokes, fills and guides, painted in
// order.
type Vector struct {
	Elements []Element
}

func (v *Vector) Add(e ...Element) {
	v.Elements = append(v.Elements, e...)
}

// Paint draws the image onto ctx. flags decide which construction aids are
// shown.
func (v *Vector) Paint(ctx *screen.Context, flags VectorFlags) {
	if v == nil {
		return
	}
	for _, e := range v.Elements {
		e.paint(ctx, flags)
	}
}
