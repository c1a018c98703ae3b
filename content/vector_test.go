package content

import (
	"image"
	"image/color"
	"testing"

	"github.com/32bitkid/onionskin/screen"
	"github.com/stretchr/testify/assert"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	red   = color.RGBA{0xff, 0, 0, 0xff}
)

func newSurface(w, h int) (*screen.Context, *image.RGBA) {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	ctx := screen.NewContext(dst, screen.Identity())
	ctx.Clear(white)
	return ctx, dst
}

func painted(img *image.RGBA) int {
	n := 0
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				n++
			}
		}
	}
	return n
}

func TestVectorFlags(t *testing.T) {
	var f VectorFlags
	assert.False(t, f.Has(ShowGuides))

	f = ShowGuides | ShowHidden
	assert.True(t, f.Has(ShowGuides))
	assert.True(t, f.Has(ShowHidden))
	assert.False(t, f.Has(ShowThinLines))
	assert.False(t, f.Has(ShowAll))

	assert.True(t, ShowAll.Has(ShowThinLines|ShowGuides|ShowHidden))
	assert.Equal(t, "VectorFlags(thin=false, guides=true, hidden=true)", f.String())
}

func TestVectorPaintElements(t *testing.T) {
	line := []screen.Point{screen.Pt(0, 1), screen.Pt(7, 1)}

	tests := []struct {
		name    string
		element Element
		flags   VectorFlags
		want    int
	}{
		{"stroke", Stroke{Points: line, Color: red, Width: 1}, 0, 8},
		{"thin stroke hidden by default", Stroke{Points: line, Color: red}, 0, 0},
		{"thin stroke shown", Stroke{Points: line, Color: red}, ShowThinLines, 8},
		{"hidden stroke", Stroke{Points: line, Color: red, Width: 1, Hidden: true}, 0, 0},
		{"hidden stroke shown", Stroke{Points: line, Color: red, Width: 1, Hidden: true}, ShowHidden, 8},
		{"guide hidden by default", Guide{From: line[0], To: line[1]}, 0, 0},
		{"guide shown", Guide{From: line[0], To: line[1]}, ShowGuides, 8},
		{"guide with everything", Guide{From: line[0], To: line[1], Color: color.RGBA{0, 0, 0x80, 0xff}}, ShowAll, 8},
		{"fill", Fill{At: screen.Pt(3, 3), Color: red}, 0, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, dst := newSurface(8, 8)
			v := &Vector{}
			v.Add(tt.element)
			v.Paint(ctx, tt.flags)
			assert.Equal(t, tt.want, painted(dst))
		})
	}
}

func TestVectorPaintOrder(t *testing.T) {
	ctx, dst := newSurface(8, 8)
	blue := color.RGBA{0, 0, 0xff, 0xff}
	v := &Vector{}
	v.Add(
		Stroke{Points: []screen.Point{screen.Pt(0, 4), screen.Pt(7, 4)}, Color: red, Width: 1},
		Fill{At: screen.Pt(0, 0), Color: blue},
	)
	v.Paint(ctx, 0)

	assert.Equal(t, red, dst.RGBAAt(3, 4))
	assert.Equal(t, blue, dst.RGBAAt(3, 0))
	assert.Equal(t, white, dst.RGBAAt(3, 6), "fill stops at the stroke")
}

func TestNilVectorPaintsNothing(t *testing.T) {
	ctx, dst := newSurface(4, 4)
	var v *Vector
	v.Paint(ctx, ShowAll)
	assert.Equal(t, 0, painted(dst))
}
