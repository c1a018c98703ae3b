package screen

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Context paints onto a surface through a view transform. A Context is
// created for a single paint call and must not be retained after it.
type Context struct {
	Dst       draw.Image
	Transform Transform

	stack []point
}

func NewContext(dst draw.Image, t Transform) *Context {
	return &Context{Dst: dst, Transform: t}
}

// Clear overwrites every pixel of the surface with c.
func (ctx *Context) Clear(c color.Color) {
	draw.Draw(ctx.Dst, ctx.Dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (ctx *Context) set(x, y int, c color.Color) {
	if (image.Point{X: x, Y: y}).In(ctx.Dst.Bounds()) {
		ctx.Dst.Set(x, y, c)
	}
}

// Line draws a one pixel line between two device-space points.
func (ctx *Context) Line(x1, y1, x2, y2 int, c color.Color) {
	ctx.plotLine(x1, y1, x2, y2, ctx.Dst.Bounds(), func(x, y int) { ctx.set(x, y, c) })
}

// plotLine walks the Bresenham line from (x1, y1) to (x2, y2), calling plot
// only for the points inside clip. Points outside clip cost nothing, so the
// work is bounded by the size of clip, not the length of the line.
func (ctx *Context) plotLine(x1, y1, x2, y2 int, clip image.Rectangle, plot func(x, y int)) {
	box := image.Rect(x1, y1, x2, y2)
	box.Max = box.Max.Add(image.Pt(1, 1))
	if !box.Overlaps(clip) {
		return
	}

	switch {
	case x1 == x2:
		swapIf(&y1, &y2, y1 > y2)
		for y := max(y1, clip.Min.Y); y <= min(y2, clip.Max.Y-1); y++ {
			plot(x1, y)
		}
	case y1 == y2:
		swapIf(&x1, &x2, x1 > x2)
		for x := max(x1, clip.Min.X); x <= min(x2, clip.Max.X-1); x++ {
			plot(x, y1)
		}
	default:
		// bresenham
		dx, dy := x2-x1, y2-y1
		stepX, stepY := sign(dx), sign(dy)

		dx, dy = absInt(dx)<<1, absInt(dy)<<1

		plot(x1, y1)
		plot(x2, y2)

		if dx > dy {
			fraction := dy - (dx >> 1)
			first, last := span(x1, stepX, dx>>1, clip.Min.X, clip.Max.X)
			for k := max(first, 1); k <= last; k++ {
				plot(x1+k*stepX, y1+minorSteps(fraction, dy, dx, k)*stepY)
			}
		} else {
			fraction := dx - (dy >> 1)
			first, last := span(y1, stepY, dy>>1, clip.Min.Y, clip.Max.Y)
			for k := max(first, 1); k <= last; k++ {
				plot(x1+minorSteps(fraction, dx, dy, k)*stepX, y1+k*stepY)
			}
		}
	}
}

// span returns the range of steps k in [0, n] for which from+k*step lies in
// [lo, hi).
func span(from, step, n, lo, hi int) (first, last int) {
	if step > 0 {
		first, last = lo-from, hi-1-from
	} else {
		first, last = from-(hi-1), from-lo
	}
	return max(first, 0), min(last, n)
}

// minorSteps is how far a Bresenham walk starting at fraction has moved along
// its minor axis after k major steps. minor and major are the doubled axis
// deltas. Each step keeps the fraction in [-major, 0) after the minor
// adjustment, which pins the count to a single floor division.
func minorSteps(fraction, minor, major, k int) int {
	if k <= 0 {
		return 0
	}
	return floorDiv(fraction+(k-1)*minor, major) + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Dab stamps a filled disc of the given radius centred on a device-space point.
func (ctx *Context) Dab(cx, cy, radius int, c color.Color) {
	if radius <= 0 {
		ctx.set(cx, cy, c)
		return
	}
	b := ctx.Dst.Bounds()
	r2 := radius * radius
	for y := max(-radius, b.Min.Y-cy); y <= min(radius, b.Max.Y-1-cy); y++ {
		for x := max(-radius, b.Min.X-cx); x <= min(radius, b.Max.X-1-cx); x++ {
			if x*x+y*y <= r2 {
				ctx.set(cx+x, cy+y, c)
			}
		}
	}
}

// Stroke draws a polyline given in document space. Widths are in document
// units and scale with the view transform; anything under two device pixels
// wide is a single pixel line.
func (ctx *Context) Stroke(points []Point, width float64, c color.Color) {
	if len(points) == 0 {
		return
	}
	radius := int(math.Floor(width * ctx.Transform.LineScale() / 2))
	plot := func(x, y int) { ctx.Dab(x, y, radius, c) }
	if radius == 0 {
		plot = func(x, y int) { ctx.set(x, y, c) }
	}
	// a dab centred outside the surface can still reach into it
	clip := ctx.Dst.Bounds().Inset(-radius)

	x1, y1 := ctx.device(points[0])
	if len(points) == 1 {
		plot(x1, y1)
		return
	}
	for _, p := range points[1:] {
		x2, y2 := ctx.device(p)
		ctx.plotLine(x1, y1, x2, y2, clip, plot)
		x1, y1 = x2, y2
	}
}

func (ctx *Context) device(p Point) (int, int) {
	d := ctx.Transform.Apply(p)
	return int(math.Floor(d.X)), int(math.Floor(d.Y))
}

// FillAt flood fills from a document-space seed point.
func (ctx *Context) FillAt(p Point, c color.Color) {
	x, y := ctx.device(p)
	ctx.Fill(x, y, c)
}

// Fill replaces the contiguous region of pixels sharing the colour found at
// the device-space seed with c.
func (ctx *Context) Fill(cx, cy int, c color.Color) {
	bounds := ctx.Dst.Bounds()
	seed := image.Point{X: cx, Y: cy}
	if !seed.In(bounds) {
		return
	}

	legal := rgba64(ctx.Dst.At(cx, cy))
	if legal == rgba64(ctx.Dst.ColorModel().Convert(c)) {
		return
	}
	isLegal := func(x, y int) bool {
		return rgba64(ctx.Dst.At(x, y)) == legal
	}

	var p point
	stack := append(ctx.stack[:0], point{cx, cy})

	for len(stack) > 0 {
		p, stack = stack[len(stack)-1], stack[:len(stack)-1]
		x, y := p.x, p.y

		if !isLegal(x, y) {
			continue
		}
		ctx.Dst.Set(x, y, c)

		push := func(x, y int) {
			if y+1 < bounds.Max.Y && isLegal(x, y+1) {
				stack = append(stack, point{x, y + 1})
			}
			if y-1 >= bounds.Min.Y && isLegal(x, y-1) {
				stack = append(stack, point{x, y - 1})
			}
		}
		push(x, y)

		// flood right
		for dx := x + 1; dx < bounds.Max.X && isLegal(dx, y); dx++ {
			ctx.Dst.Set(dx, y, c)
			push(dx, y)
		}

		// flood left
		for dx := x - 1; dx >= bounds.Min.X && isLegal(dx, y); dx-- {
			ctx.Dst.Set(dx, y, c)
			push(dx, y)
		}
	}
	ctx.stack = stack
}

// DrawImage composites src over the surface. src bounds are taken to be in
// document space. Sampling is nearest neighbour: pixels are never smoothed.
// A singular transform collapses the image and draws nothing.
func (ctx *Context) DrawImage(src image.Image) {
	if _, ok := ctx.Transform.Invert(); !ok {
		return
	}
	draw.NearestNeighbor.Transform(ctx.Dst, ctx.Transform.Aff3(), src, src.Bounds(), draw.Over, nil)
}

type point struct{ x, y int }

func rgba64(c color.Color) color.RGBA64 {
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func swapIf(a, b *int, cond bool) {
	if cond {
		*a, *b = *b, *a
	}
}
