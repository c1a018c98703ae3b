package content

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/32bitkid/onionskin/screen"
)

// Bitmap is raster frame content. The image bounds are its placement in
// document space, so a bitmap at (10, 20) has Image.Rect.Min == (10, 20).
type Bitmap struct {
	Image *image.RGBA
}

// NewBitmap returns a fully transparent bitmap covering r.
func NewBitmap(r image.Rectangle) *Bitmap {
	return &Bitmap{Image: image.NewRGBA(r)}
}

// BitmapFrom copies src into a new bitmap placed at origin.
func BitmapFrom(src image.Image, origin image.Point) *Bitmap {
	sb := src.Bounds()
	b := NewBitmap(sb.Sub(sb.Min).Add(origin))
	draw.Draw(b.Image, b.Image.Rect, src, sb.Min, draw.Src)
	return b
}

func (b *Bitmap) Bounds() image.Rectangle {
	if b == nil || b.Image == nil {
		return image.Rectangle{}
	}
	return b.Image.Rect
}

// Fill paints the whole bitmap with c.
func (b *Bitmap) Fill(c color.Color) {
	draw.Draw(b.Image, b.Image.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Paint composites the bitmap over ctx's surface through its view transform.
func (b *Bitmap) Paint(ctx *screen.Context) {
	if b == nil || b.Image == nil || b.Image.Rect.Empty() {
		return
	}
	ctx.DrawImage(b.Image)
}
