package document

import (
	"fmt"

	"github.com/32bitkid/onionskin/content"
	"github.com/32bitkid/onionskin/screen"
)

// Layer is one ordered drawing channel of a document.
type Layer interface {
	Type() Type
	Name() string
	KeyFrameCount() int
}

// BitmapSource is implemented by layers holding raster frames.
type BitmapSource interface {
	Layer
	// BitmapAt returns the image in effect at frame, or nil.
	BitmapAt(frame int) *content.Bitmap
}

// VectorSource is implemented by layers holding vector frames.
type VectorSource interface {
	Layer
	// VectorAt returns the image in effect at frame, or nil.
	VectorAt(frame int) *content.Vector
}

type base struct {
	name string
}

func (b base) Name() string { return b.name }

type BitmapLayer struct {
	base
	Keys Keyframes[*content.Bitmap]
}

func NewBitmapLayer(name string) *BitmapLayer {
	return &BitmapLayer{base: base{name}}
}

func (l *BitmapLayer) Type() Type         { return TypeBitmap }
func (l *BitmapLayer) KeyFrameCount() int { return l.Keys.Len() }

func (l *BitmapLayer) BitmapAt(frame int) *content.Bitmap {
	img, _ := l.Keys.At(frame)
	return img
}

func (l *BitmapLayer) String() string {
	return fmt.Sprintf("BitmapLayer(%q, keys: %v)", l.name, l.Keys.Frames())
}

type VectorLayer struct {
	base
	Keys Keyframes[*content.Vector]
}

func NewVectorLayer(name string) *VectorLayer {
	return &VectorLayer{base: base{name}}
}

func (l *VectorLayer) Type() Type         { return TypeVector }
func (l *VectorLayer) KeyFrameCount() int { return l.Keys.Len() }

func (l *VectorLayer) VectorAt(frame int) *content.Vector {
	img, _ := l.Keys.At(frame)
	return img
}

func (l *VectorLayer) String() string {
	return fmt.Sprintf("VectorLayer(%q, keys: %v)", l.name, l.Keys.Frames())
}

// CameraLayer keys view transforms. It has no paintable content.
type CameraLayer struct {
	base
	Keys Keyframes[screen.Transform]
}

func NewCameraLayer(name string) *CameraLayer {
	return &CameraLayer{base: base{name}}
}

func (l *CameraLayer) Type() Type         { return TypeCamera }
func (l *CameraLayer) KeyFrameCount() int { return l.Keys.Len() }

// ViewAt returns the camera transform in effect at frame, or the identity.
func (l *CameraLayer) ViewAt(frame int) screen.Transform {
	if t, ok := l.Keys.At(frame); ok {
		return t
	}
	return screen.Identity()
}

// SoundLayer keys named audio clips. It has no paintable content.
type SoundLayer struct {
	base
	Keys Keyframes[string]
}

func NewSoundLayer(name string) *SoundLayer {
	return &SoundLayer{base: base{name}}
}

func (l *SoundLayer) Type() Type         { return TypeSound }
func (l *SoundLayer) KeyFrameCount() int { return l.Keys.Len() }

var (
	_ BitmapSource = (*BitmapLayer)(nil)
	_ VectorSource = (*VectorLayer)(nil)
	_ Layer        = (*CameraLayer)(nil)
	_ Layer        = (*SoundLayer)(nil)
)
