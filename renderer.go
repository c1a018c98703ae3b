package onionskin

import (
	"image/draw"
	"reflect"

	"github.com/32bitkid/onionskin/content"
	"github.com/32bitkid/onionskin/document"
	"github.com/32bitkid/onionskin/screen"
	"github.com/sirupsen/logrus"
)

// Document is the read-only view of an animation document the renderer
// needs. *document.Document implements it.
type Document interface {
	Layer(index int) (document.Layer, error)
}

// CanvasRenderer paints documents onto a surface. It is not safe for
// concurrent use; call it from the goroutine that owns the document.
type CanvasRenderer struct {
	opts Options

	surface   draw.Image
	transform screen.Transform
}

// NewCanvasRenderer returns a renderer with the identity view transform and no
// surface.
func NewCanvasRenderer(options ...Options) *CanvasRenderer {
	opts := defaultOptions()
	for _, o := range options {
		opts.merge(o)
	}
	return &CanvasRenderer{
		opts:      opts,
		transform: screen.Identity(),
	}
}

// SetSurface replaces the surface painted by subsequent Paint calls. A nil
// surface is a fault and leaves the previous one in place.
func (r *CanvasRenderer) SetSurface(surface draw.Image) {
	if surface == nil {
		r.fault("set surface", ErrNilSurface, r.opts.Logger)
		return
	}
	r.surface = surface
}

// Surface returns the surface set by SetSurface, or nil.
func (r *CanvasRenderer) Surface() draw.Image {
	return r.surface
}

// SetViewTransform sets the document-to-surface transform.
func (r *CanvasRenderer) SetViewTransform(t screen.Transform) {
	r.transform = t
}

// ViewTransform returns the current document-to-surface transform.
func (r *CanvasRenderer) ViewTransform() screen.Transform {
	return r.transform
}

// paintState is everything scoped to one Paint call.
type paintState struct {
	doc        Document
	layerIndex int
	frame      int

	layer document.Layer
	ctx   *screen.Context
	log   logrus.FieldLogger
}

// Paint overwrites the surface with the background, the onion skin of the
// frames before frameNumber on layer layerIndex, and the current frame pass.
//
// Paint has no error result. A nil document, an unset surface or a layer the
// renderer cannot interpret is a fault; see Options.Strict.
func (r *CanvasRenderer) Paint(doc Document, layerIndex, frameNumber int) {
	log := r.opts.Logger.WithFields(logrus.Fields{
		"layer": layerIndex,
		"frame": frameNumber,
	})
	if isNilDocument(doc) {
		r.fault("paint", ErrNilDocument, log)
		return
	}
	if r.surface == nil {
		r.fault("paint", ErrNilSurface, log)
		return
	}

	s := &paintState{
		doc:        doc,
		layerIndex: layerIndex,
		frame:      frameNumber,
		ctx:        screen.NewContext(r.surface, r.transform),
		log:        log,
	}

	r.paintBackground(s)

	layer, err := doc.Layer(layerIndex)
	if err != nil {
		r.fault("paint", err, log)
		return
	}
	s.layer = layer

	r.paintOnionSkin(s)
	r.paintCurrentFrame(s)
}

func (r *CanvasRenderer) paintBackground(s *paintState) {
	s.ctx.Clear(r.opts.Background)
}

func (r *CanvasRenderer) paintOnionSkin(s *paintState) {
	if r.opts.DisableOnionSkin || s.layer.KeyFrameCount() == 0 {
		return
	}

	start := max(s.frame-r.opts.OnionSkinFrames, 1)

	// Only frames before the current one are previewed.
	for i := start; i < s.frame; i++ {
		var ok bool
		switch s.layer.Type() {
		case document.TypeBitmap:
			ok = r.paintOnionSkinBitmap(s, i)
		case document.TypeVector:
			ok = r.paintOnionSkinVector(s, i)
		case document.TypeCamera, document.TypeSound:
			ok = true
		default:
			r.fault("onion skin", ErrUnknownLayerType, s.log.WithField("type", s.layer.Type()))
		}
		if !ok {
			return
		}
	}
}

func (r *CanvasRenderer) paintOnionSkinBitmap(s *paintState, frame int) bool {
	layer, ok := s.layer.(document.BitmapSource)
	if !ok {
		r.fault("onion skin bitmap", ErrNarrowing, s.log)
		return false
	}

	s.log.WithField("onion", frame).Debug("paint onion skin bitmap")
	if img := layer.BitmapAt(frame); img != nil {
		img.Paint(s.ctx)
	}
	return true
}

func (r *CanvasRenderer) paintOnionSkinVector(s *paintState, frame int) bool {
	layer, ok := s.layer.(document.VectorSource)
	if !ok {
		r.fault("onion skin vector", ErrNarrowing, s.log)
		return false
	}

	s.log.WithFields(logrus.Fields{
		"onion": frame,
		"flags": content.ShowAll,
	}).Debug("paint onion skin vector")
	if img := layer.VectorAt(frame); img != nil {
		img.Paint(s.ctx, content.ShowAll)
	}
	return true
}

// paintCurrentFrame is the last pass and must stay last: nothing may be
// drawn over the current frame.
func (r *CanvasRenderer) paintCurrentFrame(s *paintState) {
	if !r.opts.CurrentFrame {
		return
	}

	switch s.layer.Type() {
	case document.TypeBitmap:
		if layer, ok := s.layer.(document.BitmapSource); !ok {
			r.fault("current frame", ErrNarrowing, s.log)
		} else if img := layer.BitmapAt(s.frame); img != nil {
			img.Paint(s.ctx)
		}
	case document.TypeVector:
		if layer, ok := s.layer.(document.VectorSource); !ok {
			r.fault("current frame", ErrNarrowing, s.log)
		} else if img := layer.VectorAt(s.frame); img != nil {
			img.Paint(s.ctx, 0)
		}
	case document.TypeCamera, document.TypeSound:
	default:
		r.fault("current frame", ErrUnknownLayerType, s.log.WithField("type", s.layer.Type()))
	}
}

func (r *CanvasRenderer) fault(op string, err error, log logrus.FieldLogger) {
	f := &Fault{Op: op, Err: err}
	if r.opts.Strict {
		panic(f)
	}
	log.WithError(err).WithField("op", op).Error(f.Error())
}

// isNilDocument also catches typed nils, whatever the implementation.
func isNilDocument(doc Document) bool {
	if doc == nil {
		return true
	}
	switch v := reflect.ValueOf(doc); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
