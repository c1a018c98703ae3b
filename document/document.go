// Package document models an animation document as the renderer sees it:
// an ordered set of layers, each keying content to frame numbers.
package document

import (
	"errors"
	"fmt"
)

var ErrLayerIndex = errors.New("layer index out of range")

// Document is an ordered collection of layers. Index 0 is the bottom layer.
type Document struct {
	Layers []Layer
}

func New(layers ...Layer) *Document {
	return &Document{Layers: layers}
}

func (d *Document) Add(l Layer) int {
	d.Layers = append(d.Layers, l)
	return len(d.Layers) - 1
}

func (d *Document) LayerCount() int {
	return len(d.Layers)
}

// Layer returns the layer at index, or ErrLayerIndex.
func (d *Document) Layer(index int) (Layer, error) {
	if index < 0 || index >= len(d.Layers) {
		return nil, fmt.Errorf("layer %d of %d: %w", index, len(d.Layers), ErrLayerIndex)
	}
	return d.Layers[index], nil
}

// FrameCount is the highest keyed frame across all layers.
func (d *Document) FrameCount() int {
	last := 0
	for _, l := range d.Layers {
		var frames []int
		switch l := l.(type) {
		case *BitmapLayer:
			frames = l.Keys.frames
		case *VectorLayer:
			frames = l.Keys.frames
		case *CameraLayer:
			frames = l.Keys.frames
		case *SoundLayer:
			frames = l.Keys.frames
		}
		if n := len(frames); n > 0 && frames[n-1] > last {
			last = frames[n-1]
		}
	}
	return last
}
