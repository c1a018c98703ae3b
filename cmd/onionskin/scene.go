package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/32bitkid/onionskin/config"
	"github.com/32bitkid/onionskin/content"
	"github.com/32bitkid/onionskin/document"
	"github.com/32bitkid/onionskin/screen"
	log "github.com/sirupsen/logrus"
)

// loadDocument builds a document from the [[layers]] tables of cfg. Content
// paths are relative to dir.
func loadDocument(cfg config.Config, dir string) (*document.Document, error) {
	doc := document.New()
	for i, l := range cfg.Layers {
		t, _ := document.ParseType(l.Type)
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("Layer %d", i+1)
		}

		var layer document.Layer
		switch t {
		case document.TypeBitmap:
			bl := document.NewBitmapLayer(name)
			err := eachFrame(l, func(frame int, file string) error {
				img, err := loadPNG(filepath.Join(dir, file))
				if err != nil {
					return err
				}
				bl.Keys.Set(frame, content.BitmapFrom(img, image.Point{}))
				return nil
			})
			if err != nil {
				return nil, err
			}
			layer = bl
		case document.TypeVector:
			vl := document.NewVectorLayer(name)
			err := eachFrame(l, func(frame int, file string) error {
				b, err := os.ReadFile(filepath.Join(dir, file))
				if err != nil {
					return err
				}
				v, err := content.DecodeVector(b)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				vl.Keys.Set(frame, v)
				return nil
			})
			if err != nil {
				return nil, err
			}
			layer = vl
		case document.TypeCamera:
			cl := document.NewCameraLayer(name)
			for key, view := range l.Views {
				frame, err := config.FrameNumber(key)
				if err != nil {
					return nil, err
				}
				cl.Keys.Set(frame, view.Transform())
			}
			layer = cl
		case document.TypeSound:
			sl := document.NewSoundLayer(name)
			err := eachFrame(l, func(frame int, clip string) error {
				sl.Keys.Set(frame, clip)
				return nil
			})
			if err != nil {
				return nil, err
			}
			layer = sl
		default:
			return nil, fmt.Errorf("layer %d: unknown type %q", i, l.Type)
		}

		log.WithField("layer", i).Debugf("loaded %v", layer)
		doc.Add(layer)
	}
	return doc, nil
}

// viewAt is base preceded by the camera move in effect at frame. Only the
// first camera layer counts.
func viewAt(doc *document.Document, base screen.Transform, frame int) screen.Transform {
	for _, l := range doc.Layers {
		if cam, ok := l.(*document.CameraLayer); ok {
			return cam.ViewAt(frame).Then(base)
		}
	}
	return base
}

func eachFrame(l config.Layer, fn func(frame int, value string) error) error {
	for key, value := range l.Frames {
		frame, err := config.FrameNumber(key)
		if err != nil {
			return err
		}
		if err := fn(frame, strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
