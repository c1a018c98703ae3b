package onionskin

import (
	"image/color"
	"io"

	"github.com/32bitkid/onionskin/screen"
	"github.com/sirupsen/logrus"
)

// DefaultOnionSkinFrames is how many frames before the current one are
// previewed.
const DefaultOnionSkinFrames = 3

// Options configure a CanvasRenderer. When several are given, later non-zero
// fields win.
type Options struct {
	Logger     logrus.FieldLogger
	Background color.Color

	// Strict makes faults panic instead of being logged.
	Strict bool

	// CurrentFrame makes the terminal pass paint the current frame's own
	// image. Off, the pass draws nothing.
	CurrentFrame bool

	OnionSkinFrames  int
	DisableOnionSkin bool
}

func (o *Options) merge(other Options) {
	if other.Logger != nil {
		o.Logger = other.Logger
	}
	if other.Background != nil {
		o.Background = other.Background
	}
	if other.OnionSkinFrames > 0 {
		o.OnionSkinFrames = other.OnionSkinFrames
	}
	o.Strict = o.Strict || other.Strict
	o.CurrentFrame = o.CurrentFrame || other.CurrentFrame
	o.DisableOnionSkin = o.DisableOnionSkin || other.DisableOnionSkin
}

func defaultOptions() Options {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return Options{
		Logger:          log,
		Background:      screen.DefaultColors.Background,
		OnionSkinFrames: DefaultOnionSkinFrames,
	}
}
