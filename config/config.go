// Package config reads renderer settings and scene descriptions from TOML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/32bitkid/onionskin"
	"github.com/32bitkid/onionskin/document"
	"github.com/32bitkid/onionskin/screen"
	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Background       string `toml:"background"`
	Strict           bool   `toml:"strict"`
	CurrentFrame     bool   `toml:"current_frame"`
	OnionSkinFrames  int    `toml:"onion_skin_frames"`
	DisableOnionSkin bool   `toml:"disable_onion_skin"`
	LogLevel         string `toml:"log_level"`

	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	View   View `toml:"view"`

	Layers []Layer `toml:"layers"`
}

// View describes the view transform: scale, then rotate, then translate.
type View struct {
	Scale     float64    `toml:"scale"`
	Rotate    float64    `toml:"rotate"` // degrees
	Translate [2]float64 `toml:"translate"`
}

// Layer describes one document layer. Frames maps frame numbers to content
// files, relative to the config file. Camera layers key Views instead.
type Layer struct {
	Name   string            `toml:"name"`
	Type   string            `toml:"type"`
	Frames map[string]string `toml:"frames"`
	Views  map[string]View   `toml:"views"`
}

func Default() Config {
	return Config{
		Background:      "#ffffff",
		OnionSkinFrames: onionskin.DefaultOnionSkinFrames,
		LogLevel:        "info",
		Width:           320,
		Height:          240,
		View:            View{Scale: 1},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(string(b))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML over the defaults and validates the result.
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := screen.ParseHex(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	if c.OnionSkinFrames < 0 {
		return fmt.Errorf("%w: onion_skin_frames must not be negative", ErrInvalid)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: surface size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.View.Scale == 0 {
		return fmt.Errorf("%w: view scale must not be zero", ErrInvalid)
	}
	for i, l := range c.Layers {
		if err := l.validate(); err != nil {
			return fmt.Errorf("%w: layer %d: %v", ErrInvalid, i, err)
		}
	}
	return nil
}

func (l Layer) validate() error {
	t, ok := document.ParseType(l.Type)
	if !ok {
		return fmt.Errorf("unknown type %q", l.Type)
	}
	if t == document.TypeCamera && len(l.Frames) > 0 {
		return errors.New("camera layers key views, not frames")
	}
	if t != document.TypeCamera && len(l.Views) > 0 {
		return fmt.Errorf("%s layers have no views", l.Type)
	}
	for k := range l.Frames {
		if _, err := FrameNumber(k); err != nil {
			return err
		}
	}
	for k, v := range l.Views {
		if _, err := FrameNumber(k); err != nil {
			return err
		}
		if v.Scale == 0 {
			return fmt.Errorf("view %s: scale must not be zero", k)
		}
	}
	return nil
}

// FrameNumber parses a frames table key.
func FrameNumber(key string) (int, error) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("frame %q is not a positive integer", key)
	}
	return n, nil
}

// Options converts the renderer settings. log may be nil.
func (c Config) Options(log logrus.FieldLogger) onionskin.Options {
	bg, err := screen.ParseHex(c.Background)
	if err != nil {
		bg = screen.DefaultColors.Background
	}
	return onionskin.Options{
		Logger:           log,
		Background:       bg,
		Strict:           c.Strict,
		CurrentFrame:     c.CurrentFrame,
		OnionSkinFrames:  c.OnionSkinFrames,
		DisableOnionSkin: c.DisableOnionSkin,
	}
}

func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// ViewTransform returns the transform described by the [view] table.
func (c Config) ViewTransform() screen.Transform {
	return c.View.Transform()
}

func (v View) Transform() screen.Transform {
	return screen.Scale(v.Scale, v.Scale).
		Then(screen.Rotate(v.Rotate * math.Pi / 180)).
		Then(screen.Translate(v.Translate[0], v.Translate[1]))
}
