package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/32bitkid/onionskin"
	"github.com/32bitkid/onionskin/screen"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scene = `
background = "#202020"
strict = true
current_frame = true
onion_skin_frames = 2
log_level = "debug"
width = 64
height = 48

[view]
scale = 2
rotate = 90
translate = [10, 5]

[[layers]]
name = "Ink"
type = "vector"
frames = { 1 = "ink1.vec", 4 = "ink4.vec" }

[[layers]]
name = "Paper"
type = "bitmap"

[layers.frames]
2 = "paper.png"
`

func TestDecode(t *testing.T) {
	cfg, err := Decode(scene)
	require.NoError(t, err)

	assert.Equal(t, "#202020", cfg.Background)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.CurrentFrame)
	assert.False(t, cfg.DisableOnionSkin)
	assert.Equal(t, 2, cfg.OnionSkinFrames)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.Equal(t, View{Scale: 2, Rotate: 90, Translate: [2]float64{10, 5}}, cfg.View)

	require.Len(t, cfg.Layers, 2)
	assert.Equal(t, Layer{
		Name:   "Ink",
		Type:   "vector",
		Frames: map[string]string{"1": "ink1.vec", "4": "ink4.vec"},
	}, cfg.Layers[0])
	assert.Equal(t, "bitmap", cfg.Layers[1].Type)
	assert.Equal(t, map[string]string{"2": "paper.png"}, cfg.Layers[1].Frames)
}

func TestDecodeKeepsDefaults(t *testing.T) {
	cfg, err := Decode(`width = 10`)
	require.NoError(t, err)

	want := Default()
	want.Width = 10
	assert.Equal(t, want, cfg)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"background", `background = "not a colour"`},
		{"unknown key", `backgroud = "#ffffff"`},
		{"unknown nested key", "[view]\nzoom = 2"},
		{"log level", `log_level = "loud"`},
		{"negative onion frames", `onion_skin_frames = -1`},
		{"zero width", `width = 0`},
		{"zero scale", "[view]\nscale = 0"},
		{"layer type", "[[layers]]\ntype = \"audio\""},
		{"frame key", "[[layers]]\ntype = \"bitmap\"\nframes = { zero = \"a.png\" }"},
		{"frame zero", "[[layers]]\ntype = \"bitmap\"\nframes = { 0 = \"a.png\" }"},
		{"camera frames", "[[layers]]\ntype = \"camera\"\nframes = { 1 = \"a.png\" }"},
		{"bitmap views", "[[layers]]\ntype = \"bitmap\"\n[layers.views.1]\nscale = 1"},
		{"view without scale", "[[layers]]\ntype = \"camera\"\n[layers.views.1]\nrotate = 90"},
		{"view frame key", "[[layers]]\ntype = \"camera\"\n[layers.views.zero]\nscale = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestDecodeCameraViews(t *testing.T) {
	cfg, err := Decode(`
[[layers]]
name = "Camera"
type = "camera"

[layers.views.3]
scale = 2
translate = [1, 0]
`)
	require.NoError(t, err)
	require.Len(t, cfg.Layers, 1)

	view, ok := cfg.Layers[0].Views["3"]
	require.True(t, ok)
	assert.Equal(t, View{Scale: 2, Translate: [2]float64{1, 0}}, view)

	p := view.Transform().Apply(screen.Pt(1, 1))
	assert.InDelta(t, 3, p.X, 1e-9)
	assert.InDelta(t, 2, p.Y, 1e-9)
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode(`width = `)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(scene), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Layers, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`width = -1`), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "bad.toml")
}

func TestFrameNumber(t *testing.T) {
	n, err := FrameNumber("12")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	for _, key := range []string{"", "0", "-3", "1.5", "one"} {
		_, err := FrameNumber(key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestViewTransform(t *testing.T) {
	cfg := Default()
	cfg.View = View{Scale: 2, Rotate: 90, Translate: [2]float64{10, 5}}

	// (1, 0) scales to (2, 0), rotates to (0, 2), then moves to (10, 7).
	p := cfg.ViewTransform().Apply(screen.Pt(1, 0))
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 7, p.Y, 1e-9)

	assert.InDelta(t, 2, cfg.ViewTransform().LineScale(), 1e-9)
	assert.True(t, Default().ViewTransform().IsIdentity())
}

func TestOptions(t *testing.T) {
	cfg, err := Decode(scene)
	require.NoError(t, err)

	log := logrus.New()
	opts := cfg.Options(log)
	assert.Same(t, log, opts.Logger)
	assert.Equal(t, color.RGBA{0x20, 0x20, 0x20, 0xff}, color.RGBAModel.Convert(opts.Background))
	assert.True(t, opts.Strict)
	assert.True(t, opts.CurrentFrame)
	assert.Equal(t, 2, opts.OnionSkinFrames)
	assert.False(t, opts.DisableOnionSkin)

	opts = Default().Options(nil)
	assert.Nil(t, opts.Logger)
	assert.Equal(t, onionskin.DefaultOnionSkinFrames, opts.OnionSkinFrames)
	assert.Equal(t, color.RGBAModel.Convert(screen.DefaultColors.Background), color.RGBAModel.Convert(opts.Background))
}
