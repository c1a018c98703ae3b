package screen

import (
	"image/color"
	"testing"

	clr "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixEndpoints(t *testing.T) {
	assert.Equal(t, rgba64(black), rgba64(Mix(black, white, 0)))
	assert.Equal(t, rgba64(white), rgba64(Mix(black, white, 1)))

	mid, _ := clr.MakeColor(Mix(black, white, 0.5))
	r, g, b := mid.RGB255()
	assert.InDelta(t, 127, int(r), 1)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestLighten(t *testing.T) {
	base := color.RGBA{0x40, 0x50, 0x60, 0xff}
	before, _ := clr.MakeColor(base)
	after, _ := clr.MakeColor(Lighten(base, 0.2))

	_, _, l1 := before.Hcl()
	_, _, l2 := after.Hcl()
	assert.Greater(t, l2, l1)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x80, 0x00, 0xff}, c)

	_, err = ParseHex("orange")
	assert.Error(t, err)
}

func TestDefaultBackgroundIsOpaqueWhite(t *testing.T) {
	assert.Equal(t, rgba64(white), rgba64(DefaultColors.Background))
}
