package screen

import (
	"image/color"
)

// DefaultColors are the colours used when a document or configuration does
// not name its own.
var DefaultColors = struct {
	Background color.Color
	Ink        color.Color
	Guide      color.Color
	ThinLine   color.Color
}{
	Background: rgb24Color(0xFFFFFF),
	Ink:        rgb24Color(0x000000),
	Guide:      rgb24Color(0x5fcde4),
	ThinLine:   rgb24Color(0x847e87),
}

// HairlineLift is the HCL luminance added to construction aids drawn in
// their owner's colour.
const HairlineLift = 0.35
