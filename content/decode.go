package content

import (
	"bufio"
	"bytes"
	"fmt"
	"image/color"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/onionskin/screen"
)

type vecReader struct {
	bits bitreader.BitReader
}

// getPoint24 reads an absolute position from the bit-stream. The format is
// 24-bits long:
//
//	bits  |
//	 0-3  | high nybble of x-position
//	 4-7  | high nybble of y-position
//	 8-15 | low byte of x-position
//	16-23 | low byte of y-position
func (r vecReader) getPoint24() (int, int, error) {
	code, err := r.bits.Read32(24)
	if err != nil {
		return 0, 0, err
	}
	x := ((code & 0xF00000) >> 12) | ((code & 0xFF00) >> 8)
	y := ((code & 0x0F0000) >> 8) | ((code & 0x00FF) >> 0)
	return int(x), int(y), nil
}

// getPoint16 reads a medium length delta from the bit-stream.
//
//	bits |
//	0-7  | y-delta, sign and magnitude
//	8-15 | x-delta, twos-complement
func (r vecReader) getPoint16(x, y int) (int, int, error) {
	dy, err := r.bits.Read8(8)
	if err != nil {
		return 0, 0, err
	}

	if dy&0x80 != 0 {
		y -= int(dy & 0x7F)
	} else {
		y += int(dy & 0x7F)
	}

	dx, err := r.bits.Read8(8)
	if err != nil {
		return 0, 0, err
	}
	x += int(int8(dx))

	return x, y, nil
}

// getPoint8 reads a short delta from the bit-stream.
//
//	bits |
//	0-3  | x-delta, sign and magnitude
//	4-7  | y-delta, sign and magnitude
func (r vecReader) getPoint8(x, y int) (int, int, error) {
	code, err := r.bits.Read8(8)
	if err != nil {
		return 0, 0, err
	}

	xSign, dx := (code>>4)&0x8 != 0, int((code>>4)&0x7)
	if xSign {
		x -= dx
	} else {
		x += dx
	}

	ySign, dy := code&0x8 != 0, int(code&0x7)
	if ySign {
		y -= dy
	} else {
		y += dy
	}

	return x, y, nil
}

// more reports whether the next byte is operand data rather than an op-code.
func (r vecReader) more() (bool, error) {
	peek, err := r.bits.Peek8(8)
	if err != nil {
		return false, err
	}
	return peek < 0xf0, nil
}

// Vector op-codes
type vOpCode uint8

const (
	vOpSetColor   vOpCode = 0xf0
	vOpSetWidth   vOpCode = 0xf1
	vOpHide       vOpCode = 0xf2
	vOpShow       vOpCode = 0xf3
	vOpGuides     vOpCode = 0xf4
	vOpMedStroke  vOpCode = 0xf5
	vOpLongStroke vOpCode = 0xf6
	vOpShrtStroke vOpCode = 0xf7
	vOpFills      vOpCode = 0xf8
	vOpDone       vOpCode = 0xff
)

type vecState struct {
	color  color.Color
	width  float64
	hidden bool
}

// DecodeVector reads a vector image from its packed op-code form.
//
// A stream is a sequence of op-codes (bytes >= 0xf0) each followed by
// operand bytes (< 0xf0) and terminated by 0xff. Width operands are in
// quarter units.
func DecodeVector(payload []byte) (*Vector, error) {
	r := vecReader{
		bits: bitreader.NewReader(bufio.NewReader(bytes.NewReader(payload))),
	}

	state := vecState{
		color: screen.DefaultColors.Ink,
		width: 1,
	}
	v := &Vector{}

	type deltaFn func(x, y int) (int, int, error)
	stroke := func(next deltaFn) error {
		x, y, err := r.getPoint24()
		if err != nil {
			return err
		}
		s := Stroke{
			Points: []screen.Point{screen.Pt(float64(x), float64(y))},
			Color:  state.color,
			Width:  state.width,
			Hidden: state.hidden,
		}
		for {
			if ok, err := r.more(); err != nil {
				return err
			} else if !ok {
				break
			}
			if x, y, err = next(x, y); err != nil {
				return err
			}
			s.Points = append(s.Points, screen.Pt(float64(x), float64(y)))
		}
		v.Add(s)
		return nil
	}

opLoop:
	for {
		op, err := r.bits.Read8(8)
		if err != nil {
			return nil, fmt.Errorf("read op-code: %w", err)
		}

		switch vOpCode(op) {
		case vOpSetColor:
			var c [3]uint8
			for i := range c {
				if c[i], err = r.bits.Read8(8); err != nil {
					return nil, err
				}
			}
			state.color = rgb(c[0], c[1], c[2])
		case vOpSetWidth:
			w, err := r.bits.Read8(8)
			if err != nil {
				return nil, err
			}
			state.width = float64(w) / 4
		case vOpHide:
			state.hidden = true
		case vOpShow:
			state.hidden = false

		case vOpShrtStroke:
			err = stroke(r.getPoint8)
		case vOpMedStroke:
			err = stroke(r.getPoint16)
		case vOpLongStroke:
			err = stroke(func(int, int) (int, int, error) { return r.getPoint24() })

		case vOpFills:
			for {
				var ok bool
				if ok, err = r.more(); err != nil || !ok {
					break
				}
				x, y, err := r.getPoint24()
				if err != nil {
					return nil, err
				}
				v.Add(Fill{At: screen.Pt(float64(x), float64(y)), Color: state.color})
			}

		case vOpGuides:
			for {
				var ok bool
				if ok, err = r.more(); err != nil || !ok {
					break
				}
				x1, y1, err := r.getPoint24()
				if err != nil {
					return nil, err
				}
				x2, y2, err := r.getPoint24()
				if err != nil {
					return nil, err
				}
				v.Add(Guide{
					From: screen.Pt(float64(x1), float64(y1)),
					To:   screen.Pt(float64(x2), float64(y2)),
				})
			}

		case vOpDone:
			break opLoop
		default:
			return nil, fmt.Errorf("unhandled op 0x%02x", op)
		}
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
