// Package onionskin composites one frame of an animation document onto a
// raster surface, together with onion-skin previews of the frames leading up
// to it.
//
// A CanvasRenderer is configured with a surface and a view transform and then
// asked to Paint a (document, layer, frame) triple. Each call runs the same
// three passes in order, each drawing over the last:
//
//   - background: the whole surface is filled with an opaque colour
//   - onion skin: up to three preceding frames of the layer are drawn, vector
//     frames with every construction aid visible
//   - current frame: the terminal pass, reserved so nothing is ever drawn
//     over the current frame
//
// Content images paint themselves; the renderer only decides what is painted
// and in which order.
package onionskin
