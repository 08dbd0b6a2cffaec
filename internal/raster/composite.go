package raster

import (
	"image"
	"image/color"
	"image/draw"

	"SketchBoard/internal/state"
)

// composite applies a coverage mask to dst. Source-over paints c through
// the mask; destination-out scales covered pixels towards transparent.
func composite(dst *image.RGBA, mask *image.Alpha, c color.Color, op state.Composite) {
	b := dst.Bounds().Intersect(mask.Bounds())
	switch op {
	case state.DestinationOut:
		eraseOut(dst, mask, b)
	default:
		draw.DrawMask(dst, b, image.NewUniform(c), image.Point{}, mask, b.Min, draw.Over)
	}
}

// eraseOut multiplies every channel of dst by (1 - coverage). RGBA is
// premultiplied so scaling all four channels keeps colours intact.
func eraseOut(dst *image.RGBA, mask *image.Alpha, b image.Rectangle) {
	for y := b.Min.Y; y < b.Max.Y; y++ {
		mi := mask.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, mi, di = x+1, mi+1, di+4 {
			m := uint32(mask.Pix[mi])
			if m == 0 {
				continue
			}
			keep := 0xff - m
			px := dst.Pix[di : di+4 : di+4]
			for i := range px {
				px[i] = uint8((uint32(px[i])*keep + 0x7f) / 0xff)
			}
		}
	}
}
