// Package raster implements the pixel surface the drawing controller paints on.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"SketchBoard/internal/state"

	"golang.org/x/image/vector"
)

// Surface is an RGBA pixel buffer with a canvas-like stroking API.
// It is not safe for concurrent use.
type Surface struct {
	img  *image.RGBA
	mask *image.Alpha
	ras  *vector.Rasterizer

	color     color.Color
	composite state.Composite
	lineWidth float64
}

var _ state.Surface = (*Surface)(nil)

type snapshot struct {
	bounds image.Rectangle
	pix    []byte
}

// New returns a fully transparent w x h surface stroking 1 unit black lines.
func New(w, h int) *Surface {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r := image.Rect(0, 0, w, h)
	return &Surface{
		img:       image.NewRGBA(r),
		mask:      image.NewAlpha(r),
		ras:       vector.NewRasterizer(w, h),
		color:     color.Black,
		lineWidth: 1,
	}
}

// Image exposes the live pixel buffer. Callers must not keep writing to it.
func (s *Surface) Image() *image.RGBA { return s.img }

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

func (s *Surface) SetStrokeColor(c color.Color) {
	if c != nil {
		s.color = c
	}
}

func (s *Surface) SetComposite(c state.Composite) { s.composite = c }

func (s *Surface) SetLineWidth(w float64) {
	if w > 0 {
		s.lineWidth = w
	}
}

// LineWidth returns the current stroke width.
func (s *Surface) LineWidth() float64 { return s.lineWidth }

// Composite returns the current compositing mode.
func (s *Surface) Composite() state.Composite { return s.composite }

// Snapshot copies every pixel of the surface.
func (s *Surface) Snapshot() state.Snapshot {
	pix := make([]byte, len(s.img.Pix))
	copy(pix, s.img.Pix)
	return &snapshot{bounds: s.img.Bounds(), pix: pix}
}

// Restore writes a snapshot back at the origin. Snapshots taken from a
// surface of a different size are ignored.
func (s *Surface) Restore(snap state.Snapshot) {
	sn, ok := snap.(*snapshot)
	if !ok || sn == nil || sn.bounds != s.img.Bounds() {
		return
	}
	copy(s.img.Pix, sn.pix)
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// DrawLine strokes the segment a-b with butt caps.
func (s *Surface) DrawLine(a, b state.Point) {
	s.beginPath()
	if !segmentPath(s.ras, a, b, s.lineWidth) {
		return
	}
	s.fill()
}

// StrokeRect strokes the outline of the rectangle at (x, y) sized w x h.
// Negative sizes extend left or up.
func (s *Surface) StrokeRect(x, y, w, h float64) {
	r := state.RectFromCorners(state.Point{X: x, Y: y}, state.Point{X: x + w, Y: y + h})
	s.beginPath()
	rectOutlinePath(s.ras, r, s.lineWidth)
	s.fill()
}

// StrokeEllipse strokes the outline of an axis-aligned ellipse.
func (s *Surface) StrokeEllipse(cx, cy, rx, ry float64) {
	if rx < 0 {
		rx = -rx
	}
	if ry < 0 {
		ry = -ry
	}
	if rx == 0 && ry == 0 {
		return
	}
	s.beginPath()
	ellipseOutlinePath(s.ras, state.Point{X: cx, Y: cy}, rx, ry, s.lineWidth)
	s.fill()
}

func (s *Surface) beginPath() {
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Src
}

func (s *Surface) fill() {
	s.ras.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})
	composite(s.img, s.mask, s.color, s.composite)
}
