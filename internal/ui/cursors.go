package ui

import (
	"image"
	"image/color"

	"SketchBoard/internal/raster"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2/driver/desktop"
)

const cursorSize = 24

// imageCursor is a custom pointer image with a hotspot.
type imageCursor struct {
	img  image.Image
	hotX int
	hotY int
}

var _ desktop.Cursor = (*imageCursor)(nil)

func (c *imageCursor) Image() (image.Image, int, int) {
	return c.img, c.hotX, c.hotY
}

// brushCursor is a pencil leaning right with its tip at the bottom-left
// corner, where the stroke starts.
func brushCursor() *imageCursor {
	s := raster.New(cursorSize, cursorSize)
	s.SetLineWidth(4)
	s.SetStrokeColor(color.NRGBA{R: 0xe0, G: 0xa0, B: 0x30, A: 0xff})
	s.DrawLine(state.Point{X: 6, Y: 18}, state.Point{X: 21, Y: 3})
	s.SetStrokeColor(color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff})
	s.DrawLine(state.Point{X: 0.5, Y: 23.5}, state.Point{X: 6, Y: 18})
	return &imageCursor{img: s.Image(), hotX: 0, hotY: cursorSize - 1}
}

// eraserCursor is a tilted block whose lower edge sits on the hotspot.
func eraserCursor() *imageCursor {
	s := raster.New(cursorSize, cursorSize)
	s.SetLineWidth(8)
	s.SetStrokeColor(color.NRGBA{R: 0xf0, G: 0x80, B: 0x90, A: 0xff})
	s.DrawLine(state.Point{X: 3, Y: 17}, state.Point{X: 15, Y: 5})
	s.SetStrokeColor(color.NRGBA{R: 0x40, G: 0x60, B: 0xc0, A: 0xff})
	s.DrawLine(state.Point{X: 15, Y: 5}, state.Point{X: 21, Y: 1})
	s.SetLineWidth(1)
	s.SetStrokeColor(color.NRGBA{A: 0xff})
	s.StrokeRect(0.5, 19.5, 12, 0)
	return &imageCursor{img: s.Image(), hotX: 0, hotY: 20}
}

// cursorSet maps controller affordances to driver cursors.
type cursorSet struct {
	brush  desktop.Cursor
	eraser desktop.Cursor
}

func newCursorSet() *cursorSet {
	return &cursorSet{brush: brushCursor(), eraser: eraserCursor()}
}

func (cs *cursorSet) cursor(c state.Cursor) desktop.Cursor {
	switch c {
	case state.BrushCursor:
		return cs.brush
	case state.EraserCursor:
		return cs.eraser
	}
	return desktop.CrosshairCursor
}
