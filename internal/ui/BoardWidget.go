package ui

import (
	"image/color"

	"SketchBoard/internal/raster"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the raster surface and turns pointer events into
// controller calls. One surface pixel is one Fyne unit.
type BoardWidget struct {
	widget.BaseWidget
	controller *state.Controller
	surface    *raster.Surface
	cursors    *cursorSet
	cursor     desktop.Cursor
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

func NewBoardWidget(c *state.Controller, s *raster.Surface, cursors *cursorSet) *BoardWidget {
	if cursors == nil {
		cursors = newCursorSet()
	}
	b := &BoardWidget{
		controller: c,
		surface:    s,
		cursors:    cursors,
		cursor:     cursors.cursor(state.CursorFor(c.Mode())),
	}
	b.ExtendBaseWidget(b)
	return b
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

// Cursor implements desktop.Cursorable.
func (b *BoardWidget) Cursor() desktop.Cursor {
	return b.cursor
}

func (b *BoardWidget) setCursor(c state.Cursor) {
	b.cursor = b.cursors.cursor(c)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.controller.BeginStroke(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.controller.EndStroke()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.continueStroke(e.Position)
}

func (b *BoardWidget) DragEnd() {
	b.controller.EndStroke()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.continueStroke(e.Position)
}

// MouseOut ends the drag the same way a release does.
func (b *BoardWidget) MouseOut() {
	b.controller.EndStroke()
}

func (b *BoardWidget) continueStroke(p fyne.Position) {
	if !b.controller.Drag().Active {
		return
	}
	b.controller.ContinueStroke(toPoint(p))
	b.Refresh()
}

// Clear wipes the surface and redraws.
func (b *BoardWidget) Clear() {
	b.controller.ClearSurface()
	b.Refresh()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.image = canvas.NewImageFromImage(b.surface.Image())
	r.image.FillMode = canvas.ImageFillStretch
	r.image.ScaleMode = canvas.ImageScalePixels
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	image      *canvas.Image
}

func (r *boardWidgetRenderer) surfaceSize() fyne.Size {
	bounds := r.board.surface.Bounds()
	return fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image}
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {
	size := r.surfaceSize()
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)
	r.image.Move(fyne.NewPos(0, 0))
	r.image.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.surfaceSize()
}

func (r *boardWidgetRenderer) Refresh() {
	r.image.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
