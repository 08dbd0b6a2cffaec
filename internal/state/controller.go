package state

import (
	"image/color"
	"log"
)

// Snapshot is an opaque full copy of a surface's pixels.
type Snapshot any

// Surface is the raster sink the controller draws on.
type Surface interface {
	DrawLine(a, b Point)
	StrokeRect(x, y, w, h float64)
	StrokeEllipse(cx, cy, rx, ry float64)
	Snapshot() Snapshot
	Restore(s Snapshot)
	Clear()
	SetStrokeColor(c color.Color)
	SetComposite(c Composite)
	SetLineWidth(w float64)
}

// Chrome receives one-way UI side effects of tool selection.
type Chrome interface {
	SetActiveTool(m ToolMode)
	SetCursor(c Cursor)
}

type noChrome struct{}

func (noChrome) SetActiveTool(ToolMode) {}
func (noChrome) SetCursor(Cursor)       {}

// Controller maps pointer gestures and tool selections to surface calls.
// It is not safe for concurrent use; all methods are expected to run on
// the UI event goroutine.
type Controller struct {
	surface  Surface
	chrome   Chrome
	clock    *gestureClock
	mode     ToolMode
	color    color.Color
	drag     DragState
	snapshot Snapshot
}

// NewController returns a controller in Brush mode painting opaque black.
func NewController(surface Surface, chrome Chrome) *Controller {
	if chrome == nil {
		chrome = noChrome{}
	}
	c := &Controller{
		surface: surface,
		chrome:  chrome,
		clock:   newGestureClock(),
		color:   color.NRGBA{A: 0xff},
	}
	c.SelectMode(Brush)
	return c
}

// Mode returns the active tool.
func (c *Controller) Mode() ToolMode { return c.mode }

// Color returns the last chosen stroke colour.
func (c *Controller) Color() color.Color { return c.color }

// Style returns the stroke style currently applied to the surface.
func (c *Controller) Style() StrokeStyle { return StyleFor(c.mode, c.color) }

// Drag returns a copy of the gesture state.
func (c *Controller) Drag() DragState { return c.drag }

// SelectMode switches tools. An active drag is ended first so a preview
// is never drawn against a snapshot taken for another tool.
func (c *Controller) SelectMode(m ToolMode) {
	if !m.Valid() {
		m = Brush
	}
	if c.drag.Active {
		log.Printf("[TOOL] switching to %s mid-drag, ending gesture %s", m, c.drag.ID)
		c.EndStroke()
	}
	c.mode = m
	c.chrome.SetActiveTool(m)
	c.chrome.SetCursor(CursorFor(m))
	c.applyStyle()
	log.Printf("[TOOL] mode=%s", m)
}

// SetColor sets the colour used by the brush and shape tools.
func (c *Controller) SetColor(col color.Color) {
	if col == nil {
		return
	}
	c.color = col
	c.surface.SetStrokeColor(col)
}

func (c *Controller) applyStyle() {
	s := c.Style()
	c.surface.SetComposite(s.Composite)
	c.surface.SetLineWidth(s.LineWidth)
	c.surface.SetStrokeColor(s.Color)
}

// BeginStroke starts a drag at p and snapshots the surface. It is ignored
// while a drag is already active so the first snapshot survives.
func (c *Controller) BeginStroke(p Point) {
	if c.drag.Active {
		return
	}
	c.drag = DragState{ID: c.clock.next(), Active: true, Origin: p, Last: p}
	c.snapshot = c.surface.Snapshot()
	log.Printf("[DRAW] gesture %s begin mode=%s at (%.0f,%.0f)", c.drag.ID, c.mode, p.X, p.Y)
}

// ContinueStroke extends the active drag to p.
func (c *Controller) ContinueStroke(p Point) {
	if !c.drag.Active {
		return
	}
	switch c.mode {
	case Brush, Eraser:
		c.surface.DrawLine(c.drag.Last, p)
		c.drag.Last = p
	case Rectangle:
		c.surface.Restore(c.snapshot)
		r := RectFromCorners(c.drag.Origin, p)
		c.surface.StrokeRect(r.X, r.Y, r.W, r.H)
	case Ellipse:
		c.surface.Restore(c.snapshot)
		e := OvalFromCorners(c.drag.Origin, p)
		c.surface.StrokeEllipse(e.Center.X, e.Center.Y, e.RX, e.RY)
	case Line:
		c.surface.Restore(c.snapshot)
		c.surface.DrawLine(c.drag.Origin, p)
	}
}

// EndStroke finishes the drag. Whatever the last move left on the surface
// is the committed result.
func (c *Controller) EndStroke() {
	if !c.drag.Active {
		return
	}
	c.drag.Active = false
	log.Printf("[DRAW] gesture %s end", c.drag.ID)
}

// ClearSurface wipes the surface to transparent.
func (c *Controller) ClearSurface() {
	c.surface.Clear()
	log.Println("[DRAW] surface cleared")
}
