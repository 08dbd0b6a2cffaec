package state

import (
	"image/color"
	"strings"
)

// Point is a position in surface pixel coordinates.
type Point struct{ X, Y float64 }

// ToolMode is the active drawing tool.
type ToolMode int

const (
	Brush ToolMode = iota
	Eraser
	Rectangle
	Ellipse
	Line
)

// Modes lists every tool in toolbar order.
var Modes = []ToolMode{Brush, Eraser, Rectangle, Ellipse, Line}

func (m ToolMode) String() string {
	switch m {
	case Brush:
		return "brush"
	case Eraser:
		return "eraser"
	case Rectangle:
		return "rectangle"
	case Ellipse:
		return "ellipse"
	case Line:
		return "line"
	}
	return "unknown"
}

// Valid reports whether m is one of the five tools.
func (m ToolMode) Valid() bool {
	return m >= Brush && m <= Line
}

// IsShape reports whether m previews against the drag snapshot.
func (m ToolMode) IsShape() bool {
	return m == Rectangle || m == Ellipse || m == Line
}

// ParseToolMode looks up a tool by its String name.
func ParseToolMode(s string) (ToolMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes {
		if m.String() == s {
			return m, true
		}
	}
	return Brush, false
}

// Composite is the rule for combining new pixels with existing ones.
type Composite int

const (
	SourceOver Composite = iota // paint over
	DestinationOut              // erase to transparent
)

func (c Composite) String() string {
	if c == DestinationOut {
		return "destination-out"
	}
	return "source-over"
}

// Cursor is the pointer affordance shown over the surface.
type Cursor int

const (
	BrushCursor Cursor = iota
	PointCursor
	EraserCursor
)

// StrokeStyle is what the surface needs to draw the next stroke.
type StrokeStyle struct {
	Color     color.Color
	Composite Composite
	LineWidth float64
}

// DragState tracks one pointer gesture.
type DragState struct {
	ID     string // correlates log lines of one gesture
	Active bool
	Origin Point
	Last   Point
}

type modeSettings struct {
	composite Composite
	lineWidth float64
	cursor    Cursor
}

const (
	thinWidth   = 1.0
	eraserWidth = 15.0
)

var modeTable = map[ToolMode]modeSettings{
	Brush:     {SourceOver, thinWidth, BrushCursor},
	Rectangle: {SourceOver, thinWidth, PointCursor},
	Ellipse:   {SourceOver, thinWidth, PointCursor},
	Line:      {SourceOver, thinWidth, PointCursor},
	Eraser:    {DestinationOut, eraserWidth, EraserCursor},
}

// StyleFor returns the stroke style a tool draws with in color c.
func StyleFor(m ToolMode, c color.Color) StrokeStyle {
	s := modeTable[m]
	return StrokeStyle{Color: c, Composite: s.composite, LineWidth: s.lineWidth}
}

// CursorFor returns the pointer affordance for a tool.
func CursorFor(m ToolMode) Cursor {
	return modeTable[m].cursor
}
