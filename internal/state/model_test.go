package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseToolMode(t *testing.T) {
	for _, m := range Modes {
		got, ok := ParseToolMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	got, ok := ParseToolMode("  Ellipse ")
	assert.True(t, ok)
	assert.Equal(t, Ellipse, got)

	got, ok = ParseToolMode("spray")
	assert.False(t, ok)
	assert.Equal(t, Brush, got)
}

func TestToolModeKinds(t *testing.T) {
	assert.False(t, Brush.IsShape())
	assert.False(t, Eraser.IsShape())
	assert.True(t, Rectangle.IsShape())
	assert.True(t, Ellipse.IsShape())
	assert.True(t, Line.IsShape())
	assert.False(t, ToolMode(-1).Valid())
	assert.Equal(t, "unknown", ToolMode(9).String())
}

func TestRectFromCorners(t *testing.T) {
	r := RectFromCorners(Point{10, 10}, Point{50, 30})
	assert.Equal(t, Rect{X: 10, Y: 10, W: 40, H: 20}, r)
	assert.Equal(t, r, RectFromCorners(Point{50, 10}, Point{10, 30}))
	assert.Equal(t, Point{30, 20}, r.Center())
}

func TestOvalFromCorners(t *testing.T) {
	e := OvalFromCorners(Point{0, 0}, Point{20, 10})
	assert.Equal(t, Oval{Center: Point{10, 5}, RX: 10, RY: 5}, e)
}
