package state_test

import (
	"image/color"
	"testing"

	"SketchBoard/internal/raster"
	"SketchBoard/internal/state"

	"github.com/stretchr/testify/assert"
)

func paintedSurface() *raster.Surface {
	s := raster.New(64, 48)
	s.SetLineWidth(3)
	s.SetStrokeColor(color.NRGBA{B: 0xff, A: 0xff})
	s.DrawLine(state.Point{X: 0, Y: 0}, state.Point{X: 64, Y: 48})
	s.SetLineWidth(1)
	s.SetStrokeColor(color.Black)
	return s
}

func pixels(s *raster.Surface) []byte {
	return append([]byte(nil), s.Image().Pix...)
}

func TestBeginEndLeavesSurfaceIdentical(t *testing.T) {
	for _, m := range state.Modes {
		t.Run(m.String(), func(t *testing.T) {
			s := paintedSurface()
			c := state.NewController(s, nil)
			c.SelectMode(m)
			before := pixels(s)
			c.BeginStroke(state.Point{X: 20, Y: 20})
			c.EndStroke()
			assert.Equal(t, before, s.Image().Pix)
		})
	}
}

func TestShapePreviewEqualsSnapshotPlusOneOutline(t *testing.T) {
	origin := state.Point{X: 8, Y: 6}
	final := state.Point{X: 50, Y: 40}
	moves := []state.Point{{X: 12, Y: 30}, {X: 60, Y: 10}, {X: 30, Y: 30}, final}

	for _, m := range []state.ToolMode{state.Rectangle, state.Ellipse, state.Line} {
		t.Run(m.String(), func(t *testing.T) {
			live := paintedSurface()
			c := state.NewController(live, nil)
			c.SelectMode(m)
			c.BeginStroke(origin)
			for _, p := range moves {
				c.ContinueStroke(p)
			}
			c.EndStroke()

			want := paintedSurface()
			wc := state.NewController(want, nil)
			wc.SelectMode(m)
			wc.BeginStroke(origin)
			wc.ContinueStroke(final)
			wc.EndStroke()

			assert.Equal(t, want.Image().Pix, live.Image().Pix)
		})
	}
}

func TestBrushStrokeAccumulates(t *testing.T) {
	s := raster.New(40, 40)
	c := state.NewController(s, nil)
	c.BeginStroke(state.Point{X: 0, Y: 5.5})
	c.ContinueStroke(state.Point{X: 20, Y: 5.5})
	c.ContinueStroke(state.Point{X: 20, Y: 5.5})
	c.ContinueStroke(state.Point{X: 20.5, Y: 30})
	c.EndStroke()

	assert.Equal(t, uint8(0xff), s.Image().RGBAAt(10, 5).A, "first segment kept")
	assert.NotZero(t, s.Image().RGBAAt(20, 20).A, "second segment drawn")
}

func TestEraserStrokeClearsPaint(t *testing.T) {
	s := raster.New(40, 40)
	c := state.NewController(s, nil)
	s.SetLineWidth(20)
	s.DrawLine(state.Point{X: 0, Y: 20}, state.Point{X: 40, Y: 20})

	c.SelectMode(state.Eraser)
	c.BeginStroke(state.Point{X: 20, Y: 0})
	c.ContinueStroke(state.Point{X: 20, Y: 40})
	c.EndStroke()

	assert.Zero(t, s.Image().RGBAAt(20, 20).A)
	assert.Equal(t, uint8(0xff), s.Image().RGBAAt(2, 20).A)
}

func TestSetColorDoesNotRecolorCommittedSegments(t *testing.T) {
	s := raster.New(40, 10)
	c := state.NewController(s, nil)
	c.BeginStroke(state.Point{X: 0, Y: 2.5})
	c.ContinueStroke(state.Point{X: 10, Y: 2.5})
	c.SetColor(color.NRGBA{R: 0xff, A: 0xff})
	c.ContinueStroke(state.Point{X: 20, Y: 2.5})
	c.EndStroke()

	assert.Equal(t, color.RGBA{A: 0xff}, s.Image().RGBAAt(5, 2))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, s.Image().RGBAAt(15, 2))
}

func TestClearSurfaceBlanksBuffer(t *testing.T) {
	s := paintedSurface()
	c := state.NewController(s, nil)
	c.SelectMode(state.Ellipse)
	c.BeginStroke(state.Point{X: 5, Y: 5})
	c.ContinueStroke(state.Point{X: 30, Y: 30})
	c.EndStroke()
	c.ClearSurface()
	for _, v := range s.Image().Pix {
		if !assert.Zero(t, v) {
			break
		}
	}
}
