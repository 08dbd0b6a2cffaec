package raster

import (
	"math"

	"SketchBoard/internal/state"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four arcs approximate a quarter
// ellipse each.
const kappa = 0.5522847498

// segmentPath adds a quad of width w centred on a-b. It reports false
// for a zero-length segment, which covers no pixels.
func segmentPath(r *vector.Rasterizer, a, b state.Point, w float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return false
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	r.MoveTo(f32(a.X+nx), f32(a.Y+ny))
	r.LineTo(f32(b.X+nx), f32(b.Y+ny))
	r.LineTo(f32(b.X-nx), f32(b.Y-ny))
	r.LineTo(f32(a.X-nx), f32(a.Y-ny))
	r.ClosePath()
	return true
}

// rectOutlinePath adds the band of width w centred on the edges of rc.
// The inner contour runs the other way so it cuts a hole.
func rectOutlinePath(r *vector.Rasterizer, rc state.Rect, w float64) {
	hw := w / 2
	x0, y0 := rc.X-hw, rc.Y-hw
	x1, y1 := rc.X+rc.W+hw, rc.Y+rc.H+hw
	r.MoveTo(f32(x0), f32(y0))
	r.LineTo(f32(x1), f32(y0))
	r.LineTo(f32(x1), f32(y1))
	r.LineTo(f32(x0), f32(y1))
	r.ClosePath()

	if rc.W <= w || rc.H <= w {
		return
	}
	x0, y0 = rc.X+hw, rc.Y+hw
	x1, y1 = rc.X+rc.W-hw, rc.Y+rc.H-hw
	r.MoveTo(f32(x0), f32(y0))
	r.LineTo(f32(x0), f32(y1))
	r.LineTo(f32(x1), f32(y1))
	r.LineTo(f32(x1), f32(y0))
	r.ClosePath()
}

// ellipseOutlinePath adds the ring of width w centred on the ellipse.
func ellipseOutlinePath(r *vector.Rasterizer, c state.Point, rx, ry, w float64) {
	hw := w / 2
	ellipsePath(r, c, rx+hw, ry+hw, false)
	if rx > hw && ry > hw {
		ellipsePath(r, c, rx-hw, ry-hw, true)
	}
}

func ellipsePath(r *vector.Rasterizer, c state.Point, rx, ry float64, reverse bool) {
	kx, ky := rx*kappa, ry*kappa
	if reverse {
		ky, ry = -ky, -ry
	}
	r.MoveTo(f32(c.X+rx), f32(c.Y))
	r.CubeTo(f32(c.X+rx), f32(c.Y+ky), f32(c.X+kx), f32(c.Y+ry), f32(c.X), f32(c.Y+ry))
	r.CubeTo(f32(c.X-kx), f32(c.Y+ry), f32(c.X-rx), f32(c.Y+ky), f32(c.X-rx), f32(c.Y))
	r.CubeTo(f32(c.X-rx), f32(c.Y-ky), f32(c.X-kx), f32(c.Y-ry), f32(c.X), f32(c.Y-ry))
	r.CubeTo(f32(c.X+kx), f32(c.Y-ry), f32(c.X+rx), f32(c.Y-ky), f32(c.X+rx), f32(c.Y))
	r.ClosePath()
}

func f32(v float64) float32 { return float32(v) }
