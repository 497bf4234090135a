package eggtoss

import (
	"math"

	"github.com/vovakirdan/egg-toss/internal/config"
	"github.com/vovakirdan/egg-toss/internal/core"
)

// Camera maps world units to screen cells.
// X and Y are the world coordinates of the viewport's top-left corner.
type Camera struct {
	X, Y  float64
	Zoom  float64 // Screen cells per world unit
	ViewW int     // Viewport size in cells
	ViewH int
}

// ZoomForViewport picks the zoom once from the viewport width.
// Narrow viewports get the mobile zoom.
func ZoomForViewport(cfg config.CameraConfig, viewW int) float64 {
	if viewW < cfg.MobileBreakpoint {
		return cfg.MobileZoom
	}
	return cfg.DesktopZoom
}

// Follow centers the viewport on target, clamped so it never shows past
// the world edge. When the world is smaller than the viewport the axis pins to 0.
func (c *Camera) Follow(target core.Rect, world core.Rect) {
	if c.Zoom <= 0 {
		return
	}
	viewW := float64(c.ViewW) / c.Zoom
	viewH := float64(c.ViewH) / c.Zoom
	center := target.Center()

	c.X = core.ClampF(center.X-viewW/2, 0, world.W-viewW)
	c.Y = core.ClampF(center.Y-viewH/2, 0, world.H-viewH)
}

// WorldToScreen converts a world point to fractional screen cells.
func (c Camera) WorldToScreen(p core.Vec2) core.Vec2 {
	return p.Sub(core.Vec2{X: c.X, Y: c.Y}).Scale(c.Zoom)
}

// ScreenRect converts a world rect to a cell rect. Non-empty world rects
// always cover at least one cell.
func (c Camera) ScreenRect(r core.Rect) (x, y, w, h int) {
	tl := c.WorldToScreen(r.Pos())
	x = int(math.Floor(tl.X))
	y = int(math.Floor(tl.Y))
	w = max(1, int(math.Round(r.W*c.Zoom)))
	h = max(1, int(math.Round(r.H*c.Zoom)))
	return x, y, w, h
}

// Visible reports whether any cell of r falls inside the viewport.
func (c Camera) Visible(r core.Rect) bool {
	x, y, w, h := c.ScreenRect(r)
	return x+w > 0 && y+h > 0 && x < c.ViewW && y < c.ViewH
}
