package components

import (
	"math"

	cfg "github.com/automoto/piratecave/config"
	"github.com/solarlune/resolv"
)

// SpaceGroundQuery answers circle overlap queries against a collision
// space. Coordinates come in as world units (y-up) and are tested in pixels.
type SpaceGroundQuery struct {
	Space *resolv.Space
}

func (q SpaceGroundQuery) Overlaps(x, y, radius float64, mask ...string) bool {
	if q.Space == nil {
		return false
	}
	px, py, r := cfg.ToPixels(x), -cfg.ToPixels(y), cfg.ToPixels(radius)

	// Temporary probe for the broad phase, same trick as a spawn safety check
	probe := resolv.NewObject(px-r, py-r, r*2, r*2)
	q.Space.Add(probe)
	defer q.Space.Remove(probe)

	check := probe.Check(0, 0, mask...)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if CircleOverlapsRect(px, py, r, o.X, o.Y, o.W, o.H) {
			return true
		}
	}
	return false
}

// CircleOverlapsRect reports whether a circle touches or overlaps an
// axis-aligned rectangle.
func CircleOverlapsRect(cx, cy, r, x, y, w, h float64) bool {
	nx := math.Max(x, math.Min(cx, x+w))
	ny := math.Max(y, math.Min(cy, y+h))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}
