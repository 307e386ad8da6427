package world

import (
	"github.com/samber/lo"

	"github.com/mpihlak/goracer/pkg/geometry"
)

// Checkpoint is a rectangular block of tiles. Visible means it still has to
// be collected in the current lap.
type Checkpoint struct {
	Row     int
	Col     int
	Width   int // in tiles
	Height  int // in tiles
	Visible bool
}

// Rect returns the checkpoint area in pixel space.
func (c Checkpoint) Rect(tileSize float64) geometry.Rect {
	return geometry.Rect{
		X: float64(c.Col) * tileSize,
		Y: float64(c.Row) * tileSize,
		W: float64(c.Width) * tileSize,
		H: float64(c.Height) * tileSize,
	}
}

func (c Checkpoint) Center(tileSize float64) geometry.Point {
	return c.Rect(tileSize).Center()
}

// Checkpoints is ordered: the order is the waypoint sequence the AI follows.
type Checkpoints []Checkpoint

// RingCheckpoints places one checkpoint on each corner block of a ring
// track, clockwise from the top-left corner.
func RingCheckpoints(cols, rows, thickness int) Checkpoints {
	far := func(n int) int { return n - thickness }
	return Checkpoints{
		{Row: 0, Col: 0, Width: thickness, Height: thickness, Visible: true},
		{Row: 0, Col: far(cols), Width: thickness, Height: thickness, Visible: true},
		{Row: far(rows), Col: far(cols), Width: thickness, Height: thickness, Visible: true},
		{Row: far(rows), Col: 0, Width: thickness, Height: thickness, Visible: true},
	}
}

// AllCollected reports whether no checkpoint is visible any more.
func (cs Checkpoints) AllCollected() bool {
	return len(cs) > 0 && lo.NoneBy(cs, func(c Checkpoint) bool { return c.Visible })
}

// Reset makes every checkpoint visible again.
func (cs Checkpoints) Reset() {
	for i := range cs {
		cs[i].Visible = true
	}
}

func (cs Checkpoints) VisibleCount() int {
	return lo.CountBy(cs, func(c Checkpoint) bool { return c.Visible })
}

// Centers returns the pixel centre of every checkpoint, in order.
func (cs Checkpoints) Centers(tileSize float64) []geometry.Point {
	return lo.Map(cs, func(c Checkpoint, _ int) geometry.Point {
		return c.Center(tileSize)
	})
}
