package world

import (
	"fmt"

	"github.com/mpihlak/goracer/pkg/geometry"
)

// Arena is the track together with its checkpoints.
type Arena struct {
	Track       *Track
	Checkpoints Checkpoints
}

// NewArena generates a ring track and places its four corner checkpoints.
func NewArena(cols, rows, thickness int, tileSize float64) (*Arena, error) {
	track, err := GenerateRing(cols, rows, thickness, tileSize)
	if err != nil {
		return nil, fmt.Errorf("generate arena: %w", err)
	}
	return &Arena{
		Track:       track,
		Checkpoints: RingCheckpoints(cols, rows, thickness),
	}, nil
}

// Collision describes a visible checkpoint overlapped by a car.
type Collision struct {
	Index      int
	Checkpoint Checkpoint
}

// CheckCollisions returns every visible checkpoint whose pixel rectangle
// overlaps the given car rectangle.
func (a *Arena) CheckCollisions(car geometry.Rect) []Collision {
	var collisions []Collision
	for i, cp := range a.Checkpoints {
		if !cp.Visible {
			continue
		}
		if car.Overlaps(cp.Rect(a.Track.TileSize)) {
			collisions = append(collisions, Collision{Index: i, Checkpoint: cp})
		}
	}
	return collisions
}

// Waypoints are the checkpoint centres in visiting order.
func (a *Arena) Waypoints() []geometry.Point {
	return a.Checkpoints.Centers(a.Track.TileSize)
}
