package objects

import (
	"github.com/mpihlak/goracer/pkg/game/world"
	"github.com/mpihlak/goracer/pkg/geometry"
	"github.com/mpihlak/goracer/pkg/traction"
)

const (
	maxTrailPoints = 50
	trailInterval  = 0.2 // seconds of simulated time
)

// Car is a kinematic actor. Player and AI cars differ only in the Steering
// passed to Update.
type Car struct {
	Pos         geometry.Point // top-left corner
	Vel         geometry.Vec   // pixels per second
	Size        geometry.Size
	Heading     float64 // radians, atan2 of the velocity; 0 when stopped
	LastHeading float64 // heading of the last non-zero velocity
	Trail       []geometry.Point
	sinceTrail  float64
}

func NewCar(pos geometry.Point, size geometry.Size) *Car {
	return &Car{Pos: pos, Size: size}
}

func (c *Car) Rect() geometry.Rect {
	return geometry.RectAt(c.Pos, c.Size)
}

func (c *Car) Center() geometry.Point {
	return c.Rect().Center()
}

func (c *Car) Speed() float64 {
	return c.Vel.Len()
}

// Update advances the car by dt seconds: steer, apply the grip of the tile
// under the car centre, integrate and clamp inside bounds. Steering that
// implements MoveObserver sees the centre move.
func (c *Car) Update(dt float64, steering Steering, surface world.Surface, grip traction.Grip, bounds geometry.Size) {
	if dt < 0 {
		dt = 0
	}

	from := c.Center()
	vel := steering.Steer(c)
	vel = vel.Scale(grip.Multiplier(surface.TileAt(c.Center())))
	c.Vel = vel

	c.Pos = geometry.ClampInside(c.Pos.Add(vel.Scale(dt)), c.Size, bounds)
	if mo, ok := steering.(MoveObserver); ok {
		mo.Moved(from, c.Center())
	}

	c.Heading = vel.Angle()
	if !vel.IsZero() {
		c.LastHeading = c.Heading
	}

	c.sinceTrail += dt
	if c.sinceTrail >= trailInterval {
		c.sinceTrail = 0
		c.Trail = append(c.Trail, c.Center())
		if len(c.Trail) > maxTrailPoints {
			c.Trail = c.Trail[1:]
		}
	}
}
