package objects

import "github.com/mpihlak/goracer/pkg/geometry"

const (
	// AISpeedFactor scales the player's top speed for the AI car.
	AISpeedFactor = 0.9
	// WaypointReach is the distance at which a waypoint counts as reached.
	WaypointReach = 2.0
)

// Steering produces the target velocity of a car for the current frame.
type Steering interface {
	Steer(c *Car) geometry.Vec
}

// MoveObserver is told where the car centre went after each update.
type MoveObserver interface {
	Moved(from, to geometry.Point)
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	return [...]string{"up", "down", "left", "right"}[d]
}

// Controls is the held state of the four logical directions.
type Controls struct {
	Up, Down, Left, Right bool
}

func (c *Controls) Set(d Direction, active bool) {
	switch d {
	case Up:
		c.Up = active
	case Down:
		c.Down = active
	case Left:
		c.Left = active
	case Right:
		c.Right = active
	}
}

// Axes maps the held directions to a vector with components in {-1, 0, 1}.
func (c Controls) Axes() geometry.Vec {
	var v geometry.Vec
	if c.Left {
		v.X--
	}
	if c.Right {
		v.X++
	}
	if c.Up {
		v.Y--
	}
	if c.Down {
		v.Y++
	}
	return v
}

// InputSteering drives the car directly from the held directions, without
// acceleration.
type InputSteering struct {
	Controls Controls
	TopSpeed float64
}

func (s *InputSteering) Steer(_ *Car) geometry.Vec {
	return s.Controls.Axes().Scale(s.TopSpeed)
}

// WaypointSteering chases the waypoints in order and counts laps. A lap is
// complete when the index wraps back to the first waypoint.
type WaypointSteering struct {
	Waypoints []geometry.Point
	Speed     float64
	Index     int // current target
	Visited   int // waypoints reached in the current lap
	Laps      int
}

// NewWaypointSteering returns the AI steering: the player's top speed scaled
// by AISpeedFactor.
func NewWaypointSteering(waypoints []geometry.Point, topSpeed float64) *WaypointSteering {
	return &WaypointSteering{
		Waypoints: waypoints,
		Speed:     topSpeed * AISpeedFactor,
	}
}

func (s *WaypointSteering) Target() geometry.Point {
	return s.Waypoints[s.Index]
}

func (s *WaypointSteering) Steer(c *Car) geometry.Vec {
	if len(s.Waypoints) == 0 {
		return geometry.Vec{}
	}
	center := c.Center()
	if center.DistanceTo(s.Target()) < WaypointReach {
		s.advance()
	}
	return s.Target().Sub(center).Unit().Scale(s.Speed)
}

// Moved advances when the path of the last move passes within
// WaypointReach of the target.
func (s *WaypointSteering) Moved(from, to geometry.Point) {
	if len(s.Waypoints) == 0 {
		return
	}
	if s.Target().DistanceToSegment(from, to) < WaypointReach {
		s.advance()
	}
}

func (s *WaypointSteering) advance() {
	s.Index = (s.Index + 1) % len(s.Waypoints)
	s.Visited++
	if s.Index == 0 {
		s.Laps++
		s.Visited = 0
	}
}
