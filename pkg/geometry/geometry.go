package geometry

import "math"

// Point is a position in pixel space. Y grows downwards like on screen.
type Point struct {
	X, Y float64
}

// Vec is a displacement or velocity in pixel space.
type Vec struct {
	X, Y float64
}

// Add moves the point by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector pointing from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceToSegment returns the distance from p to the closest point of the
// segment a-b.
func (p Point) DistanceToSegment(a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.DistanceTo(a)
	}
	ap := p.Sub(a)
	t := Clamp((ap.X*ab.X+ap.Y*ab.Y)/l2, 0, 1)
	return p.DistanceTo(a.Add(ab.Scale(t)))
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Unit returns v scaled to length 1. The zero vector stays zero.
func (v Vec) Unit() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Angle returns atan2(y, x) in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// Rect is an axis aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAt builds a rectangle of the given size at p.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rect) Max() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H}
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether the two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether p lies inside r (min edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ClampInside returns the top-left position closest to p such that a
// rectangle of the given size stays fully inside bounds.
func ClampInside(p Point, s Size, bounds Size) Point {
	return Point{
		X: Clamp(p.X, 0, bounds.W-s.W),
		Y: Clamp(p.Y, 0, bounds.H-s.H),
	}
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
