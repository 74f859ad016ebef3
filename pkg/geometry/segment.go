package geometry

import "math"

// Segment is a single straight line between two coordinates, the unit of
// which connector paths are built.
type Segment struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

// NewSegment builds a Segment from raw coordinate components.
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{From: Coordinate{X: x1, Y: y1}, To: Coordinate{X: x2, Y: y2}}
}

// Length returns the Euclidean length of the segment. For the router's
// horizontal and vertical segments this equals the Manhattan length;
// Euclidean is used so its diagonal segments (such as the regulator-arc
// approach segments) measure correctly too.
func (s Segment) Length() float64 {
	dx := s.To.X - s.From.X
	dy := s.To.Y - s.From.Y
	return math.Hypot(dx, dy)
}

// Midpoint returns the coordinate halfway between the segment's endpoints.
func (s Segment) Midpoint() Coordinate {
	return Coordinate{X: (s.From.X + s.To.X) / 2, Y: (s.From.Y + s.To.Y) / 2}
}

// IsHorizontal reports whether the segment runs along a single Y value.
func (s Segment) IsHorizontal() bool {
	return s.From.Y == s.To.Y
}

// IsVertical reports whether the segment runs along a single X value.
func (s Segment) IsVertical() bool {
	return s.From.X == s.To.X
}

// Bounds returns the axis-aligned Position enclosing the segment (with
// zero width or height where the segment is purely vertical or horizontal).
func (s Segment) Bounds() Position {
	minX := math.Min(s.From.X, s.To.X)
	maxX := math.Max(s.From.X, s.To.X)
	minY := math.Min(s.From.Y, s.To.Y)
	maxY := math.Max(s.From.Y, s.To.Y)
	return Position{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Chain joins adjacent coordinates into a sequence of segments, i.e.
// Chain(a,b,c) == []Segment{{a,b},{b,c}}. Useful for building a connector's
// path from an ordered list of waypoints.
func Chain(points ...Coordinate) []Segment {
	if len(points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		segs = append(segs, Segment{From: points[i], To: points[i+1]})
	}
	return segs
}

// SegmentsConnected reports whether each segment's end coincides with the
// next segment's start, the adjacency invariant required of a connector path
// (spec testable property 3).
func SegmentsConnected(segs []Segment) bool {
	for i := 0; i < len(segs)-1; i++ {
		if segs[i].To != segs[i+1].From {
			return false
		}
	}
	return true
}

// BoundsOf returns the Position enclosing every segment in segs.
func BoundsOf(segs []Segment) Position {
	var acc Position
	for _, s := range segs {
		acc = Union(acc, s.Bounds())
	}
	return acc
}
