package geometry

import "testing"

func TestChainAndConnected(t *testing.T) {
	pts := []Coordinate{{0, 0}, {10, 0}, {10, 10}}
	segs := Chain(pts...)
	if len(segs) != 2 {
		t.Fatalf("Chain produced %d segments, want 2", len(segs))
	}
	if !SegmentsConnected(segs) {
		t.Fatalf("expected chained segments to be connected")
	}
}

func TestSegmentsConnectedDetectsGap(t *testing.T) {
	segs := []Segment{
		NewSegment(0, 0, 10, 0),
		NewSegment(11, 0, 11, 10),
	}
	if SegmentsConnected(segs) {
		t.Fatalf("expected a gap to be detected")
	}
}

func TestMidpoint(t *testing.T) {
	s := NewSegment(0, 0, 10, 20)
	m := s.Midpoint()
	if m.X != 5 || m.Y != 10 {
		t.Fatalf("Midpoint() = %+v, want (5,10)", m)
	}
}

func TestBoundsOf(t *testing.T) {
	segs := []Segment{
		NewSegment(0, 0, 10, 0),
		NewSegment(10, 0, 10, -5),
	}
	b := BoundsOf(segs)
	want := Position{X: 0, Y: -5, W: 10, H: 5}
	if b != want {
		t.Fatalf("BoundsOf = %+v, want %+v", b, want)
	}
}
