package geometry

import (
	"testing"

	"pgregory.net/rapid"
)

func genPosition(t *rapid.T, label string) Position {
	return Position{
		X: rapid.Float64Range(-500, 500).Draw(t, label+"_x"),
		Y: rapid.Float64Range(-500, 500).Draw(t, label+"_y"),
		W: rapid.Float64Range(0.01, 200).Draw(t, label+"_w"),
		H: rapid.Float64Range(0.01, 200).Draw(t, label+"_h"),
	}
}

// TestPropertyUnionIsCommutativeAndEnclosing checks that Union of two
// non-zero positions doesn't depend on argument order and always encloses
// both operands.
func TestPropertyUnionIsCommutativeAndEnclosing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genPosition(t, "a")
		b := genPosition(t, "b")

		ab := Union(a, b)
		ba := Union(b, a)
		if ab != ba {
			t.Fatalf("Union not commutative: Union(a,b)=%v, Union(b,a)=%v", ab, ba)
		}
		if !ab.Contains(a) {
			t.Fatalf("Union(a,b)=%v does not contain a=%v", ab, a)
		}
		if !ab.Contains(b) {
			t.Fatalf("Union(a,b)=%v does not contain b=%v", ab, b)
		}
	})
}

// TestPropertyUnionZeroIsIdentity checks that the zero Position acts as an
// identity element for Union, the invariant UnionAll's fold relies on.
func TestPropertyUnionZeroIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genPosition(t, "a")
		var zero Position

		if got := Union(a, zero); got != a {
			t.Fatalf("Union(a, zero) = %v, want %v", got, a)
		}
		if got := Union(zero, a); got != a {
			t.Fatalf("Union(zero, a) = %v, want %v", got, a)
		}
	})
}

// TestPropertyOverlapsIsSymmetric checks that Overlaps doesn't depend on
// which position is the receiver.
func TestPropertyOverlapsIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genPosition(t, "a")
		b := genPosition(t, "b")

		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatalf("Overlaps not symmetric for a=%v b=%v", a, b)
		}
	})
}

// TestPropertyPadGrowsWithoutMovingCenter checks that Pad expands a
// position symmetrically, leaving its center fixed.
func TestPropertyPadGrowsWithoutMovingCenter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genPosition(t, "a")
		amt := rapid.Float64Range(0, 100).Draw(t, "amt")

		padded := a.Pad(amt)
		if padded.W < a.W || padded.H < a.H {
			t.Fatalf("Pad(%v) = %v shrank the position", amt, padded)
		}
		ac, pc := a.Center(), padded.Center()
		if diff := ac.X - pc.X; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("Pad moved the center's X: %v vs %v", ac, pc)
		}
		if diff := ac.Y - pc.Y; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("Pad moved the center's Y: %v vs %v", ac, pc)
		}
	})
}
