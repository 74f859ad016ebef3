package router

import (
	"math"
	"testing"

	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/index"
	"github.com/bioreact/rxnlayout/pkg/model"
)

func rxn() *model.Reaction {
	r := &model.Reaction{ID: "r1", Position: geometry.Position{X: 200, Y: 200, W: 20, H: 20}}
	r.ComputeBackbone()
	return r
}

func TestRouteInputConnectorIsContiguous(t *testing.T) {
	e := &model.Entity{
		ID:       "a",
		Position: geometry.Position{X: 0, Y: 190, W: 40, H: 40},
		Roles:    []model.Role{{Type: model.Input, Stoichiometry: 1}},
	}
	idx := index.Build([]*model.Entity{e})
	Route(rxn(), idx)

	if e.Connector == nil {
		t.Fatalf("expected connector to be assigned")
	}
	if err := e.Connector.Validate(); err != nil {
		t.Fatalf("connector invalid: %v", err)
	}
	if e.Connector.Pointer != model.PointerInput {
		t.Fatalf("expected PointerInput, got %v", e.Connector.Pointer)
	}
}

func TestRouteOutputConnectorEndsAtRightPort(t *testing.T) {
	r := rxn()
	e := &model.Entity{
		ID:       "b",
		Position: geometry.Position{X: 400, Y: 190, W: 40, H: 40},
		Roles:    []model.Role{{Type: model.Output, Stoichiometry: 1}},
	}
	idx := index.Build([]*model.Entity{e})
	Route(r, idx)

	end := e.Connector.EndPoint()
	if math.Abs(end.X-e.Position.MinX()) > 1e-9 {
		t.Fatalf("expected output connector to terminate at entity left edge, got %v want %v", end.X, e.Position.MinX())
	}
}

func TestRouteOutputCorridorIncludesArrowClearance(t *testing.T) {
	r := rxn()
	e := &model.Entity{
		ID:       "b2",
		Position: geometry.Position{X: 400, Y: 190, W: 40, H: 40},
		Roles:    []model.Role{{Type: model.Output, Stoichiometry: 1}},
	}
	idx := index.Build([]*model.Entity{e})
	Route(r, idx)

	wantVRule := e.Position.MinX() - corridorMargin - outputArrowSize
	bend := e.Connector.Segments[0].To
	if math.Abs(bend.X-wantVRule) > 1e-9 {
		t.Fatalf("expected output corridor bend at x=%v (minX - corridorMargin - outputArrowSize), got %v", wantVRule, bend.X)
	}
}

func TestRouteBiRoleCatalystHookProducesFiveSegments(t *testing.T) {
	r := rxn()
	e := &model.Entity{
		ID:       "c",
		Position: geometry.Position{X: 0, Y: 190, W: 40, H: 40},
		Roles:    []model.Role{{Type: model.Input, Stoichiometry: 1}, {Type: model.Catalyst, Stoichiometry: 1}},
	}
	idx := index.Build([]*model.Entity{e})
	Route(r, idx)

	if len(e.Connector.Segments) != 5 {
		t.Fatalf("expected 5-segment bi-role hook connector, got %d", len(e.Connector.Segments))
	}
	if err := e.Connector.Validate(); err != nil {
		t.Fatalf("connector invalid: %v", err)
	}
}

func TestRouteRegulatorsFanOutOnSemicircle(t *testing.T) {
	r := rxn()
	reg1 := &model.Entity{ID: "p1", Position: geometry.Position{X: 150, Y: 300, W: 40, H: 20}, Roles: []model.Role{{Type: model.PositiveRegulator, Stoichiometry: 1}}}
	reg2 := &model.Entity{ID: "p2", Position: geometry.Position{X: 250, Y: 300, W: 40, H: 20}, Roles: []model.Role{{Type: model.PositiveRegulator, Stoichiometry: 1}}}
	idx := index.Build([]*model.Entity{reg1, reg2})
	Route(r, idx)

	for _, e := range []*model.Entity{reg1, reg2} {
		if e.Connector == nil || len(e.Connector.Segments) != 1 {
			t.Fatalf("expected a single-segment regulator connector for %s", e.ID)
		}
		if e.Connector.Pointer != model.PointerActivator {
			t.Fatalf("expected PointerActivator, got %v", e.Connector.Pointer)
		}
	}
	a1 := reg1.Connector.EndPoint()
	a2 := reg2.Connector.EndPoint()
	if a1 == a2 {
		t.Fatalf("expected distinct fan-out attachment points for the two regulators")
	}
}

func TestRouteSevenRegulatorsMatchSemicircleFormula(t *testing.T) {
	r := rxn()
	var regulators []*model.Entity
	for i := 0; i < 7; i++ {
		regulators = append(regulators, &model.Entity{
			ID:       string(rune('a' + i)),
			Position: geometry.Position{X: 100 + float64(i)*50, Y: 300, W: 30, H: 20},
			Roles:    []model.Role{{Type: model.NegativeRegulator, Stoichiometry: 1}},
		})
	}
	idx := index.Build(regulators)
	Route(r, idx)

	center := r.Position.Center()
	wantRadius := r.Position.H/2 + regulatorArcMargin*8/math.Pi
	for i, e := range regulators {
		if e.Connector.Pointer != model.PointerInhibitor {
			t.Fatalf("expected PointerInhibitor for regulator %d, got %v", i, e.Connector.Pointer)
		}
		attach := e.Connector.EndPoint()
		wantAngle := math.Pi * float64(i+1) / 8
		wantX := center.X - wantRadius*math.Cos(wantAngle)
		wantY := center.Y + wantRadius*math.Sin(wantAngle)
		if math.Abs(attach.X-wantX) > 1e-9 || math.Abs(attach.Y-wantY) > 1e-9 {
			t.Fatalf("regulator %d: expected attach point (%v,%v), got (%v,%v)", i, wantX, wantY, attach.X, attach.Y)
		}
	}

	leftmost := regulators[0].Connector.EndPoint()
	rightmost := regulators[len(regulators)-1].Connector.EndPoint()
	if leftmost.X >= rightmost.X {
		t.Fatalf("expected the leftmost regulator (sorted by center_x) to attach left of the rightmost, got leftmost.X=%v rightmost.X=%v", leftmost.X, rightmost.X)
	}
}

func TestStoichiometryBadgeOmittedWhenCountIsOne(t *testing.T) {
	r := rxn()
	e := &model.Entity{
		ID:       "d",
		Position: geometry.Position{X: 0, Y: 190, W: 40, H: 40},
		Roles:    []model.Role{{Type: model.Input, Stoichiometry: 1}},
	}
	idx := index.Build([]*model.Entity{e})
	Route(r, idx)

	if e.Connector.Stoichiometry != nil {
		t.Fatalf("expected no stoichiometry badge for count 1")
	}
}

func TestStoichiometryBadgeAttachedWhenCountAboveOne(t *testing.T) {
	r := rxn()
	e := &model.Entity{
		ID:       "e",
		Position: geometry.Position{X: 0, Y: 190, W: 40, H: 40},
		Roles:    []model.Role{{Type: model.Input, Stoichiometry: 2}},
	}
	idx := index.Build([]*model.Entity{e})
	Route(r, idx)

	if e.Connector.Stoichiometry == nil {
		t.Fatalf("expected a stoichiometry badge for count 2")
	}
	if e.Connector.Stoichiometry.Count != 2 {
		t.Fatalf("expected badge count 2, got %d", e.Connector.Stoichiometry.Count)
	}
	if e.Connector.Stoichiometry.Position.W != badgeSize || e.Connector.Stoichiometry.Position.H != badgeSize {
		t.Fatalf("expected a %vx%v badge box", badgeSize, badgeSize)
	}
}
