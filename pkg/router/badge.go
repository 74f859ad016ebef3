package router

import (
	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/model"
)

// badgeSize is the fixed dimension of the stoichiometry badge box.
const badgeSize = 12.0

// attachStoichiometryBadge attaches a 12x12 badge centered on the
// connector's first segment midpoint, for any role whose stoichiometry is
// not 1. An entity with multiple roles uses its primary (grid-determining)
// role's stoichiometry, matching the role the connector itself expresses.
func attachStoichiometryBadge(e *model.Entity) {
	if e.Connector == nil || len(e.Connector.Segments) == 0 {
		return
	}
	role, ok := connectorRole(e)
	if !ok || role.Stoichiometry == 1 {
		return
	}
	anchor := e.Connector.Segments[0].Midpoint()
	e.Connector.Stoichiometry = &model.StoichiometryBadge{
		Count: role.Stoichiometry,
		Position: geometry.Position{
			X: anchor.X - badgeSize/2,
			Y: anchor.Y - badgeSize/2,
			W: badgeSize,
			H: badgeSize,
		},
	}
}

// connectorRole returns the role whose stoichiometry the entity's connector
// expresses, matching the pointer type the router assigned.
func connectorRole(e *model.Entity) (model.Role, bool) {
	switch e.Connector.Pointer {
	case model.PointerInput:
		return e.RoleOfType(model.Input)
	case model.PointerOutput:
		return e.RoleOfType(model.Output)
	case model.PointerCatalyst:
		return e.RoleOfType(model.Catalyst)
	case model.PointerActivator:
		return e.RoleOfType(model.PositiveRegulator)
	case model.PointerInhibitor:
		return e.RoleOfType(model.NegativeRegulator)
	default:
		return model.Role{}, false
	}
}
