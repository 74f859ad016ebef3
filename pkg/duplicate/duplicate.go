package duplicate

import (
	"github.com/bioreact/rxnlayout/pkg/model"
)

// idSuffix is appended to an original entity's ID to name the glyph peeled
// off it, making duplication deterministic without needing caller-supplied
// ID generation.
const idSuffix = "__dup"

// Split applies the entity-duplication pass to entities, returning a new
// slice (the input is left untouched) in which every entity with one of the
// three conflicting role-type combinations named in spec §4.2 has been
// split into two glyphs:
//
//   - {INPUT, OUTPUT}                      -> one glyph per role
//   - {CATALYST, POSITIVE_REGULATOR}       -> one glyph per role
//   - {CATALYST, NEGATIVE_REGULATOR}       -> one glyph per role
//   - {CATALYST, +REG, -REG}               -> CATALYST peeled into a new
//     glyph; the original keeps both regulator roles
//
// All other role sets pass through unchanged. Split is idempotent: since
// every glyph it produces carries a role set outside the three trigger
// combinations above, applying Split again is a no-op.
func Split(entities []*model.Entity) []*model.Entity {
	out := make([]*model.Entity, 0, len(entities))
	for _, e := range entities {
		out = append(out, splitOne(e)...)
	}
	return out
}

func splitOne(e *model.Entity) []*model.Entity {
	types := e.RoleTypes()

	switch {
	case len(types) == 2 && types.Has(model.Input) && types.Has(model.Output):
		return peelRole(e, model.Output)

	case len(types) == 2 && types.Has(model.Catalyst) && types.Has(model.PositiveRegulator):
		return peelRole(e, model.PositiveRegulator)

	case len(types) == 2 && types.Has(model.Catalyst) && types.Has(model.NegativeRegulator):
		return peelRole(e, model.NegativeRegulator)

	case len(types) == 3 && types.Has(model.Catalyst) && types.Has(model.PositiveRegulator) && types.Has(model.NegativeRegulator):
		return peelRole(e, model.Catalyst)

	default:
		return []*model.Entity{e}
	}
}

// peelRole splits e into two new entities, leaving e itself unchanged: a
// copy of the original with role peeledType removed (same ID) and a copy
// carrying only peeledType (ID suffixed with idSuffix), both in the same
// compartment.
func peelRole(e *model.Entity, peeledType model.RoleType) []*model.Entity {
	var peeled, kept []model.Role
	for _, r := range e.Roles {
		if r.Type == peeledType {
			peeled = append(peeled, r)
		} else {
			kept = append(kept, r)
		}
	}

	original := *e
	original.Roles = kept
	original.Connector = nil

	copyEntity := *e
	copyEntity.ID = e.ID + idSuffix
	copyEntity.Roles = peeled
	copyEntity.Connector = nil
	copyEntity.Attachments = append([]model.Attachment(nil), e.Attachments...)

	return []*model.Entity{&original, &copyEntity}
}
