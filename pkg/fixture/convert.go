package fixture

import (
	"fmt"
	"strings"

	"github.com/bioreact/rxnlayout/pkg/model"
)

func (r ReactionDoc) toModel() (*model.Reaction, error) {
	shape, err := parseShape(r.Shape)
	if err != nil {
		return nil, err
	}
	reaction := &model.Reaction{
		ID:            r.ID,
		Name:          r.Name,
		Shape:         shape,
		CompartmentID: r.CompartmentID,
	}
	if err := reaction.Validate(); err != nil {
		return nil, err
	}
	return reaction, nil
}

func (e EntityDoc) toModel() (*model.Entity, error) {
	class, err := parseClass(e.Class)
	if err != nil {
		return nil, err
	}
	roles := make([]model.Role, 0, len(e.Roles))
	for _, rd := range e.Roles {
		rt, err := parseRoleType(rd.Type)
		if err != nil {
			return nil, err
		}
		roles = append(roles, model.Role{Type: rt, Stoichiometry: rd.Stoichiometry})
	}
	attachments := make([]model.Attachment, 0, len(e.Attachments))
	for _, ad := range e.Attachments {
		attachments = append(attachments, model.Attachment{ID: ad.ID, Name: ad.Name, Label: ad.Label})
	}

	entity := &model.Entity{
		ID:            e.ID,
		Name:          e.Name,
		Class:         class,
		Roles:         roles,
		Attachments:   attachments,
		CompartmentID: e.CompartmentID,
		Flags: model.Flags{
			Trivial: e.Trivial,
			Crossed: e.Crossed,
			Dashed:  e.Dashed,
			Drug:    e.Drug,
			Disease: e.Disease,
		},
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	return entity, nil
}

var shapesByName = map[string]model.ShapeClass{
	"transition":   model.ShapeTransition,
	"binding":      model.ShapeBinding,
	"dissociation": model.ShapeDissociation,
	"omitted":      model.ShapeOmitted,
	"uncertain":    model.ShapeUncertain,
}

func parseShape(s string) (model.ShapeClass, error) {
	if s == "" {
		return model.ShapeTransition, nil
	}
	shape, ok := shapesByName[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown reaction shape %q", s)
	}
	return shape, nil
}

var classesByName = map[string]model.RenderableClass{
	"protein":           model.ClassProtein,
	"complex":           model.ClassComplex,
	"chemical":          model.ClassChemical,
	"set":               model.ClassSet,
	"gene":              model.ClassGene,
	"entity":            model.ClassEntity,
	"rna":               model.ClassRNA,
	"drug":              model.ClassDrug,
	"process_node":      model.ClassProcessNode,
	"encapsulated_node": model.ClassEncapsulatedNode,
	"attachment":        model.ClassAttachment,
}

func parseClass(s string) (model.RenderableClass, error) {
	class, ok := classesByName[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown entity class %q", s)
	}
	return class, nil
}

var roleTypesByName = map[string]model.RoleType{
	"input":              model.Input,
	"output":             model.Output,
	"catalyst":           model.Catalyst,
	"positive_regulator": model.PositiveRegulator,
	"negative_regulator": model.NegativeRegulator,
}

func parseRoleType(s string) (model.RoleType, error) {
	rt, ok := roleTypesByName[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown role type %q", s)
	}
	return rt, nil
}
