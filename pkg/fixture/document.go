package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bioreact/rxnlayout/pkg/compartment"
	"github.com/bioreact/rxnlayout/pkg/model"
	"github.com/bioreact/rxnlayout/pkg/rlayout"
)

// Document is the YAML-facing shape of a reaction diagram's input: a
// reaction, its participating entities, and the compartment ontology
// fragment they sit in.
type Document struct {
	Reaction     ReactionDoc      `yaml:"reaction" json:"reaction"`
	Entities     []EntityDoc      `yaml:"entities" json:"entities"`
	Compartments []CompartmentDoc `yaml:"compartments" json:"compartments"`
}

// ReactionDoc is the YAML shape of a Reaction.
type ReactionDoc struct {
	ID            string `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	Shape         string `yaml:"shape" json:"shape"`
	CompartmentID string `yaml:"compartment_id" json:"compartment_id"`
}

// RoleDoc is the YAML shape of a Role.
type RoleDoc struct {
	Type          string `yaml:"type" json:"type"`
	Stoichiometry int    `yaml:"stoichiometry" json:"stoichiometry"`
}

// AttachmentDoc is the YAML shape of an Attachment.
type AttachmentDoc struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label" json:"label"`
}

// EntityDoc is the YAML shape of an Entity.
type EntityDoc struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	Class         string          `yaml:"class" json:"class"`
	CompartmentID string          `yaml:"compartment_id" json:"compartment_id"`
	Roles         []RoleDoc       `yaml:"roles" json:"roles"`
	Attachments   []AttachmentDoc `yaml:"attachments,omitempty" json:"attachments,omitempty"`
	Trivial       bool            `yaml:"trivial,omitempty" json:"trivial,omitempty"`
	Crossed       bool            `yaml:"crossed,omitempty" json:"crossed,omitempty"`
	Dashed        bool            `yaml:"dashed,omitempty" json:"dashed,omitempty"`
	Drug          bool            `yaml:"drug,omitempty" json:"drug,omitempty"`
	Disease       bool            `yaml:"disease,omitempty" json:"disease,omitempty"`
}

// CompartmentDoc is the YAML shape of one compartment-tree fragment: its
// accession, display name, and the compartments it is directly
// surrounded_by (spec §4.1).
type CompartmentDoc struct {
	Accession    string   `yaml:"accession" json:"accession"`
	Name         string   `yaml:"name" json:"name"`
	SurroundedBy []string `yaml:"surrounded_by,omitempty" json:"surrounded_by,omitempty"`
}

// Load reads and parses a Document from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a Document from YAML bytes.
func LoadFromBytes(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing fixture YAML: %w", err)
	}
	return &doc, nil
}

// ToInput converts the document into an rlayout.Input ready for Compute.
func (d *Document) ToInput() (rlayout.Input, error) {
	reaction, err := d.Reaction.toModel()
	if err != nil {
		return rlayout.Input{}, fmt.Errorf("reaction: %w", err)
	}

	entities := make([]*model.Entity, 0, len(d.Entities))
	for _, ed := range d.Entities {
		e, err := ed.toModel()
		if err != nil {
			return rlayout.Input{}, fmt.Errorf("entity %s: %w", ed.ID, err)
		}
		entities = append(entities, e)
	}

	present := make([]string, 0, len(d.Compartments))
	dag := compartment.DAG{}
	names := compartment.Names{}
	for _, cd := range d.Compartments {
		present = append(present, cd.Accession)
		dag[cd.Accession] = cd.SurroundedBy
		names[cd.Accession] = cd.Name
	}
	names[model.ExtracellularAccession] = "extracellular region"

	return rlayout.Input{
		Reaction:           reaction,
		Entities:           entities,
		CompartmentPresent: present,
		CompartmentDAG:     dag,
		CompartmentNames:   names,
	}, nil
}
