// Package fixture loads a reaction diagram's input data from YAML, the way
// the teacher's pkg/themes loads theme packs: a flat, yaml-tagged document
// type parsed with gopkg.in/yaml.v3, then converted into the engine's
// domain types.
package fixture
