// Package index builds a read-only partition of an entity collection by
// role (inputs, outputs, catalysts, positive and negative regulators),
// queried repeatedly by placement and routing without re-scanning the
// entity list each time.
package index
