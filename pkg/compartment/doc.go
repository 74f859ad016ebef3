// Package compartment builds the minimal surrounding-tree spanning a set of
// cellular-compartment accessions out of a larger "surrounded_by" DAG
// (spec §4.1). It is total: unknown accessions are dropped, and an input set
// that is empty (or entirely unknown) yields a synthetic extracellular-only
// tree instead of failing.
package compartment
