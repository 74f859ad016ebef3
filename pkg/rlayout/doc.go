// Package rlayout is the top-level entry point: it wires the duplication,
// indexing, compartment-tree, placement, routing, and sizing stages into a
// single Compute call and defines the Config governing that pipeline.
package rlayout
