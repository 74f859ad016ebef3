// Package router synthesizes the orthogonal connector segments tying every
// entity glyph to the reaction shape (spec §4.4): input and output rules
// sharing a common vertical alignment corridor, catalyst rules sharing a
// common horizontal corridor, regulators fanned out on a semicircle around
// the reaction, the gene arrow-head jog, the bi-role catalyst hook, and
// stoichiometry badges.
package router
