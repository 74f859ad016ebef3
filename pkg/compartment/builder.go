package compartment

import (
	"github.com/bioreact/rxnlayout/pkg/model"
)

// DAG is the master "surrounded_by" relation: DAG[a] lists every
// compartment that a is directly surrounded by. A node with no outgoing
// edges is a DAG root (e.g. the extracellular region).
type DAG map[string][]string

// Names maps a compartment accession to its display name. Accessions absent
// from Names keep an empty display name.
type Names map[string]string

// path is a sequence of accessions from a present member up to a DAG root,
// nearest-member-first.
type path []string

// Build produces the minimal tree spanning present, per spec §4.1:
//
//  1. For every accession in present, enumerate all paths to a DAG root.
//  2. Select, per accession, the path maximizing the count of other
//     present-members it passes through (ties broken by shorter length).
//  3. Merge the selected paths into one tree, sharing nodes by accession.
//  4. Strip "upper" single-child compartments not themselves present: the
//     deepest such ancestor becomes the new root.
//
// present accessions absent from dag are silently dropped (spec §4.1
// Failure). An empty present set yields a single synthetic extracellular
// node. Build never returns an error: it is total.
func Build(present []string, dag DAG, names Names) *model.Compartment {
	known := make([]string, 0, len(present))
	for _, a := range present {
		if _, ok := dag[a]; ok || hasAnyEdge(dag, a) {
			known = append(known, a)
		}
	}

	if len(known) == 0 {
		return syntheticExtracellular(names)
	}

	presentSet := make(map[string]bool, len(known))
	for _, a := range known {
		presentSet[a] = true
	}

	nodes := make(map[string]*model.Compartment)
	getNode := func(acc string) *model.Compartment {
		if n, ok := nodes[acc]; ok {
			return n
		}
		n := &model.Compartment{Accession: acc, Name: names[acc]}
		nodes[acc] = n
		return n
	}

	// Merge the best path for every present accession into a parent-pointer
	// map; child -> chosen parent accession.
	parentOf := make(map[string]string)
	for _, a := range known {
		best := bestPath(a, dag, presentSet)
		for i := 0; i < len(best)-1; i++ {
			child, parent := best[i], best[i+1]
			if _, already := parentOf[child]; !already {
				parentOf[child] = parent
			}
		}
	}

	// Wire children: every accession that appears as a key or a value in
	// parentOf becomes a tree node.
	for child, parent := range parentOf {
		c := getNode(child)
		p := getNode(parent)
		if c.Parent == nil {
			p.AddChild(c)
		}
	}

	// The tree root is any node with no recorded parent.
	var root *model.Compartment
	for acc, n := range nodes {
		if _, hasParent := parentOf[acc]; !hasParent {
			root = n
			break
		}
	}
	if root == nil {
		// Every known accession had itself as its own best path (single
		// node, no edges reachable) — use the first present accession.
		root = getNode(known[0])
	}

	root = stripUpperChain(root, presentSet)

	sentinel := &model.Compartment{Accession: model.ExtracellularAccession, Name: names[model.ExtracellularAccession]}
	if root.Accession != model.ExtracellularAccession {
		sentinel.AddChild(root)
	} else {
		sentinel = root
	}
	return sentinel
}

// bestPath enumerates every path from acc to a DAG root and returns the one
// maximizing the count of other present-members it passes through, with
// ties broken by shorter path length (spec §4.1 rule 1).
func bestPath(acc string, dag DAG, present map[string]bool) path {
	all := enumeratePaths(acc, dag, make(map[string]bool))
	if len(all) == 0 {
		return path{acc}
	}

	var best path
	bestScore := -1
	for _, p := range all {
		score := 0
		for _, node := range p[1:] { // don't count acc itself
			if present[node] {
				score++
			}
		}
		if best == nil || score > bestScore || (score == bestScore && len(p) < len(best)) {
			best = p
			bestScore = score
		}
	}
	return best
}

// enumeratePaths returns every simple path from acc to a DAG root
// (a node with no outgoing surrounded_by edges), depth-first. visiting
// guards against cycles in a malformed DAG (the spec assumes a DAG, but the
// builder stays total even if given one with an accidental cycle).
func enumeratePaths(acc string, dag DAG, visiting map[string]bool) []path {
	if visiting[acc] {
		return nil
	}
	visiting[acc] = true
	defer delete(visiting, acc)

	parents := dag[acc]
	if len(parents) == 0 {
		return []path{{acc}}
	}

	var results []path
	for _, parent := range parents {
		for _, sub := range enumeratePaths(parent, dag, visiting) {
			results = append(results, append(path{acc}, sub...))
		}
	}
	if len(results) == 0 {
		// every parent was mid-cycle; treat acc as its own root
		results = []path{{acc}}
	}
	return results
}

// hasAnyEdge reports whether acc appears anywhere in dag, either as a key or
// as a value, i.e. whether the ontology knows about it at all.
func hasAnyEdge(dag DAG, acc string) bool {
	if _, ok := dag[acc]; ok {
		return true
	}
	for _, parents := range dag {
		for _, p := range parents {
			if p == acc {
				return true
			}
		}
	}
	return false
}

// stripUpperChain removes "upper" compartments per spec §4.1: starting at
// the tree root, while the root has exactly one child and is not itself a
// present member, descend. The deepest such node becomes the new root.
func stripUpperChain(root *model.Compartment, present map[string]bool) *model.Compartment {
	cur := root
	for len(cur.Children) == 1 && !present[cur.Accession] {
		cur.Children[0].Parent = nil
		cur = cur.Children[0]
	}
	return cur
}

// syntheticExtracellular builds the single-node tree used when no known
// compartment accessions are present (spec §4.1 Failure).
func syntheticExtracellular(names Names) *model.Compartment {
	return &model.Compartment{
		Accession: model.ExtracellularAccession,
		Name:      names[model.ExtracellularAccession],
	}
}
