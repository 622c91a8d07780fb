// Package afa implements an alternating finite automaton core: the
// Node/Nodes algebra, antichain-represented closed sets, the
// forward/inverse transition store, and the post/pre predicate
// transformers and emptiness engine built on top of them.
package afa

import (
	"sort"

	"github.com/samo538/mata/core/util/automaton"
	"github.com/samo538/mata/core/util/ordset"
)

// Node is a conjunctive configuration: an ordered, deduplicated set of
// states all required to be reached simultaneously. Subset/superset
// tests use the merge comparison ordset.Vector already provides.
type Node = ordset.Vector[automaton.State]

// compareNodes orders two Node values lexicographically over their
// sorted state sequences, shortest-prefix-first. Used only to keep
// Nodes sorted and deduplicated; it carries no automaton semantics.
func compareNodes(a, b Node) int {
	ai, bi := a.Items(), b.Items()
	for i := 0; i < len(ai) && i < len(bi); i++ {
		if ai[i] != bi[i] {
			if ai[i] < bi[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ai) < len(bi):
		return -1
	case len(ai) > len(bi):
		return 1
	default:
		return 0
	}
}

// Nodes is a disjunctive set of Node values, kept sorted and
// deduplicated so membership and insertion are a single binary search.
type Nodes []Node

func (ns Nodes) find(n Node) int {
	return sort.Search(len(ns), func(i int) bool { return compareNodes(ns[i], n) >= 0 })
}

// Contains reports whether n is already present in ns.
func (ns Nodes) Contains(n Node) bool {
	i := ns.find(n)
	return i < len(ns) && compareNodes(ns[i], n) == 0
}

// Insert adds n to ns if not already present, preserving sort order,
// and reports whether n was newly added.
func (ns *Nodes) Insert(n Node) bool {
	i := ns.find(n)
	if i < len(*ns) && compareNodes((*ns)[i], n) == 0 {
		return false
	}
	*ns = append(*ns, Node{})
	copy((*ns)[i+1:], (*ns)[i:])
	(*ns)[i] = n
	return true
}

// Len reports the number of distinct Node values in ns.
func (ns Nodes) Len() int { return len(ns) }

// singleton builds a Node containing exactly one state.
func singleton(s automaton.State) Node {
	var n Node
	n.Insert(s)
	return n
}
