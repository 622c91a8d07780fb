package afa

import "github.com/samo538/mata/core/util/automaton"

//***************************************************
//
// POST
//
// Forward predicate transformers.
//
//***************************************************

// PostState returns the upward-closed set reachable from state in one
// step on symb, or the empty closed set if (state, symb) has no stored
// transition.
func (a *Afa) PostState(state automaton.State, symb automaton.Symbol) ClosedSet {
	a.checkState(state)
	dst := a.rel.performTrans(state, symb)
	if len(dst) == 0 {
		return NewClosedSet(Upward, 0, a.maxState())
	}
	return NewClosedSet(Upward, 0, a.maxState(), dst...)
}

// PostNode returns the set of configurations reachable in one step on
// symb from every state of node, conjunctively: the intersection over
// every s in node of PostState(s, symb), since every state in a
// conjunctive configuration must fire. The empty node reaches only
// itself.
func (a *Afa) PostNode(node Node, symb automaton.Symbol) ClosedSet {
	if node.Empty() {
		result := NewClosedSet(Upward, 0, a.maxState())
		result.Insert(node)
		return result
	}
	states := node.Items()
	result := a.PostState(states[0], symb)
	for _, s := range states[1:] {
		result = result.Intersection(a.PostState(s, symb))
	}
	return result
}

// PostNodes returns the disjunctive union over every N in nodes of
// PostNode(N, symb).
func (a *Afa) PostNodes(nodes Nodes, symb automaton.Symbol) ClosedSet {
	result := NewClosedSet(Upward, 0, a.maxState())
	for _, n := range nodes {
		result.InsertAll(a.PostNode(n, symb).Antichain())
	}
	return result
}

// Post computes post(closedSet, symb); closedSet must be upward-closed.
func (a *Afa) Post(closedSet ClosedSet, symb automaton.Symbol) ClosedSet {
	assert2(closedSet.Direction == Upward, "afa: post requires an upward-closed set, got %v", closedSet.Direction)
	return a.PostNodes(closedSet.Antichain(), symb)
}

// PostNodeAnySymbol returns the union over every symbol appearing in
// min(node)'s move list of PostNode(node, symbol). Using min(node) as
// the representative is sound: any symbol with no move from min(node)
// contributes an empty intersection to PostNode regardless, so only
// min(node)'s own symbols need enumerating.
func (a *Afa) PostNodeAnySymbol(node Node) ClosedSet {
	if node.Empty() {
		result := NewClosedSet(Upward, 0, a.maxState())
		result.Insert(Node{})
		return result
	}
	result := NewClosedSet(Upward, 0, a.maxState())
	for symb := range a.rel.forward[node.Min()] {
		result.InsertAll(a.PostNode(node, symb).Antichain())
	}
	return result
}

// PostNodesAnySymbol lifts PostNodeAnySymbol over a disjunctive set.
func (a *Afa) PostNodesAnySymbol(nodes Nodes) ClosedSet {
	result := NewClosedSet(Upward, 0, a.maxState())
	for _, n := range nodes {
		result.InsertAll(a.PostNodeAnySymbol(n).Antichain())
	}
	return result
}

// PostAnySymbol computes post(closedSet) across the whole alphabet
// (used by the forward emptiness engines below).
func (a *Afa) PostAnySymbol(closedSet ClosedSet) ClosedSet {
	assert2(closedSet.Direction == Upward, "afa: post requires an upward-closed set, got %v", closedSet.Direction)
	return a.PostNodesAnySymbol(closedSet.Antichain())
}

//***************************************************
//
// PRE
//
// Backward predicate transformers.
//
//***************************************************

// PreNode returns the downward-closed set of states able to reach node
// in one step on symb: a predecessor state exists iff its
// inverse-transition witness (sharing list) is satisfied by node.
func (a *Afa) PreNode(node Node, symb automaton.Symbol) ClosedSet {
	candidates := a.rel.performInverseTransNode(node, symb)
	var result Node
	for _, c := range candidates {
		if c.SharingList.IsSubsetOf(node) {
			result.UnionInPlace(c.ResultNodes)
		}
	}
	return NewClosedSet(Downward, 0, a.maxState(), result)
}

// PreNodes lifts PreNode by union over a disjunctive set.
func (a *Afa) PreNodes(nodes Nodes, symb automaton.Symbol) ClosedSet {
	result := NewClosedSet(Downward, 0, a.maxState())
	for _, n := range nodes {
		result = result.Union(a.PreNode(n, symb))
	}
	return result
}

// Pre computes pre(closedSet, symb); closedSet must be downward-closed.
func (a *Afa) Pre(closedSet ClosedSet, symb automaton.Symbol) ClosedSet {
	assert2(closedSet.Direction == Downward, "afa: pre requires a downward-closed set, got %v", closedSet.Direction)
	return a.PreNodes(closedSet.Antichain(), symb)
}

// PreNodeAnySymbol returns the union over every symbol appearing in
// min(node)'s inverse transitions of PreNode(node, symbol).
func (a *Afa) PreNodeAnySymbol(node Node) ClosedSet {
	if node.Empty() {
		result := NewClosedSet(Downward, 0, a.maxState())
		result.Insert(Node{})
		return result
	}
	result := NewClosedSet(Downward, 0, a.maxState())
	for symb := range a.rel.inverse[node.Min()] {
		result.InsertAll(a.PreNode(node, symb).Antichain())
	}
	return result
}

// PreNodesAnySymbol lifts PreNodeAnySymbol over a disjunctive set.
func (a *Afa) PreNodesAnySymbol(nodes Nodes) ClosedSet {
	result := NewClosedSet(Downward, 0, a.maxState())
	for _, n := range nodes {
		result.InsertAll(a.PreNodeAnySymbol(n).Antichain())
	}
	return result
}

// PreAnySymbol computes pre(closedSet) across the whole alphabet (used
// by the backward emptiness engines below).
func (a *Afa) PreAnySymbol(closedSet ClosedSet) ClosedSet {
	assert2(closedSet.Direction == Downward, "afa: pre requires a downward-closed set, got %v", closedSet.Direction)
	return a.PreNodesAnySymbol(closedSet.Antichain())
}
