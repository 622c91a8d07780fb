package afa

import "github.com/samo538/mata/core/util/automaton"

// Trans is a single forward transition: src diverges, on symb, into the
// disjunctive Nodes dst.
type Trans struct {
	Src  automaton.State
	Symb automaton.Symbol
	Dst  Nodes
}

// inverseResult pairs the set of predecessor states that share one
// conjunctive witness (SharingList) for a given symbol: a conjunctive
// witness A is stored exactly once regardless of how many states
// share it.
type inverseResult struct {
	ResultNodes Node
	SharingList Node
}

// forward and inverse relations are independent stores indexed by
// state id and never cross-link.
type relation struct {
	forward []map[automaton.Symbol]Nodes
	inverse []map[automaton.Symbol][]inverseResult
}

func newRelation(numStates int) relation {
	r := relation{
		forward: make([]map[automaton.Symbol]Nodes, numStates),
		inverse: make([]map[automaton.Symbol][]inverseResult, numStates),
	}
	for i := range r.forward {
		r.forward[i] = make(map[automaton.Symbol]Nodes)
		r.inverse[i] = make(map[automaton.Symbol][]inverseResult)
	}
	return r
}

func (r *relation) grow(numStates int) {
	for len(r.forward) < numStates {
		r.forward = append(r.forward, make(map[automaton.Symbol]Nodes))
		r.inverse = append(r.inverse, make(map[automaton.Symbol][]inverseResult))
	}
}

// performTrans returns the stored Nodes for (src, symb), or nil if
// absent.
func (r *relation) performTrans(src automaton.State, symb automaton.Symbol) Nodes {
	assertState(int(src) < len(r.forward), "afa: transition lookup from out-of-bounds state %d", src)
	return r.forward[src][symb]
}

// addTrans records dst as a destination of (src, symb), eliminating
// redundant disjuncts via the upward-closure reduction: adding {1,2}
// when {1} is already stored is a no-op, since {1} already dominates
// {1,2} in the upward order.
func (r *relation) addTrans(src automaton.State, symb automaton.Symbol, dst Node, maxState automaton.State) {
	existing := r.forward[src][symb]
	if len(existing) > 0 {
		cl := NewClosedSet(Upward, 0, maxState, existing...)
		cl.Insert(dst)
		r.forward[src][symb] = cl.Antichain()
		return
	}
	r.forward[src][symb] = Nodes{dst}
}

// performInverseTrans returns the inverse-result bucket for (src,
// symb), or nil if absent.
func (r *relation) performInverseTrans(src automaton.State, symb automaton.Symbol) []inverseResult {
	assertState(int(src) < len(r.inverse), "afa: inverse transition lookup from out-of-bounds state %d", src)
	return r.inverse[src][symb]
}

// performInverseTransNode unions the inverse-result buckets for every
// state in node under symb.
func (r *relation) performInverseTransNode(node Node, symb automaton.Symbol) []inverseResult {
	var out []inverseResult
	for _, s := range node.Items() {
		out = append(out, r.performInverseTrans(s, symb)...)
	}
	return out
}

// addInverseTrans records, for every node A in dst, that src is reached
// via the conjunctive witness A under symb — stored once per distinct A
// under A's minimum state.
func (r *relation) addInverseTrans(src automaton.State, symb automaton.Symbol, dst Nodes) {
	for _, a := range dst {
		storeTo := a.Min()
		bucket := r.inverse[storeTo][symb]
		found := false
		for i := range bucket {
			if bucket[i].SharingList.Equal(a) {
				bucket[i].ResultNodes.Insert(src)
				found = true
				break
			}
		}
		if found {
			r.inverse[storeTo][symb] = bucket
			continue
		}
		var resultNodes Node
		resultNodes.Insert(src)
		r.inverse[storeTo][symb] = append(bucket, inverseResult{ResultNodes: resultNodes, SharingList: a})
	}
}

// hasTrans reports whether dst is already covered by the stored nodes
// for (src, symb): dst is a subset of some stored disjunct.
func (r *relation) hasTrans(src automaton.State, symb automaton.Symbol, dst Node) bool {
	stored := r.performTrans(src, symb)
	if len(stored) == 0 {
		return false
	}
	for _, a := range stored {
		if dst.IsSubsetOf(a) {
			return true
		}
	}
	return false
}

// transSize counts every stored (src, symb) -> Nodes entry across all
// states (diagnostic counter).
func (r *relation) transSize() int {
	n := 0
	for _, bySymb := range r.forward {
		n += len(bySymb)
	}
	return n
}
