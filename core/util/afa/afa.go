package afa

import (
	"github.com/samo538/mata/core/util/automaton"
	"github.com/samo538/mata/core/util/ordset"
)

// Afa is an alternating finite automaton: transitions map a state and
// symbol to a positive Boolean formula over states, stored here in DNF
// as a Nodes value. The forward and inverse relations are independent
// stores, alongside initial/final state membership.
type Afa struct {
	initial ordset.Vector[automaton.State]
	final   ordset.Vector[automaton.State]
	rel     relation
}

// NewAfa returns an empty AFA with no states.
func NewAfa() *Afa {
	return &Afa{rel: newRelation(0)}
}

// NumStates reports how many states a exposes.
func (a *Afa) NumStates() int { return len(a.rel.forward) }

// AddState appends one fresh state and returns its id.
func (a *Afa) AddState() automaton.State {
	s := automaton.State(a.NumStates())
	a.rel.grow(int(s) + 1)
	return s
}

// maxState is the saturating upper state bound max(0, NumStates()-1)
// used for every ClosedSet a builds.
func (a *Afa) maxState() automaton.State {
	if a.NumStates() == 0 {
		return 0
	}
	return automaton.State(a.NumStates() - 1)
}

func (a *Afa) checkState(s automaton.State) {
	assertState(int(s) >= 0 && int(s) < a.NumStates(), "afa: state %d out of bounds [0,%d)", s, a.NumStates())
}

// AddInitial marks s as an initial state.
func (a *Afa) AddInitial(s automaton.State) {
	a.checkState(s)
	a.initial.Insert(s)
}

// AddFinal marks s as a final (accepting) state.
func (a *Afa) AddFinal(s automaton.State) {
	a.checkState(s)
	a.final.Insert(s)
}

// HasInitial reports whether s is an initial state.
func (a *Afa) HasInitial(s automaton.State) bool { return a.initial.Contains(s) }

// HasFinal reports whether s is a final state.
func (a *Afa) HasFinal(s automaton.State) bool { return a.final.Contains(s) }

// Initial returns the initial states.
func (a *Afa) Initial() ordset.Vector[automaton.State] { return a.initial }

// Final returns the final states.
func (a *Afa) Final() ordset.Vector[automaton.State] { return a.final }

// AddTrans records a forward transition: dst is merged into the stored
// Nodes for (src, symb), absorbing redundant disjuncts.
func (a *Afa) AddTrans(src automaton.State, symb automaton.Symbol, dst Node) {
	a.checkState(src)
	a.rel.addTrans(src, symb, dst, a.maxState())
}

// AddInverseTrans records the inverse of the transition (src, symb,
// dst).
func (a *Afa) AddInverseTrans(src automaton.State, symb automaton.Symbol, dst Nodes) {
	a.checkState(src)
	a.rel.addInverseTrans(src, symb, dst)
}

// HasTrans reports whether dst is already implied by the stored
// transition for (src, symb).
func (a *Afa) HasTrans(src automaton.State, symb automaton.Symbol, dst Node) bool {
	return a.rel.hasTrans(src, symb, dst)
}

// TransSize counts stored (src, symb) -> Nodes entries across all
// states.
func (a *Afa) TransSize() int { return a.rel.transSize() }

// AllTrans enumerates every stored forward transition, one Trans per
// (src, symb) entry.
func (a *Afa) AllTrans() []Trans {
	var out []Trans
	for src, bySymb := range a.rel.forward {
		for symb, dst := range bySymb {
			out = append(out, Trans{Src: automaton.State(src), Symb: symb, Dst: dst})
		}
	}
	return out
}

// InitialNodes returns the upward-closed set of initial states: the
// seed the forward emptiness variants start from.
func (a *Afa) InitialNodes() ClosedSet {
	result := NewClosedSet(Upward, 0, a.maxState())
	for _, s := range a.initial.Items() {
		result.Insert(singleton(s))
	}
	return result
}

// NonInitialNodes returns the downward-closed set of non-initial
// states: the goal region the backward variants must stay inside.
func (a *Afa) NonInitialNodes() ClosedSet {
	var subresult Node
	for s := automaton.State(0); int(s) < a.NumStates(); s++ {
		if !a.HasInitial(s) {
			subresult.Insert(s)
		}
	}
	return NewClosedSet(Downward, 0, a.maxState(), subresult)
}

// FinalNodes returns the downward-closed set of final states: the seed
// the backward emptiness variants start from.
func (a *Afa) FinalNodes() ClosedSet {
	var subresult Node
	for s := automaton.State(0); int(s) < a.NumStates(); s++ {
		if a.HasFinal(s) {
			subresult.Insert(s)
		}
	}
	return NewClosedSet(Downward, 0, a.maxState(), subresult)
}

// NonFinalNodes returns the upward-closed set of non-final states: the
// goal region the forward variants must stay inside. Unlike
// NonInitialNodes, this is upward rather than downward closed, since
// the forward emptiness variants reason about post-images, which grow
// upward.
func (a *Afa) NonFinalNodes() ClosedSet {
	result := NewClosedSet(Upward, 0, a.maxState())
	for s := automaton.State(0); int(s) < a.NumStates(); s++ {
		if !a.HasFinal(s) {
			result.Insert(singleton(s))
		}
	}
	return result
}

// AcceptsEpsilon reports whether some state is both initial and final:
// the empty word is accepted iff an initial state is also accepting.
func (a *Afa) AcceptsEpsilon() bool {
	for _, s := range a.initial.Items() {
		if a.HasFinal(s) {
			return true
		}
	}
	return false
}
