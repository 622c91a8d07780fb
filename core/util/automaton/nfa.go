package automaton

import (
	"github.com/samo538/mata/core/util/ordset"
)

// Nfa is the tuple (state-count, initial-states, final-states,
// transition-relation) of a nondeterministic finite automaton. States
// are appended monotonically; Nfa never removes a state once created.
type Nfa struct {
	initial ordset.Vector[State]
	final   ordset.Vector[State]
	moves   []MoveList // indexed by State
}

// NewNfa returns an empty NFA with no states.
func NewNfa() *Nfa {
	return &Nfa{}
}

// NumStates returns the automaton's current state count.
func (a *Nfa) NumStates() int { return len(a.moves) }

// AddState appends a fresh state and returns its id.
func (a *Nfa) AddState() State {
	a.moves = append(a.moves, nil)
	return State(len(a.moves) - 1)
}

func (a *Nfa) checkState(s State) {
	if int(s) < 0 || int(s) >= len(a.moves) {
		assert2(false, "state %d is out of bounds (numStates=%d)", s, len(a.moves))
	}
}

// AddInitial marks s as an initial state.
func (a *Nfa) AddInitial(s State) {
	a.checkState(s)
	a.initial.Insert(s)
}

// AddFinal marks s as a final (accepting) state.
func (a *Nfa) AddFinal(s State) {
	a.checkState(s)
	a.final.Insert(s)
}

// HasInitial reports whether s is an initial state.
func (a *Nfa) HasInitial(s State) bool { return a.initial.Contains(s) }

// HasFinal reports whether s is a final state.
func (a *Nfa) HasFinal(s State) bool { return a.final.Contains(s) }

// Initial returns the initial states.
func (a *Nfa) Initial() ordset.Vector[State] { return a.initial }

// Final returns the final states.
func (a *Nfa) Final() ordset.Vector[State] { return a.final }

// Moves returns the move list for s.
func (a *Nfa) Moves(s State) MoveList {
	a.checkState(s)
	return a.moves[s]
}

// AddTrans records a transition from src to dst on symb, merging into any
// existing move for (src, symb).
func (a *Nfa) AddTrans(src State, symb Symbol, dst State) {
	a.checkState(src)
	a.checkState(dst)
	a.moves[src].AddTarget(symb, dst)
}
