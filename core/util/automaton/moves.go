// Package automaton implements an NFA core: ordered per-state move
// lists, a synchronized k-way symbol iterator, NFA storage and the
// synchronous product (intersection) construction.
package automaton

import (
	"math"
	"sort"

	"github.com/op/go-logging"

	"github.com/samo538/mata/core/mataerr"
	"github.com/samo538/mata/core/util/ordset"
)

var log = logging.MustGetLogger("automaton")

// State is a non-negative integer identifier, dense within an automaton.
type State int

// Symbol is a non-negative integer. Epsilon is the distinguished
// spontaneous-transition symbol and must sort after every non-epsilon
// symbol so it lands last in a sorted move list.
type Symbol uint32

// Epsilon is the silent-transition symbol.
const Epsilon Symbol = math.MaxUint32

// Move pairs a symbol with its ordered target-state set.
type Move struct {
	Symbol  Symbol
	Targets ordset.Vector[State]
}

// MoveList is a single source state's moves, kept sorted by Symbol with
// at most one entry per symbol.
type MoveList []Move

// Find returns the move for symb, if present, via binary search.
func (ml MoveList) Find(symb Symbol) (*Move, bool) {
	i := sort.Search(len(ml), func(i int) bool { return ml[i].Symbol >= symb })
	if i < len(ml) && ml[i].Symbol == symb {
		return &ml[i], true
	}
	return nil, false
}

// insert adds a move for symb if absent, keeping ml sorted, and returns
// the (possibly new) move's address, for the caller to union targets
// into. ml stays strictly increasing by symbol, each symbol appearing
// once.
func (ml *MoveList) insert(symb Symbol) *Move {
	i := sort.Search(len(*ml), func(i int) bool { return (*ml)[i].Symbol >= symb })
	if i < len(*ml) && (*ml)[i].Symbol == symb {
		return &(*ml)[i]
	}
	*ml = append(*ml, Move{})
	copy((*ml)[i+1:], (*ml)[i:])
	(*ml)[i] = Move{Symbol: symb}
	return &(*ml)[i]
}

// AddTarget records a transition on symb to dst, merging dst into any
// existing move's target set: repeated discovery of a (symbol, target)
// pair merges into the existing entry rather than duplicating it.
func (ml *MoveList) AddTarget(symb Symbol, dst State) {
	mv := ml.insert(symb)
	mv.Targets.Insert(dst)
}

// LastIsEpsilon reports whether ml is non-empty and its last entry (which,
// by Epsilon sorting last, is the only place an epsilon move can be) is
// an epsilon move — the precondition checked before preserving epsilon
// transitions in the product construction.
func (ml MoveList) LastIsEpsilon() bool {
	return len(ml) > 0 && ml[len(ml)-1].Symbol == Epsilon
}

func assert(ok bool) {
	if !ok {
		panic("automaton: assertion failed")
	}
}

func assert2(ok bool, format string, args ...interface{}) {
	if !ok {
		mataerr.Panic(mataerr.OutOfBoundsf(format, args...))
	}
}
