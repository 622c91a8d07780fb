package afa

import "github.com/samo538/mata/core/util/automaton"

// Direction selects whether a ClosedSet is upward- or downward-closed.
// Modeled as an enumerated tag rather than two types, since the two
// directions share every field and differ only in how dominance and
// containment are evaluated.
type Direction int

const (
	Upward Direction = iota
	Downward
)

// ClosedSet represents a set of Node values closed upward or downward,
// stored compactly as its antichain. Min and Max record the state-id
// bound the set was constructed over; a zero-state automaton yields
// the saturated bound Min == Max == 0, which every operation below
// accepts as a valid bound rather than an error.
type ClosedSet struct {
	Direction Direction
	Min, Max  automaton.State
	antichain Nodes
}

// NewClosedSet builds an empty ClosedSet bounded by [minState, maxState]
// and folds the given seed nodes into it via Insert.
func NewClosedSet(dir Direction, minState, maxState automaton.State, seed ...Node) ClosedSet {
	c := ClosedSet{Direction: dir, Min: minState, Max: maxState}
	for _, n := range seed {
		c.Insert(n)
	}
	return c
}

// Antichain returns the reduced set of mutually incomparable Node
// values representing c. Callers must not mutate the returned slice.
func (c ClosedSet) Antichain() Nodes { return c.antichain }

// dominates reports whether a dominates b in c's direction: a ⊆ b when
// upward (a is "more general", so b is absorbed), b ⊆ a when downward.
func (c ClosedSet) dominates(a, b Node) bool {
	if c.Direction == Upward {
		return a.IsSubsetOf(b)
	}
	return b.IsSubsetOf(a)
}

// Insert adds n to c in place, maintaining the antichain invariant:
// drop n if an existing element already dominates it; otherwise remove
// every element n dominates, then add n.
// Empty-node handling falls out of the same rule: the empty node is a
// subset of everything, so inserting it upward makes every other
// element redundant (leaving {} as the sole, top, element) while
// inserting it downward is itself absorbed by anything already present
// and, if the set was empty, becomes the minimum.
func (c *ClosedSet) Insert(n Node) {
	for _, a := range c.antichain {
		if c.dominates(a, n) {
			return
		}
	}
	kept := c.antichain[:0:0]
	for _, a := range c.antichain {
		if !c.dominates(n, a) {
			kept = append(kept, a)
		}
	}
	kept.Insert(n)
	c.antichain = kept
}

// InsertAll folds Insert over every node in ns.
func (c *ClosedSet) InsertAll(ns Nodes) {
	for _, n := range ns {
		c.Insert(n)
	}
}

// Union returns a fresh ClosedSet containing every element of c and
// other's antichains, reduced. c and other must share a direction.
func (c ClosedSet) Union(other ClosedSet) ClosedSet {
	assertSameDirection(c, other)
	result := ClosedSet{Direction: c.Direction, Min: c.Min, Max: c.Max}
	result.InsertAll(c.antichain)
	result.InsertAll(other.antichain)
	return result
}

// Intersection returns a fresh ClosedSet built from every pairwise
// combination of c's and other's antichain elements: union of pairs
// when upward, intersection of pairs when downward. c and other must
// share a direction.
func (c ClosedSet) Intersection(other ClosedSet) ClosedSet {
	assertSameDirection(c, other)
	result := ClosedSet{Direction: c.Direction, Min: c.Min, Max: c.Max}
	for _, a := range c.antichain {
		for _, b := range other.antichain {
			if c.Direction == Upward {
				result.Insert(a.Union(b))
			} else {
				result.Insert(a.Intersect(b))
			}
		}
	}
	return result
}

// Contains reports whether n belongs to the set c represents: upward
// iff some antichain element is a subset of n, downward iff n is a
// subset of some antichain element.
func (c ClosedSet) Contains(n Node) bool {
	for _, a := range c.antichain {
		if c.Direction == Upward {
			if a.IsSubsetOf(n) {
				return true
			}
		} else if n.IsSubsetOf(a) {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether c is a subset of other: every element of
// c's antichain belongs to other by the Contains rule.
func (c ClosedSet) IsSubsetOf(other ClosedSet) bool {
	assertSameDirection(c, other)
	for _, n := range c.antichain {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// Equal reports mutual inclusion between c and other.
func (c ClosedSet) Equal(other ClosedSet) bool {
	return c.IsSubsetOf(other) && other.IsSubsetOf(c)
}

func assertSameDirection(a, b ClosedSet) {
	if a.Direction != b.Direction {
		assert2(false, "afa: mismatched closed-set directions (%v vs %v)", a.Direction, b.Direction)
	}
}
