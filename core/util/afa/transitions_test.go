package afa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Round-trip of AddTrans/performTrans.
func TestAddTransRoundTrip(t *testing.T) {
	a := NewAfa()
	s0 := a.AddState()
	s1 := a.AddState()
	a.AddTrans(s0, 1, mkNode(s1))

	got := a.rel.performTrans(s0, 1)
	require.Len(t, got, 1)
	closure := NewClosedSet(Upward, 0, a.maxState(), got...)
	assert.True(t, closure.Contains(mkNode(s1)))
}

// Idempotence of AddTrans.
func TestAddTransIdempotent(t *testing.T) {
	a := NewAfa()
	s0 := a.AddState()
	s1 := a.AddState()
	a.AddTrans(s0, 1, mkNode(s1))
	before := a.TransSize()
	a.AddTrans(s0, 1, mkNode(s1))
	assert.Equal(t, before, a.TransSize())
	assert.True(t, a.HasTrans(s0, 1, mkNode(s1)))
}

// Adding a superset of an existing disjunct is a no-op, the same
// antichain reduction rule exercised through the store.
func TestAddTransAbsorbsRedundantDisjunct(t *testing.T) {
	a := NewAfa()
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s1))
	a.AddTrans(s0, 1, mkNode(s1, s2))

	got := a.rel.performTrans(s0, 1)
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(mkNode(s1)))
}

func TestHasTransFalseWhenNoTransition(t *testing.T) {
	a := NewAfa()
	s0 := a.AddState()
	s1 := a.AddState()
	assert.False(t, a.HasTrans(s0, 1, mkNode(s1)))
}

func TestAddInverseTransSharesWitnessAcrossStates(t *testing.T) {
	a := NewAfa()
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	node := mkNode(s1, s2)
	a.AddInverseTrans(s0, 1, Nodes{node})

	bucket := a.rel.performInverseTrans(node.Min(), 1)
	require.Len(t, bucket, 1)
	assert.True(t, bucket[0].SharingList.Equal(node))
	assert.True(t, bucket[0].ResultNodes.Contains(s0))
}
