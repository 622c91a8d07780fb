package afa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostStateReturnsEmptyWhenNoTransition(t *testing.T) {
	a := NewAfa()
	s0 := a.AddState()
	result := a.PostState(s0, 1)
	assert.Equal(t, 0, len(result.Antichain()))
}

func TestPostNodeIsConjunctiveAcrossMembers(t *testing.T) {
	a := NewAfa()
	s0, s1, s2, s3 := a.AddState(), a.AddState(), a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s2))
	a.AddTrans(s1, 1, mkNode(s3))

	result := a.PostNode(mkNode(s0, s1), 1)
	require.Len(t, result.Antichain(), 1)
	assert.True(t, result.Antichain()[0].Equal(mkNode(s2, s3)))
}

func TestPostNodeEmptyNodeReachesItself(t *testing.T) {
	a := NewAfa()
	a.AddState()
	result := a.PostNode(Node{}, 1)
	assert.True(t, result.Contains(Node{}))
}

// Monotonicity of post: N ⊆ N' implies post(N') ⊆ post(N).
func TestPostIsAntitoneInNode(t *testing.T) {
	a := NewAfa()
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s2))
	// s1 has no transition on 1, so any node containing s1 has empty post.

	smaller := mkNode(s0)
	bigger := mkNode(s0, s1)

	postSmaller := a.PostNode(smaller, 1)
	postBigger := a.PostNode(bigger, 1)
	assert.True(t, postBigger.IsSubsetOf(postSmaller))
}

// Monotonicity of post over Nodes is disjunctive (NS ⊆ NS' implies
// post(NS) ⊆ post(NS')).
func TestPostIsMonotoneInNodes(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s1))

	small := Nodes{mkNode(s0)}
	var big Nodes
	big.Insert(mkNode(s0))
	big.Insert(Node{}) // extra disjunct

	postSmall := a.PostNodes(small, 1)
	postBig := a.PostNodes(big, 1)
	assert.True(t, postSmall.IsSubsetOf(postBig))
}

func TestPreNodeFindsPredecessors(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s1))
	a.AddInverseTrans(s0, 1, Nodes{mkNode(s1)})

	result := a.PreNode(mkNode(s1), 1)
	assert.True(t, result.Contains(mkNode(s0)))
}

func TestPostRejectsDownwardClosedSet(t *testing.T) {
	a := NewAfa()
	a.AddState()
	downward := NewClosedSet(Downward, 0, a.maxState())
	assert.Panics(t, func() { a.Post(downward, 1) })
}

func TestPostLiftsOverUpwardClosedSet(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s1))

	seed := NewClosedSet(Upward, 0, a.maxState(), mkNode(s0))
	result := a.Post(seed, 1)
	assert.True(t, result.Contains(mkNode(s1)))
}

func TestPostNodesAnySymbolCoversEverySymbol(t *testing.T) {
	a := NewAfa()
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s1))
	a.AddTrans(s0, 2, mkNode(s2))

	result := a.PostNodesAnySymbol(Nodes{mkNode(s0)})
	assert.True(t, result.Contains(mkNode(s1)))
	assert.True(t, result.Contains(mkNode(s2)))
}

func TestPreRejectsUpwardClosedSet(t *testing.T) {
	a := NewAfa()
	a.AddState()
	upward := NewClosedSet(Upward, 0, a.maxState())
	assert.Panics(t, func() { a.Pre(upward, 1) })
}

func TestPreLiftsOverDownwardClosedSet(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s1))
	a.AddInverseTrans(s0, 1, Nodes{mkNode(s1)})

	seed := NewClosedSet(Downward, 0, a.maxState(), mkNode(s1))
	result := a.Pre(seed, 1)
	assert.True(t, result.Contains(mkNode(s0)))
}

func TestPreNodesUnionsAcrossDisjuncts(t *testing.T) {
	a := NewAfa()
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s2))
	a.AddTrans(s1, 1, mkNode(s2))
	a.AddInverseTrans(s0, 1, Nodes{mkNode(s2)})
	a.AddInverseTrans(s1, 1, Nodes{mkNode(s2)})

	result := a.PreNodes(Nodes{mkNode(s2)}, 1)
	assert.True(t, result.Contains(mkNode(s0)))
	assert.True(t, result.Contains(mkNode(s1)))
}

func TestPreNodesAnySymbolCoversEverySymbol(t *testing.T) {
	a := NewAfa()
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s2))
	a.AddTrans(s1, 2, mkNode(s2))
	a.AddInverseTrans(s0, 1, Nodes{mkNode(s2)})
	a.AddInverseTrans(s1, 2, Nodes{mkNode(s2)})

	result := a.PreNodesAnySymbol(Nodes{mkNode(s2)})
	assert.True(t, result.Contains(mkNode(s0)))
	assert.True(t, result.Contains(mkNode(s1)))
}
