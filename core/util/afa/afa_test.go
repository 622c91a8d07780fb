package afa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samo538/mata/core/util/automaton"
)

func TestNewAfaStartsEmpty(t *testing.T) {
	a := NewAfa()
	assert.Equal(t, 0, a.NumStates())
	assert.Equal(t, 0, a.TransSize())
}

func TestAddStateGrowsRelationStorage(t *testing.T) {
	a := NewAfa()
	s0 := a.AddState()
	s1 := a.AddState()
	assert.Equal(t, 2, a.NumStates())
	a.AddTrans(s0, 1, mkNode(s1))
	assert.True(t, a.HasTrans(s0, 1, mkNode(s1)))
}

func TestInitialAndFinalMembership(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddInitial(s0)
	a.AddFinal(s1)

	assert.True(t, a.HasInitial(s0))
	assert.False(t, a.HasInitial(s1))
	assert.True(t, a.HasFinal(s1))
	assert.False(t, a.HasFinal(s0))
	assert.Equal(t, []automaton.State{s0}, a.Initial().Items())
	assert.Equal(t, []automaton.State{s1}, a.Final().Items())
}

func TestInitialNodesIsUpwardClosed(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddInitial(s0)

	nodes := a.InitialNodes()
	assert.Equal(t, Upward, nodes.Direction)
	assert.True(t, nodes.Contains(mkNode(s0)))
	assert.True(t, nodes.Contains(mkNode(s0, s1)))
	assert.False(t, nodes.Contains(mkNode(s1)))
}

func TestNonInitialNodesIsDownwardClosed(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddInitial(s0)

	nodes := a.NonInitialNodes()
	assert.Equal(t, Downward, nodes.Direction)
	assert.True(t, nodes.Contains(mkNode(s1)))
	assert.False(t, nodes.Contains(mkNode(s0)))
}

func TestFinalNodesIsDownwardClosed(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddFinal(s1)

	nodes := a.FinalNodes()
	assert.Equal(t, Downward, nodes.Direction)
	assert.True(t, nodes.Contains(mkNode(s1)))
	assert.False(t, nodes.Contains(mkNode(s0)))
}

func TestNonFinalNodesIsUpwardClosed(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddFinal(s1)

	nodes := a.NonFinalNodes()
	assert.Equal(t, Upward, nodes.Direction)
	assert.True(t, nodes.Contains(mkNode(s0)))
	assert.True(t, nodes.Contains(mkNode(s0, s1)))
	assert.False(t, nodes.Contains(mkNode(s1)))
}

func TestAcceptsEpsilonRequiresSharedInitialFinalState(t *testing.T) {
	a := NewAfa()
	s0, s1 := a.AddState(), a.AddState()
	a.AddInitial(s0)
	assert.False(t, a.AcceptsEpsilon())

	a.AddFinal(s1)
	assert.False(t, a.AcceptsEpsilon())

	a.AddFinal(s0)
	assert.True(t, a.AcceptsEpsilon())
}

func TestAllTransEnumeratesEveryStoredTransition(t *testing.T) {
	a := NewAfa()
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	a.AddTrans(s0, 1, mkNode(s1))
	a.AddTrans(s0, 2, mkNode(s2))
	a.AddTrans(s1, 1, mkNode(s2))

	trans := a.AllTrans()
	require.Len(t, trans, 3)

	found := make(map[[2]interface{}]Nodes)
	for _, tr := range trans {
		found[[2]interface{}{tr.Src, tr.Symb}] = tr.Dst
	}
	require.Contains(t, found, [2]interface{}{s0, automaton.Symbol(1)})
	require.Contains(t, found, [2]interface{}{s0, automaton.Symbol(2)})
	require.Contains(t, found, [2]interface{}{s1, automaton.Symbol(1)})
}
