package automaton

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func TestOnTheFlyAlphabetAssignsInFirstSeenOrder(t *testing.T) {
	a := NewOnTheFlyAlphabet(nil)
	sa, _ := a.SymbolFor("a")
	sb, _ := a.SymbolFor("b")
	sa2, _ := a.SymbolFor("a")

	tassert.Equal(t, Symbol(0), sa)
	tassert.Equal(t, Symbol(1), sb)
	tassert.Equal(t, sa, sa2)

	name, ok := a.NameOf(sb)
	tassert.True(t, ok)
	tassert.Equal(t, "b", name)
}

func TestOnTheFlyAlphabetSeeded(t *testing.T) {
	a := NewOnTheFlyAlphabet(map[string]Symbol{"x": 5})
	sx, _ := a.SymbolFor("x")
	tassert.Equal(t, Symbol(5), sx)

	sy, _ := a.SymbolFor("y")
	tassert.Equal(t, Symbol(6), sy)
}

func TestFixedAlphabetRejectsUnknownNames(t *testing.T) {
	a := NewFixedAlphabet(map[string]Symbol{"a": 0})
	_, ok := a.SymbolFor("a")
	tassert.True(t, ok)

	_, ok = a.SymbolFor("z")
	tassert.False(t, ok)
}
