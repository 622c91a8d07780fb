package afa

import (
	"sort"
	"strings"

	"github.com/samo538/mata/core/mataerr"
	"github.com/samo538/mata/core/util/automaton"
	"github.com/samo538/mata/core/util/section"
)

// TypeAFA is the type tag Construct/Serialize expect on a ParsedSection.
const TypeAFA = "AFA"

// NameMaps holds the name<->id translation tables Construct/Serialize
// use. Construct extends a caller-supplied NameMaps in place, or
// allocates a fresh one when given nil, and returns the one it used.
// Serialize only reads it and requires it to be non-nil.
type NameMaps struct {
	States  map[string]automaton.State
	Symbols map[string]automaton.Symbol
}

func newNameMaps() *NameMaps {
	return &NameMaps{States: make(map[string]automaton.State), Symbols: make(map[string]automaton.Symbol)}
}

// stateFor returns the state id for name, assigning a fresh one (as
// the next available AFA state) in first-seen order if unseen.
func (nm *NameMaps) stateFor(a *Afa, name string) automaton.State {
	if s, ok := nm.States[name]; ok {
		return s
	}
	s := a.AddState()
	nm.States[name] = s
	return s
}

func (nm *NameMaps) symbolFor(name string) automaton.Symbol {
	if s, ok := nm.Symbols[name]; ok {
		return s
	}
	s := automaton.Symbol(len(nm.Symbols))
	nm.Symbols[name] = s
	return s
}

// Construct builds an Afa from a ParsedSection. Each body line is
// "src-name symbol-name clause clause...", where each clause is a
// comma-joined list of state names forming one conjunctive disjunct of
// the (already-DNF) transition formula — the concrete token shape the
// core expects once the formula-to-DNF translation (left to an external
// parser) has run. names may be nil.
func Construct(sec *section.ParsedSection, names *NameMaps) (*Afa, *NameMaps, error) {
	if sec.Type != TypeAFA {
		return nil, nil, mataerr.WrongTypef("afa: construct expected type %q, got %q", TypeAFA, sec.Type)
	}
	if names == nil {
		names = newNameMaps()
	}
	a := NewAfa()

	for _, name := range sec.Dict["Initial"] {
		a.AddInitial(names.stateFor(a, name))
	}
	for _, name := range sec.Dict["Final"] {
		a.AddFinal(names.stateFor(a, name))
	}

	for _, line := range sec.Body {
		if len(line) < 2 {
			return nil, nil, mataerr.InvalidTransitionLinef("afa: body line has fewer than two tokens: %v", line)
		}
		src := names.stateFor(a, line[0])
		symb := names.symbolFor(line[1])
		for _, clause := range line[2:] {
			var node Node
			for _, stateName := range strings.Split(clause, ",") {
				node.Insert(names.stateFor(a, stateName))
			}
			a.AddTrans(src, symb, node)
			a.AddInverseTrans(src, symb, Nodes{node})
		}
	}

	return a, names, nil
}

// Serialize produces a ParsedSection for a, containing Initial/Final
// state-name lists plus one body line per stored (src, symb)
// transition, clauses comma-joined the same way Construct expects them.
// names must have a name for every state and symbol a exercises; a
// missing name fails with a translation error.
func Serialize(a *Afa, names *NameMaps) (*section.ParsedSection, error) {
	stateName := make(map[automaton.State]string, len(names.States))
	for name, s := range names.States {
		stateName[s] = name
	}
	symbolName := make(map[automaton.Symbol]string, len(names.Symbols))
	for name, s := range names.Symbols {
		symbolName[s] = name
	}

	sec := section.NewParsedSection(TypeAFA)

	nameOrFail := func(s automaton.State) (string, error) {
		n, ok := stateName[s]
		if !ok {
			return "", mataerr.Translationf("afa: no name registered for state %d", s)
		}
		return n, nil
	}

	for _, s := range a.Initial().Items() {
		n, err := nameOrFail(s)
		if err != nil {
			return nil, err
		}
		sec.Dict["Initial"] = append(sec.Dict["Initial"], n)
	}
	for _, s := range a.Final().Items() {
		n, err := nameOrFail(s)
		if err != nil {
			return nil, err
		}
		sec.Dict["Final"] = append(sec.Dict["Final"], n)
	}

	trans := a.AllTrans()
	sort.Slice(trans, func(i, j int) bool {
		if trans[i].Src != trans[j].Src {
			return trans[i].Src < trans[j].Src
		}
		return trans[i].Symb < trans[j].Symb
	})

	for _, t := range trans {
		srcName, err := nameOrFail(t.Src)
		if err != nil {
			return nil, err
		}
		symbName, ok := symbolName[t.Symb]
		if !ok {
			return nil, mataerr.Translationf("afa: no name registered for symbol %d", t.Symb)
		}
		line := []string{srcName, symbName}
		for _, node := range t.Dst {
			var parts []string
			for _, s := range node.Items() {
				n, err := nameOrFail(s)
				if err != nil {
					return nil, err
				}
				parts = append(parts, n)
			}
			line = append(line, strings.Join(parts, ","))
		}
		sec.AddBodyLine(line...)
	}

	return sec, nil
}
