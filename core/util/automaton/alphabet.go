package automaton

// Alphabet translates between Symbol identifiers and their string names.
// On-the-fly (assigns ids as symbols appear) and fixed-table lookup are
// modeled as two implementations of one capability interface rather than
// a tagged enum with a switch, since the two variants share no state and
// Go interfaces make that split free.
type Alphabet interface {
	// SymbolFor returns the id for name, assigning a fresh one if the
	// alphabet is on-the-fly and name is unseen.
	SymbolFor(name string) (Symbol, bool)
	// NameOf returns the string name of sym, if known.
	NameOf(sym Symbol) (string, bool)
}

// OnTheFlyAlphabet assigns symbol ids to names in first-seen order.
type OnTheFlyAlphabet struct {
	byName   map[string]Symbol
	bysymbol map[Symbol]string
	next     Symbol
}

// NewOnTheFlyAlphabet builds an OnTheFlyAlphabet, optionally seeded with
// a caller-provided name->id table.
func NewOnTheFlyAlphabet(seed map[string]Symbol) *OnTheFlyAlphabet {
	a := &OnTheFlyAlphabet{
		byName:   make(map[string]Symbol),
		bysymbol: nil,
	}
	a.bysymbol = make(map[Symbol]string)
	var maxSeen Symbol
	for name, sym := range seed {
		a.byName[name] = sym
		a.bysymbol[sym] = name
		if sym > maxSeen {
			maxSeen = sym
		}
	}
	if len(seed) > 0 {
		a.next = maxSeen + 1
	}
	return a
}

func (a *OnTheFlyAlphabet) SymbolFor(name string) (Symbol, bool) {
	if sym, ok := a.byName[name]; ok {
		return sym, true
	}
	sym := a.next
	a.next++
	a.byName[name] = sym
	a.bysymbol[sym] = name
	return sym, true
}

func (a *OnTheFlyAlphabet) NameOf(sym Symbol) (string, bool) {
	name, ok := a.bysymbol[sym]
	return name, ok
}

// FixedAlphabet is a read-only, pre-populated name<->id table: symbols
// not already present are rejected rather than assigned.
type FixedAlphabet struct {
	byName   map[string]Symbol
	bySymbol map[Symbol]string
}

// NewFixedAlphabet builds a FixedAlphabet from a complete name->id table.
func NewFixedAlphabet(table map[string]Symbol) *FixedAlphabet {
	a := &FixedAlphabet{byName: make(map[string]Symbol, len(table)), bySymbol: make(map[Symbol]string, len(table))}
	for name, sym := range table {
		a.byName[name] = sym
		a.bySymbol[sym] = name
	}
	return a
}

func (a *FixedAlphabet) SymbolFor(name string) (Symbol, bool) {
	sym, ok := a.byName[name]
	return sym, ok
}

func (a *FixedAlphabet) NameOf(sym Symbol) (string, bool) {
	name, ok := a.bySymbol[sym]
	return name, ok
}
