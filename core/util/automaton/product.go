package automaton

// pairKey identifies a (lhs-state, rhs-state) pair being tracked during
// product construction.
type pairKey struct {
	lhs, rhs State
}

// Intersection computes the product NFA of lhs and rhs: the synchronous
// intersection of their languages, using the synchronized k-way symbol
// iterator to avoid ever materializing the full Cartesian state space.
// When preserveEpsilon is set, every epsilon self-advance of either side
// is also carried into the product.
//
// If prodMap is non-nil, it is filled with the (lhs, rhs) -> product
// state mapping.
func Intersection(lhs, rhs *Nfa, preserveEpsilon bool, prodMap map[[2]State]State) *Nfa {
	product := NewNfa()
	mapping := make(map[pairKey]State)
	var pending []pairKey

	ensurePair := func(p, q State) (State, bool) {
		key := pairKey{p, q}
		if r, ok := mapping[key]; ok {
			return r, false
		}
		r := product.AddState()
		mapping[key] = r
		log.Debugf("intersection: created product state %d for pair (%d,%d)", r, p, q)
		if lhs.HasFinal(p) && rhs.HasFinal(q) {
			product.AddFinal(r)
		}
		pending = append(pending, key)
		return r, true
	}

	for _, p := range lhs.Initial().Items() {
		for _, q := range rhs.Initial().Items() {
			r, created := ensurePair(p, q)
			if created {
				product.AddInitial(r)
				log.Debugf("intersection: initial pair (%d,%d) -> %d", p, q, r)
			}
		}
	}

	for len(pending) > 0 {
		cur := pending[0]
		pending = pending[1:]
		r := mapping[cur]
		log.Debugf("intersection: processing pair (%d,%d) -> %d", cur.lhs, cur.rhs, r)

		sync := NewSyncIterator(lhs.Moves(cur.lhs), rhs.Moves(cur.rhs))
		for {
			group, ok := sync.Advance()
			if !ok {
				break
			}
			lhsMove, rhsMove := group[0], group[1]
			// Epsilon is not filtered out of the synchronized step: if
			// both sides happen to have an epsilon move from the
			// current pair, that is a genuine synchronous epsilon
			// advance, distinct from the one-sided epsilon preservation
			// handled below.
			for _, pTo := range lhsMove.Targets.Items() {
				for _, qTo := range rhsMove.Targets.Items() {
					rTo, _ := ensurePair(pTo, qTo)
					product.AddTrans(r, lhsMove.Symbol, rTo)
				}
			}
		}

		if preserveEpsilon {
			if lhsMoves := lhs.Moves(cur.lhs); lhsMoves.LastIsEpsilon() {
				last := lhsMoves[len(lhsMoves)-1]
				for _, pTo := range last.Targets.Items() {
					rTo, _ := ensurePair(pTo, cur.rhs)
					product.AddTrans(r, Epsilon, rTo)
				}
			}
			if rhsMoves := rhs.Moves(cur.rhs); rhsMoves.LastIsEpsilon() {
				last := rhsMoves[len(rhsMoves)-1]
				for _, qTo := range last.Targets.Items() {
					rTo, _ := ensurePair(cur.lhs, qTo)
					product.AddTrans(r, Epsilon, rTo)
				}
			}
		}
	}

	if prodMap != nil {
		for k, v := range mapping {
			prodMap[[2]State{k.lhs, k.rhs}] = v
		}
	}
	return product
}
