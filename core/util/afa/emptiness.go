package afa

// Four antichain-based language-emptiness tests, combining
// forward/backward traversal with iterative-closure/worklist
// scheduling. All four return true iff the language is empty, and must
// agree on every input.

// ForwardIterativeEmptiness repeatedly unions in post(current) until a
// fixed point, failing fast if the frontier escapes the non-final goal
// region.
func (a *Afa) ForwardIterativeEmptiness() bool {
	goal := a.NonFinalNodes()
	current := NewClosedSet(Upward, 0, a.maxState())
	next := a.InitialNodes()

	for !current.Equal(next) {
		current = next
		next = current.Union(a.PostAnySymbol(current))
		if !next.IsSubsetOf(goal) {
			log.Debugf("forward-iterative: escaped goal, antichain size %d", len(next.Antichain()))
			return false
		}
	}
	return true
}

// ForwardWorklistEmptiness processes one Node at a time instead of
// closing the whole frontier each round.
func (a *Afa) ForwardWorklistEmptiness() bool {
	goal := a.NonFinalNodes()
	result := a.InitialNodes()
	processed := map[string]bool{}
	var worklist []Node
	for _, n := range result.Antichain() {
		worklist = append(worklist, n)
	}

	if !result.IsSubsetOf(goal) {
		return false
	}

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		postCurrent := a.PostNodeAnySymbol(current)
		result = result.Union(postCurrent)
		for _, n := range postCurrent.Antichain() {
			if !goal.Contains(n) {
				log.Debugf("forward-worklist: escaped goal, worklist size %d", len(worklist))
				return false
			}
			key := n.String()
			if !processed[key] {
				worklist = append(worklist, n)
			}
		}
		processed[current.String()] = true
	}
	return true
}

// BackwardIterativeEmptiness is the dual of ForwardIterativeEmptiness,
// tracing predecessors from the final states instead of successors from
// the initial states.
func (a *Afa) BackwardIterativeEmptiness() bool {
	goal := a.NonInitialNodes()
	current := NewClosedSet(Downward, 0, a.maxState())
	next := a.FinalNodes()

	for !current.Equal(next) {
		current = next
		next = current.Union(a.PreAnySymbol(current))
		if !next.IsSubsetOf(goal) {
			log.Debugf("backward-iterative: escaped goal, antichain size %d", len(next.Antichain()))
			return false
		}
	}
	return true
}

// BackwardWorklistEmptiness is the worklist-scheduled dual of
// BackwardIterativeEmptiness.
func (a *Afa) BackwardWorklistEmptiness() bool {
	goal := a.NonInitialNodes()
	result := a.FinalNodes()
	processed := map[string]bool{}
	var worklist []Node
	for _, n := range result.Antichain() {
		worklist = append(worklist, n)
	}

	if !result.IsSubsetOf(goal) {
		return false
	}

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		preCurrent := a.PreNodeAnySymbol(current)
		result = result.Union(preCurrent)
		for _, n := range preCurrent.Antichain() {
			if !goal.Contains(n) {
				log.Debugf("backward-worklist: escaped goal, worklist size %d", len(worklist))
				return false
			}
			key := n.String()
			if !processed[key] {
				worklist = append(worklist, n)
			}
		}
		processed[current.String()] = true
	}
	return true
}
