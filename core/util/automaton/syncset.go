package automaton

// SyncIterator advances k move lists in lockstep, yielding, on each
// Advance, the k moves that share the smallest symbol present in every
// list. Symbols present in fewer than k lists are skipped.
type SyncIterator struct {
	lists []MoveList
	pos   []int
}

// NewSyncIterator builds a synchronized iterator over lists.
func NewSyncIterator(lists ...MoveList) *SyncIterator {
	return &SyncIterator{lists: lists, pos: make([]int, len(lists))}
}

// Advance finds the next symbol shared by every list and returns the
// matching move from each, in list order. Returns ok=false once no such
// symbol remains.
func (s *SyncIterator) Advance() (group []*Move, ok bool) {
	for {
		for i := range s.lists {
			if s.pos[i] >= len(s.lists[i]) {
				return nil, false
			}
		}

		maxSymbol := s.lists[0][s.pos[0]].Symbol
		for i := 1; i < len(s.lists); i++ {
			if sym := s.lists[i][s.pos[i]].Symbol; sym > maxSymbol {
				maxSymbol = sym
			}
		}

		advanced := false
		for i := range s.lists {
			for s.pos[i] < len(s.lists[i]) && s.lists[i][s.pos[i]].Symbol < maxSymbol {
				s.pos[i]++
				advanced = true
			}
			if s.pos[i] >= len(s.lists[i]) {
				return nil, false
			}
		}
		if advanced {
			continue
		}

		group = make([]*Move, len(s.lists))
		for i := range s.lists {
			group[i] = &s.lists[i][s.pos[i]]
		}
		for i := range s.pos {
			s.pos[i]++
		}
		return group, true
	}
}
