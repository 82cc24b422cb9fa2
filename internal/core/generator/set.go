package generator

// orderedSet keeps unique strings in insertion order.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet(capacity int) *orderedSet {
	return &orderedSet{
		items: make([]string, 0, capacity),
		seen:  make(map[string]struct{}, capacity),
	}
}

// Add inserts value and reports whether it was new.
func (s *orderedSet) Add(value string) bool {
	if _, ok := s.seen[value]; ok {
		return false
	}
	s.seen[value] = struct{}{}
	s.items = append(s.items, value)
	return true
}

func (s *orderedSet) Len() int {
	return len(s.items)
}

func (s *orderedSet) Items() []string {
	return append([]string(nil), s.items...)
}
