package domain

// LocationSet is the fixed allow-list of valid location names for new
// submissions. It validates POSTs only; GET filters accept any string.
type LocationSet map[string]struct{}

func NewLocationSet(names []string) LocationSet {
	s := make(LocationSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s LocationSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}
