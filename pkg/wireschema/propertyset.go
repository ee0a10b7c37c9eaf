package wireschema

// PropertySet is the owned, ordered set of a class's properties that have
// not been matched yet. Take removes a name; nothing else mutates the set.
type PropertySet struct {
	order []string
	props map[string]*Property
}

// NewPropertySet creates a set holding props in the given order.
// Later duplicates of a name are ignored.
func NewPropertySet(props ...*Property) *PropertySet {
	s := &PropertySet{props: make(map[string]*Property, len(props))}
	for _, p := range props {
		if _, ok := s.props[p.Name]; ok {
			continue
		}
		s.order = append(s.order, p.Name)
		s.props[p.Name] = p
	}
	return s
}

// Has reports whether name is still unconsumed.
func (s *PropertySet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.props[name]
	return ok
}

// Get returns an unconsumed property without removing it.
func (s *PropertySet) Get(name string) (*Property, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.props[name]
	return p, ok
}

// Take removes name from the set and returns its property.
func (s *PropertySet) Take(name string) (*Property, bool) {
	p, ok := s.Get(name)
	if ok {
		delete(s.props, name)
	}
	return p, ok
}

// Remaining returns the unconsumed properties in declaration order.
func (s *PropertySet) Remaining() []*Property {
	if s == nil {
		return nil
	}
	out := make([]*Property, 0, len(s.props))
	for _, name := range s.order {
		if p, ok := s.props[name]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of unconsumed properties.
func (s *PropertySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}
