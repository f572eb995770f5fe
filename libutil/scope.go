package libutil

// Scope owns a set of resources and releases them in reverse order of
// registration. Delete may be called any number of times; each resource is
// released at most once.
type Scope struct {
	deleters []Deleter
}

func NewScope() *Scope {
	return &Scope{}
}

func (s *Scope) Defer(d Deleter) {
	if d == nil {
		return
	}
	s.deleters = append(s.deleters, d)
}

func (s *Scope) DeferFunc(fn func()) {
	s.Defer(DeleterFunc(fn))
}

func (s *Scope) Len() int {
	return len(s.deleters)
}

func (s *Scope) Delete() {
	for len(s.deleters) > 0 {
		last := len(s.deleters) - 1
		d := s.deleters[last]
		s.deleters = s.deleters[:last]
		d.Delete()
	}
}
