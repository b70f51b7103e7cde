package codeinput

// LengthWatcher receives the number of characters entered after every edit.
type LengthWatcher func(length int)

// CompleteWatcher receives whether all slots are filled after every edit.
type CompleteWatcher func(complete bool)

// Keyboard is the host's input capture. Show is requested when a slot is
// focused, Hide when the last slot is filled and hiding is enabled.
type Keyboard interface {
	Show()
	Hide()
}

type subscriber[F any] struct {
	id int
	fn F
}

// subscribers is an ordered list of callbacks that can be removed by handle.
type subscribers[F any] struct {
	nextID  int
	entries []subscriber[F]
}

func (s *subscribers[F]) add(fn F) func() {
	id := s.nextID
	s.nextID++
	s.entries = append(s.entries, subscriber[F]{id: id, fn: fn})
	return func() { s.remove(id) }
}

func (s *subscribers[F]) remove(id int) {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return
		}
	}
}

// each calls visit for every subscriber registered when each was entered.
// Subscribers added or removed from inside a callback take effect next time.
func (s *subscribers[F]) each(visit func(F)) {
	snapshot := make([]subscriber[F], len(s.entries))
	copy(snapshot, s.entries)
	for _, e := range snapshot {
		visit(e.fn)
	}
}
