package tiles

// Slot holds at most one pending value. A later Set overwrites an earlier
// one that was not taken yet.
type Slot[T any] struct {
	value T
	full  bool
}

// Set stores v, replacing any pending value.
func (s *Slot[T]) Set(v T) {
	s.value = v
	s.full = true
}

// Take returns the pending value and empties the slot.
func (s *Slot[T]) Take() (T, bool) {
	v, ok := s.value, s.full
	var zero T
	s.value = zero
	s.full = false
	return v, ok
}

// Pending reports whether a value is waiting.
func (s *Slot[T]) Pending() bool {
	return s.full
}
