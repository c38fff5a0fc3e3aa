package armed

// Slot holds exactly one value of type T and owns its disposition. While the
// slot is [Alive] the value is reachable through [Slot.Get], [Slot.Set] and
// [Slot.Ptr]; exactly one terminal operation then ends the slot's life:
//
//   - [Slot.Close] hands the value, fully owned, to the strategy S;
//   - [Slot.Defuse] hands the value back to the caller instead, and the
//     strategy never runs.
//
// The strategy is fixed at compile time by the type parameter S and occupies
// no space in the slot; the only runtime state besides the value is the
// one-byte lifecycle tag.
//
// The zero Slot is Alive and holds the zero value of T.
type Slot[T any, S Finalizer[T]] struct {
	value T
	state State
}

// New wraps value in a [Slot] governed by the strategy S. It always
// succeeds.
//
// The strategy parameter comes first so the value type can be inferred from
// the argument:
//
//	slot := armed.New[rollback](txn)
func New[S Finalizer[T], T any](value T) Slot[T, S] {
	return Slot[T, S]{value: value}
}

// ---------------------------------------------------------------------------
// Access
// ---------------------------------------------------------------------------

// Get returns the held value. It panics with [ErrTerminated] if a terminal
// operation has already run.
func (s *Slot[T, S]) Get() T {
	if s.state == Terminated {
		panic(ErrTerminated)
	}
	return s.value
}

// Set replaces the held value. The previous value is simply overwritten; if
// it needs teardown of its own, take it out with [Slot.Ptr] first. Set panics
// with [ErrTerminated] if a terminal operation has already run.
func (s *Slot[T, S]) Set(value T) {
	if s.state == Terminated {
		panic(ErrTerminated)
	}
	s.value = value
}

// Ptr returns a pointer to the held value for in-place reads and writes. The
// pointer must not outlive the slot's Alive period: after Close or Defuse it
// points at a zeroed shell. Ptr panics with [ErrTerminated] if a terminal
// operation has already run.
func (s *Slot[T, S]) Ptr() *T {
	if s.state == Terminated {
		panic(ErrTerminated)
	}
	return &s.value
}

// State reports whether the slot is still [Alive] or already [Terminated].
func (s *Slot[T, S]) State() State {
	return s.state
}

// ---------------------------------------------------------------------------
// Terminal operations
// ---------------------------------------------------------------------------

// Close ends the slot's life through the automatic path: it takes the value
// out of the slot and passes it, fully owned, to S's Finalize. Close is
// intended to be deferred at the point the owning scope is established:
//
//	defer slot.Close()
//
// Calling Close on a Terminated slot does nothing, so a deferred Close
// composes with an earlier [Slot.Defuse]. The slot is marked Terminated
// before Finalize runs; a panic escaping Finalize propagates to the caller
// as usual and the slot stays Terminated.
func (s *Slot[T, S]) Close() {
	if s.state == Terminated {
		return
	}
	value := s.take()

	var fin S
	fin.Finalize(value)
}

// Defuse ends the slot's life through the manual path: it returns the held
// value with ownership restored to the caller and permanently disables the
// automatic path for this slot — S's Finalize will never see the value. From
// here on the value is torn down (or not) however the caller decides, exactly
// as if it had never been wrapped.
//
// Defuse panics with [ErrTerminated] if a terminal operation has already
// run; returning a zero value from a dead slot would look like a successful
// second extraction.
func (s *Slot[T, S]) Defuse() T {
	if s.state == Terminated {
		panic(ErrTerminated)
	}
	return s.take()
}

// take flips the slot to Terminated and moves the value out, leaving the
// shell zeroed so it pins nothing for the garbage collector.
func (s *Slot[T, S]) take() T {
	s.state = Terminated
	value := s.value

	var zero T
	s.value = zero

	return value
}
