package armed

import "io"

// Finalizer is the capability contract a strategy type must satisfy to be
// used as the second type parameter of a [Slot].
//
// Finalize receives the slot's value with full ownership: it may tear the
// value down, store it somewhere longer-lived, or pass it to another
// consumer. Whatever it does is the value's final disposition as far as the
// slot is concerned.
//
// Finalize is always called on the zero value of the strategy type, so the
// method must not depend on receiver state. Everything the teardown logic
// needs has to travel inside the value itself.
type Finalizer[T any] interface {
	Finalize(value T)
}

// ---------------------------------------------------------------------------
// Reusable strategies
// ---------------------------------------------------------------------------

// Discard is a strategy that does nothing with the finalized value: closing
// the slot releases the value to the garbage collector with no teardown.
//
// It exists for the case where a field needs a Slot's shape — typically so it
// can be defused on one code path — but has no work to do on the automatic
// path.
type Discard[T any] struct{}

// Finalize implements [Finalizer] by dropping the value.
func (Discard[T]) Finalize(T) {}

// CloseQuietly is a strategy for any [io.Closer]: closing the slot closes
// the value and discards the error.
//
// Use it when a close failure at teardown has no one left to report to. If
// the error matters, write a dedicated strategy that records it somewhere the
// value can reach.
type CloseQuietly[C io.Closer] struct{}

// Finalize implements [Finalizer] by calling Close on the value.
func (CloseQuietly[C]) Finalize(c C) {
	_ = c.Close()
}
