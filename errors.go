package armed

import "errors"

var (
	// ErrTerminated is the value a [Slot] panics with when it is accessed,
	// or defused, after a terminal operation has already run. Recover and
	// test it with errors.Is.
	ErrTerminated = errors.New("armed: slot already terminated")
)
