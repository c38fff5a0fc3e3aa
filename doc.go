// Package armed provides a small container, [Slot], that holds exactly one
// value and hands that value — with full ownership — to a caller-chosen
// finalization strategy when the slot is closed.
//
// A Slot replaces the usual nullable-field workaround for "run custom
// teardown logic over this field": there is no presence flag to unwrap on
// every access, no risk of tearing the value down twice, and the strategy is
// selected at compile time through a type parameter rather than through a
// stored callback.
//
// # Quick Start
//
//	type logFlusher struct{}
//
//	func (logFlusher) Finalize(w *bufio.Writer) { w.Flush() }
//
//	func run(w *bufio.Writer) {
//		slot := armed.New[logFlusher](w)
//		defer slot.Close()
//
//		slot.Get().WriteString("hello")
//		// Flush runs exactly once, when Close fires.
//	}
//
// # Strategies
//
// A strategy is any type with a Finalize method for the held value's type —
// that is, any type satisfying [Finalizer]. Using a type without that method
// as a Slot's second type parameter is a compile error, so a forgotten
// implementation is caught before the program runs.
//
// The usual choice of strategy type is the struct that owns the Slot field,
// which keeps the finalize logic next to the type it conceptually belongs to:
//
//	type Defer struct {
//		f armed.Slot[func(), Defer]
//	}
//
//	func (Defer) Finalize(f func()) { f() }
//
// Finalize is always invoked on the zero value of the strategy type; a
// strategy is a compile-time marker, not data. Its only input is the value
// being finalized — when the teardown logic needs more than one field, bundle
// the fields into a small helper struct and hold that struct in the Slot.
//
// When one struct has two fields of the same type that need different
// teardown, give each field its own empty marker type:
//
//	type flushPrimary struct{}
//	type flushAudit struct{}
//
// And a single named strategy can be reused across unrelated value types by
// making it generic, like the package-provided [Discard] and [CloseQuietly].
//
// # Defusing
//
// [Slot.Defuse] is the inverse of the constructor: it returns the held value
// to the caller and permanently disables the strategy for that slot. A
// deferred Close after a Defuse is a no-op, which makes "tear down unless
// explicitly handed off" read naturally:
//
//	slot := armed.New[rollback](txn)
//	defer slot.Close()        // rolls back…
//	// ...
//	txn = slot.Defuse()       // …unless we take the transaction back
//	txn.Commit()
//
// # Leaking
//
// If neither [Slot.Close] nor [Slot.Defuse] is ever called, the strategy
// never runs and the value is simply reclaimed by the garbage collector.
// Suppressing teardown this way is an intentional escape valve — for example
// to keep an external resource counted as in-use past the slot's scope — not
// a detected error. Slots are not tracked by any global registry and carry no
// runtime finalizer of their own.
//
// Slots contain no synchronization; if the structure owning a Slot is shared
// across goroutines, the owner's own locking discipline governs the Slot too.
// A Slot must not be copied after first use: each copy carries its own state
// tag, so copies re-arm the strategy for the same value.
package armed
