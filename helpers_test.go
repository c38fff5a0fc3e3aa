package armed

import (
	"errors"
	"testing"
)

// Shared fixtures and consumer scaffolding used across test files.

// mustPanicTerminated asserts that fn panics with ErrTerminated.
func mustPanicTerminated(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrTerminated) {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	fn()
}

// ---------------------------------------------------------------------------
// Recording strategy
// ---------------------------------------------------------------------------

// recorder observes finalizations from the outside: how many happened and
// which payload the strategy last saw.
type recorder struct {
	calls int
	last  string
}

// tracked is the value type finalized by recordFinalize. The recorder pointer
// rides inside the value, since a strategy has no state of its own.
type tracked struct {
	rec     *recorder
	payload string
}

type recordFinalize struct{}

func (recordFinalize) Finalize(v tracked) {
	v.rec.calls++
	v.rec.last = v.payload
}

// ---------------------------------------------------------------------------
// Deferred-call guard
// ---------------------------------------------------------------------------

// deferGuard runs a zero-argument callable when its scope ends. The guard
// struct itself is the strategy for its own slot.
type deferGuard struct {
	f Slot[func(), deferGuard]
}

func newDeferGuard(f func()) *deferGuard {
	return &deferGuard{f: New[deferGuard](f)}
}

func (deferGuard) Finalize(f func()) { f() }

func (g *deferGuard) Close() { g.f.Close() }

// Defuse returns the callable without running it; the guard's automatic path
// is dead afterwards.
func (g *deferGuard) Defuse() func() { return g.f.Defuse() }

// ---------------------------------------------------------------------------
// Scope guard over a (state, callback) pair
// ---------------------------------------------------------------------------

// scopeGuardFields bundles the callback with the state it will receive, so
// both travel through the slot together.
type scopeGuardFields[T any] struct {
	state  T
	onExit func(T)
}

type scopeGuard[T any] struct {
	fields Slot[scopeGuardFields[T], scopeGuard[T]]
}

func newScopeGuard[T any](state T, onExit func(T)) *scopeGuard[T] {
	return &scopeGuard[T]{
		fields: New[scopeGuard[T]](scopeGuardFields[T]{state: state, onExit: onExit}),
	}
}

func (scopeGuard[T]) Finalize(f scopeGuardFields[T]) { f.onExit(f.state) }

func (g *scopeGuard[T]) Close() { g.fields.Close() }

func (g *scopeGuard[T]) Defuse() scopeGuardFields[T] { return g.fields.Defuse() }

// ---------------------------------------------------------------------------
// Rollback-by-default transaction
// ---------------------------------------------------------------------------

const (
	statusPending    = "pending"
	statusCommitted  = "committed"
	statusRolledBack = "rolled back"
)

// fakeDB stands in for the shared store a transaction mutates. openTxns is
// the external ownership counter the leak test watches.
type fakeDB struct {
	status   string
	openTxns int
}

// rawTxn finishes in exactly one way; both finishers consume it conceptually
// and release the ownership count.
type rawTxn struct {
	db *fakeDB
}

func (r rawTxn) commit() {
	r.db.status = statusCommitted
	r.db.openTxns--
}

func (r rawTxn) rollback() {
	r.db.status = statusRolledBack
	r.db.openTxns--
}

// txn rolls back on Close unless the caller commits first.
type txn struct {
	raw Slot[rawTxn, txn]
}

func beginTxn(db *fakeDB) *txn {
	db.status = statusPending
	db.openTxns++
	return &txn{raw: New[txn](rawTxn{db: db})}
}

func (txn) Finalize(r rawTxn) { r.rollback() }

func (t *txn) Close() { t.raw.Close() }

// Commit defuses the slot and finishes the raw transaction by hand, so the
// deferred Close that follows has nothing left to roll back.
func (t *txn) Commit() {
	t.raw.Defuse().commit()
}
