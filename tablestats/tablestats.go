// Package tablestats is an optional, out-of-the-hot-path collaborator
// that wraps a *table.Table to report operation outcomes and a
// last-touched timestamp. Statistics are kept external to the core
// table (Insert/Find/Erase never track them internally); this package
// is that external collaborator.
package tablestats

import (
	"sync/atomic"

	"github.com/hardened-steel/lockfree-hashtable/table"
	"github.com/templexxx/tsc"
)

// Observer receives the outcome of each operation performed through
// an Instrumented table.
type Observer interface {
	ObserveInsert(ok bool)
	ObserveFind(ok bool)
	ObserveErase(ok bool)
}

// NoopObserver discards every observation. It is the zero value used
// when Wrap is called with a nil Observer.
type NoopObserver struct{}

func (NoopObserver) ObserveInsert(bool) {}
func (NoopObserver) ObserveFind(bool)   {}
func (NoopObserver) ObserveErase(bool)  {}

// Instrumented forwards Insert/Find/Erase to an underlying
// *table.Table unchanged, then reports the outcome to an Observer and
// stamps a tsc-sourced last-touched timestamp. It adds no
// synchronization of its own beyond the table's: the touch write is a
// plain atomic store, independent of the table's entry/pool state.
type Instrumented struct {
	table       *table.Table
	observer    Observer
	lastTouched atomic.Int64
}

// Wrap builds an Instrumented table around t. A nil observer is
// replaced with NoopObserver.
func Wrap(t *table.Table, observer Observer) *Instrumented {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Instrumented{table: t, observer: observer}
}

// Insert delegates to the wrapped table and reports the outcome.
func (i *Instrumented) Insert(key, val []byte) bool {
	ok := i.table.Insert(key, val)
	i.touch()
	i.observer.ObserveInsert(ok)
	return ok
}

// Find delegates to the wrapped table and reports the outcome.
func (i *Instrumented) Find(key, out []byte) bool {
	ok := i.table.Find(key, out)
	i.touch()
	i.observer.ObserveFind(ok)
	return ok
}

// Erase delegates to the wrapped table and reports the outcome.
func (i *Instrumented) Erase(key []byte) bool {
	ok := i.table.Erase(key)
	i.touch()
	i.observer.ObserveErase(ok)
	return ok
}

// LastTouchedUnixNano returns the tsc timestamp of the most recently
// completed operation, or 0 if none has run yet.
func (i *Instrumented) LastTouchedUnixNano() int64 {
	return i.lastTouched.Load()
}

func (i *Instrumented) touch() {
	i.lastTouched.Store(tsc.UnixNano())
}
