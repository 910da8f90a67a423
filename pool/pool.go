// pool.go implements a generic recycling pool with a finalizer-backed
// release action.

// Package pool provides a generic object pool. Records handed out by the
// pool carry a finalizer, so a record dropped without being put back
// still sees its release action when the garbage collector reclaims it.
package pool

import (
	"runtime"
	"sync"
)

// Pool recycles records of type T.
type Pool[T any] struct {
	// ReuseMemory controls whether Put recycles the record or leaves it
	// to the garbage collector (and thereby to the finalizer).
	ReuseMemory bool

	pool      sync.Pool
	resetFunc func(*T)
}

func New[T any](
	allocFunc func() *T,
	resetFunc func(*T),
	releaseFunc func(*T),
) *Pool[T] {
	p := &Pool[T]{
		ReuseMemory: true,
		resetFunc:   resetFunc,
	}
	p.pool.New = func() any {
		v := allocFunc()
		runtime.SetFinalizer(v, releaseFunc)
		return v
	}
	return p
}

func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

// Put resets the records and, when memory reuse is enabled, recycles
// them. The reset happens either way: a record on its way to the
// garbage collector must not keep its attachments alive.
func (p *Pool[T]) Put(items ...*T) {
	for _, item := range items {
		p.resetFunc(item)
		if !p.ReuseMemory {
			continue
		}
		p.pool.Put(item)
	}
}
