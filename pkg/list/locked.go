package list

import (
	"sync"
)

// Locked is a List guarded by a single mutex. Every method holds the lock for
// the whole operation, so no caller can observe a list with half-repaired
// links.
//
// Locked's methods may be called concurrently.
type Locked[T any] struct {
	m sync.Mutex
	l List[T]
}

// NewLocked returns a Locked list holding values, in order.
func NewLocked[T any](values ...T) *Locked[T] {
	ll := new(Locked[T])
	for _, v := range values {
		ll.l.Append(v)
	}
	return ll
}

// Do calls f with the underlying list while holding the lock, so that several
// operations happen as a single step. f must not retain l or call methods on
// ll.
func (ll *Locked[T]) Do(f func(l *List[T])) {
	ll.m.Lock()
	defer ll.m.Unlock()
	f(&ll.l)
}

func (ll *Locked[T]) Len() int {
	ll.m.Lock()
	defer ll.m.Unlock()
	return ll.l.Len()
}

func (ll *Locked[T]) Append(value T) {
	ll.m.Lock()
	defer ll.m.Unlock()
	ll.l.Append(value)
}

func (ll *Locked[T]) Prepend(value T) {
	ll.m.Lock()
	defer ll.m.Unlock()
	ll.l.Prepend(value)
}

func (ll *Locked[T]) PopLast() (T, error) {
	ll.m.Lock()
	defer ll.m.Unlock()
	return ll.l.PopLast()
}

func (ll *Locked[T]) PopFirst() (T, error) {
	ll.m.Lock()
	defer ll.m.Unlock()
	return ll.l.PopFirst()
}

func (ll *Locked[T]) GetAt(idx int) (T, error) {
	ll.m.Lock()
	defer ll.m.Unlock()
	return ll.l.GetAt(idx)
}

func (ll *Locked[T]) SetAt(idx int, value T) error {
	ll.m.Lock()
	defer ll.m.Unlock()
	return ll.l.SetAt(idx, value)
}

func (ll *Locked[T]) InsertAt(idx int, value T) error {
	ll.m.Lock()
	defer ll.m.Unlock()
	return ll.l.InsertAt(idx, value)
}

func (ll *Locked[T]) RemoveAt(idx int) (T, error) {
	ll.m.Lock()
	defer ll.m.Unlock()
	return ll.l.RemoveAt(idx)
}

// ToSlice returns a snapshot of the list.
func (ll *Locked[T]) ToSlice() []T {
	ll.m.Lock()
	defer ll.m.Unlock()
	return ll.l.ToSlice()
}
