// Package list implements a doubly-linked list with positional access.
package list

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is wrapped by every IndexError, for use with errors.Is.
var ErrOutOfRange = errors.New("index out of range")

// IndexError is returned by a positional operation when the index falls outside
// of the range that operation accepts. The list is never modified by a call
// that returns an IndexError.
type IndexError struct {
	Op    string // method that failed, e.g. "RemoveAt"
	Index int    // index that was requested
	Len   int    // length of the list at the time of the call
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("list: %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

type node[T any] struct {
	next, prev *node[T]
	value      T
}

// List implements a doubly linked-list addressed by zero-based index. Head,
// tail, and size are tracked internally, so operations on either end are
// constant time. Operations on an arbitrary index are O(n), walking from
// whichever end of the list is closer.
//
// The zero value is an empty list ready to use. The list is not thread-safe;
// use Locked to share one between goroutines.
type List[T any] struct {
	head, tail *node[T]
	size       int
}

// New returns a list holding values, in order.
func New[T any](values ...T) *List[T] {
	l := new(List[T])
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Len returns the length of the list. This function is constant time.
func (l *List[T]) Len() int {
	return l.size
}

// Front returns the first item in the list. If the list is empty, the second
// return is false. This function is constant time.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the last item in the list. If the list is empty, the second
// return is false. This function is constant time.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Append adds value to the end of the list. This function is constant time.
func (l *List[T]) Append(value T) {
	l.insert(l.size, value)
}

// Prepend adds value to the start of the list. This function is constant time.
func (l *List[T]) Prepend(value T) {
	l.insert(0, value)
}

// PopLast removes the last item from the list and returns it. It returns an
// IndexError if the list is empty. This function is constant time.
func (l *List[T]) PopLast() (T, error) {
	return l.removeAt("PopLast", l.size-1)
}

// PopFirst removes the first item from the list and returns it. It returns an
// IndexError if the list is empty. This function is constant time.
func (l *List[T]) PopFirst() (T, error) {
	return l.removeAt("PopFirst", 0)
}

// GetAt returns the item at idx.
func (l *List[T]) GetAt(idx int) (T, error) {
	if err := l.check("GetAt", idx, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.locate(idx).value, nil
}

// SetAt replaces the item at idx with value. Nodes are not reordered.
func (l *List[T]) SetAt(idx int, value T) error {
	if err := l.check("SetAt", idx, l.size); err != nil {
		return err
	}
	l.locate(idx).value = value
	return nil
}

// InsertAt adds value immediately before the item currently at idx, so that
// value ends up at idx. Unlike the other positional operations, idx may equal
// Len(), which appends.
func (l *List[T]) InsertAt(idx int, value T) error {
	if err := l.check("InsertAt", idx, l.size+1); err != nil {
		return err
	}
	l.insert(idx, value)
	return nil
}

// RemoveAt removes the item at idx and returns it.
func (l *List[T]) RemoveAt(idx int) (T, error) {
	return l.removeAt("RemoveAt", idx)
}

// ToSlice returns a newly allocated slice holding the items of the list from
// front to back.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// All iterates over the list from front to back, yielding each index and item.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Backward iterates over the list from back to front by following prev links.
// The yielded index is the item's position counted from the front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.size - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.value) {
				return
			}
			i--
		}
	}
}

// Clear removes every item from the list. This function is O(n).
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n.prev = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// String formats the list like a slice, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}

// check returns an IndexError unless 0 <= idx < limit.
func (l *List[T]) check(op string, idx, limit int) error {
	if idx < 0 || idx >= limit {
		return &IndexError{Op: op, Index: idx, Len: l.size}
	}
	return nil
}

// locate returns the node at idx, or nil if idx >= l.size. idx must not be
// negative.
func (l *List[T]) locate(idx int) *node[T] {
	if idx >= l.size {
		return nil
	}
	if idx < l.size/2 {
		n := l.head
		for i := 0; i < idx; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > idx; i-- {
		n = n.prev
	}
	return n
}

// insert links a new node holding value in at idx. 0 <= idx <= l.size.
func (l *List[T]) insert(idx int, value T) {
	n := &node[T]{value: value}
	switch {
	case idx == 0:
		n.next = l.head
		if l.head != nil {
			l.head.prev = n
		} else {
			l.tail = n
		}
		l.head = n
	case idx == l.size:
		// The list is non-empty here, otherwise idx would be 0.
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	default:
		prev := l.locate(idx - 1)
		n.prev = prev
		n.next = prev.next
		prev.next.prev = n
		prev.next = n
	}
	l.size++
}

func (l *List[T]) removeAt(op string, idx int) (T, error) {
	if err := l.check(op, idx, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.remove(idx), nil
}

// remove unlinks the node at idx and returns its value. 0 <= idx < l.size.
func (l *List[T]) remove(idx int) T {
	var n *node[T]
	switch {
	case idx == 0:
		n = l.head
		l.head = n.next
		if l.head != nil {
			l.head.prev = nil
		} else {
			l.tail = nil
		}
	case idx == l.size-1:
		// At least two nodes remain here, so tail.prev is non-nil.
		n = l.tail
		l.tail = n.prev
		l.tail.next = nil
	default:
		prev := l.locate(idx - 1)
		n = prev.next
		prev.next = n.next
		n.next.prev = prev
	}
	n.next = nil
	n.prev = nil
	l.size--
	return n.value
}
