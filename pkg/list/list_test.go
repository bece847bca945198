package list

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"hop.computer/seqs/pkg/must"
	"hop.computer/seqs/pkg/readers"
)

// verify walks the list in both directions and checks every link invariant.
func verify[T comparable](t *testing.T, l *List[T]) {
	t.Helper()
	if l.size == 0 {
		assert.Check(t, is.Nil(l.head))
		assert.Check(t, is.Nil(l.tail))
		return
	}
	assert.Assert(t, l.head != nil)
	assert.Assert(t, l.tail != nil)
	assert.Check(t, is.Nil(l.head.prev))
	assert.Check(t, is.Nil(l.tail.next))
	if l.size == 1 {
		assert.Check(t, l.head == l.tail)
	}

	forward := 0
	for n := l.head; n != nil; n = n.next {
		if n.next != nil {
			assert.Assert(t, n.next.prev == n, "broken back link after index %d", forward)
		}
		if n.prev != nil {
			assert.Assert(t, n.prev.next == n, "broken forward link before index %d", forward)
		}
		forward++
	}
	backward := 0
	for n := l.tail; n != nil; n = n.prev {
		backward++
	}
	assert.Equal(t, forward, l.size)
	assert.Equal(t, backward, l.size)
}

func TestPush(t *testing.T) {
	// Zero
	l := List[int]{}
	_, present := l.Front()
	assert.Check(t, !present)
	_, present = l.Back()
	assert.Check(t, !present)
	verify(t, &l)

	// One
	l.Append(1)
	assert.Equal(t, 1, front(t, &l))
	assert.Equal(t, 1, back(t, &l))
	verify(t, &l)

	// Two
	l.Append(2)
	assert.Equal(t, 1, front(t, &l))
	assert.Equal(t, 2, back(t, &l))

	// Three, at the front
	l.Prepend(0)
	assert.Equal(t, 0, front(t, &l))
	assert.Equal(t, 2, back(t, &l))
	verify(t, &l)

	// Pop them all off
	assert.Equal(t, 2, must.Do(l.PopLast()))
	assert.Equal(t, 0, must.Do(l.PopFirst()))
	assert.Equal(t, 1, must.Do(l.PopLast()))
	verify(t, &l)
	assert.Equal(t, 0, l.Len())
}

func TestPop(t *testing.T) {
	l := List[int]{}

	_, err := l.PopLast()
	var ie *IndexError
	assert.Assert(t, errors.As(err, &ie))
	assert.Equal(t, "PopLast", ie.Op)
	assert.Equal(t, -1, ie.Index)

	_, err = l.PopFirst()
	assert.Assert(t, errors.Is(err, ErrOutOfRange))
	verify(t, &l)
}

func TestNew(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	l := New(in...)
	assert.DeepEqual(t, in, l.ToSlice())
	assert.Equal(t, len(in), l.Len())
	verify(t, l)

	empty := New[string]()
	assert.Equal(t, 0, empty.Len())
	assert.DeepEqual(t, []string{}, empty.ToSlice())
}

func TestInsertAt(t *testing.T) {
	l := New(1, 2, 3)
	assert.NilError(t, l.InsertAt(1, 99))
	assert.DeepEqual(t, []int{1, 99, 2, 3}, l.ToSlice())
	assert.Equal(t, 4, l.Len())
	verify(t, l)

	assert.NilError(t, l.InsertAt(0, -1))
	assert.NilError(t, l.InsertAt(l.Len(), 100))
	assert.NilError(t, l.InsertAt(l.Len()-1, 50))
	assert.DeepEqual(t, []int{-1, 1, 99, 2, 3, 50, 100}, l.ToSlice())
	assert.Equal(t, -1, front(t, l))
	assert.Equal(t, 100, back(t, l))
	verify(t, l)
}

func TestInsertAtEmpty(t *testing.T) {
	l := List[int]{}
	assert.NilError(t, l.InsertAt(0, 7))
	assert.DeepEqual(t, []int{7}, l.ToSlice())
	verify(t, &l)
}

func TestRemoveAt(t *testing.T) {
	l := New(1, 2, 3)
	v, err := l.RemoveAt(1)
	assert.NilError(t, err)
	assert.Equal(t, 2, v)
	assert.DeepEqual(t, []int{1, 3}, l.ToSlice())
	assert.Equal(t, 2, l.Len())
	verify(t, l)

	// Removing the tail must move tail back.
	v, err = l.RemoveAt(1)
	assert.NilError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, back(t, l))
	verify(t, l)

	v, err = l.RemoveAt(0)
	assert.NilError(t, err)
	assert.Equal(t, 1, v)
	verify(t, l)
}

func TestRemoveAll(t *testing.T) {
	l := New(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, 10, l.Len())

	v, err := l.RemoveAt(7)
	assert.NilError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 9, l.Len())
	for i, v := range l.All() {
		want := i
		if i >= 7 {
			want++
		}
		assert.Check(t, is.Equal(v, want))
	}
	verify(t, l)
}

func TestGetSetAt(t *testing.T) {
	l := New("x", "y", "z")
	for i, want := range []string{"x", "y", "z"} {
		assert.Equal(t, want, must.Do(l.GetAt(i)))
	}

	assert.NilError(t, l.SetAt(2, "Z"))
	assert.NilError(t, l.SetAt(0, "X"))
	assert.DeepEqual(t, []string{"X", "y", "Z"}, l.ToSlice())
	assert.Equal(t, "X", front(t, l))
	assert.Equal(t, "Z", back(t, l))
	verify(t, l)
}

func TestBounds(t *testing.T) {
	l := New(1, 2, 3)
	before := l.ToSlice()

	type testCase struct {
		name string
		op   func() error
	}
	tests := []testCase{
		{"GetAt len", func() error { _, err := l.GetAt(l.Len()); return err }},
		{"GetAt -1", func() error { _, err := l.GetAt(-1); return err }},
		{"SetAt len", func() error { return l.SetAt(l.Len(), 0) }},
		{"SetAt -1", func() error { return l.SetAt(-1, 0) }},
		{"RemoveAt len", func() error { _, err := l.RemoveAt(l.Len()); return err }},
		{"RemoveAt -1", func() error { _, err := l.RemoveAt(-1); return err }},
		{"InsertAt len+1", func() error { return l.InsertAt(l.Len()+1, 0) }},
		{"InsertAt -1", func() error { return l.InsertAt(-1, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			assert.Assert(t, errors.Is(err, ErrOutOfRange))
			var ie *IndexError
			assert.Assert(t, errors.As(err, &ie))
			assert.Equal(t, 3, ie.Len)
			assert.DeepEqual(t, before, l.ToSlice())
			verify(t, l)
		})
	}

	assert.NilError(t, l.InsertAt(l.Len(), 4))
	assert.DeepEqual(t, []int{1, 2, 3, 4}, l.ToSlice())
}

func TestIndexErrorMessage(t *testing.T) {
	l := New(1)
	_, err := l.GetAt(5)
	assert.Error(t, err, "list: GetAt: index 5 out of range for length 1")
}

func TestInsertRemoveInverse(t *testing.T) {
	base := []int{10, 20, 30, 40, 50}
	for i := 0; i <= len(base); i++ {
		l := New(base...)
		assert.NilError(t, l.InsertAt(i, -7))
		v, err := l.RemoveAt(i)
		assert.NilError(t, err)
		assert.Equal(t, -7, v)
		assert.DeepEqual(t, base, l.ToSlice())
		verify(t, l)
	}
}

func TestBackward(t *testing.T) {
	l := New(1, 2, 3, 4)
	var values []int
	var idxs []int
	for i, v := range l.Backward() {
		idxs = append(idxs, i)
		values = append(values, v)
	}
	assert.DeepEqual(t, []int{4, 3, 2, 1}, values)
	assert.DeepEqual(t, []int{3, 2, 1, 0}, idxs)

	// Early break.
	count := 0
	for range l.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestClear(t *testing.T) {
	l := New(1, 2, 3)
	first := l.head
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Check(t, is.Nil(first.next))
	verify(t, l)

	l.Append(5)
	assert.DeepEqual(t, []int{5}, l.ToSlice())
	verify(t, l)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 99 2 3]", New(1, 99, 2, 3).String())
	assert.Equal(t, "[]", New[int]().String())
}

// TestRandomOperations applies a reproducible random sequence of operations to
// both a List and a plain slice and checks that they agree after every step.
func TestRandomOperations(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		src := readers.NewSource(seed)
		l := New[int]()
		var model []int

		for step := 0; step < 2000; step++ {
			v := src.Intn(1000)
			switch src.Intn(8) {
			case 0:
				l.Append(v)
				model = append(model, v)
			case 1:
				l.Prepend(v)
				model = slices.Insert(model, 0, v)
			case 2:
				i := src.Intn(len(model) + 1)
				assert.NilError(t, l.InsertAt(i, v))
				model = slices.Insert(model, i, v)
			case 3, 4:
				if len(model) == 0 {
					_, err := l.RemoveAt(0)
					assert.Assert(t, errors.Is(err, ErrOutOfRange))
					continue
				}
				i := src.Intn(len(model))
				got, err := l.RemoveAt(i)
				assert.NilError(t, err)
				assert.Equal(t, model[i], got)
				model = slices.Delete(model, i, i+1)
			case 5:
				got, err := l.PopFirst()
				if len(model) == 0 {
					assert.Assert(t, errors.Is(err, ErrOutOfRange))
					continue
				}
				assert.NilError(t, err)
				assert.Equal(t, model[0], got)
				model = model[1:]
			case 6:
				got, err := l.PopLast()
				if len(model) == 0 {
					assert.Assert(t, errors.Is(err, ErrOutOfRange))
					continue
				}
				assert.NilError(t, err)
				assert.Equal(t, model[len(model)-1], got)
				model = model[:len(model)-1]
			case 7:
				if len(model) == 0 {
					continue
				}
				i := src.Intn(len(model))
				assert.NilError(t, l.SetAt(i, v))
				model[i] = v
				assert.Equal(t, v, must.Do(l.GetAt(i)))
			}
			assert.Equal(t, len(model), l.Len())
		}
		verify(t, l)
		assert.Assert(t, slices.Equal(model, l.ToSlice()), "seed %d", seed)
	}
}

func front[T any](t *testing.T, l *List[T]) T {
	t.Helper()
	v, ok := l.Front()
	assert.Assert(t, ok)
	return v
}

func back[T any](t *testing.T, l *List[T]) T {
	t.Helper()
	v, ok := l.Back()
	assert.Assert(t, ok)
	return v
}
