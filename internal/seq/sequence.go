package seq

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrIndexOutOfRange is matched by every positional failure in this package.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes a rejected positional access.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// Sequence is an insertion-ordered, positionally addressed container.
// Positional operations are O(n); it is sized for tens of elements.
//
// The zero value is an empty sequence ready to use.
// A Sequence is not safe for concurrent use.
type Sequence[T comparable] struct {
	items []T
}

// New returns a sequence holding a copy of items in order.
func New[T comparable](items ...T) *Sequence[T] {
	return &Sequence[T]{items: slices.Clone(items)}
}

func (s *Sequence[T]) Len() int { return len(s.items) }

func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// Append adds x at the end.
func (s *Sequence[T]) Append(x T) {
	s.items = append(s.items, x)
}

// InsertAt places x at index, shifting later elements right.
// index == Len() appends.
func (s *Sequence[T]) InsertAt(index int, x T) error {
	if index < 0 || index > len(s.items) {
		return &IndexError{Op: "insert", Index: index, Len: len(s.items)}
	}
	s.items = slices.Insert(s.items, index, x)
	return nil
}

func (s *Sequence[T]) Get(index int) (T, error) {
	if err := s.check("get", index); err != nil {
		var zero T
		return zero, err
	}
	return s.items[index], nil
}

// Set replaces the element at index and returns the previous one.
func (s *Sequence[T]) Set(index int, x T) (T, error) {
	if err := s.check("set", index); err != nil {
		var zero T
		return zero, err
	}
	prev := s.items[index]
	s.items[index] = x
	return prev, nil
}

// RemoveAt deletes and returns the element at index, shifting later elements left.
func (s *Sequence[T]) RemoveAt(index int) (T, error) {
	if err := s.check("remove", index); err != nil {
		var zero T
		return zero, err
	}
	removed := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)
	return removed, nil
}

func (s *Sequence[T]) Contains(x T) bool {
	return s.IndexOf(x) >= 0
}

// IndexOf returns the first position holding x, or -1.
func (s *Sequence[T]) IndexOf(x T) int {
	return slices.Index(s.items, x)
}

// Values returns a copy of the elements in order.
func (s *Sequence[T]) Values() []T {
	return slices.Clone(s.items)
}

func (s *Sequence[T]) Clone() *Sequence[T] {
	return New(s.items...)
}

// All iterates positions and elements in order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range s.items {
			if !yield(i, x) {
				return
			}
		}
	}
}

func (s *Sequence[T]) check(op string, index int) error {
	if index < 0 || index >= len(s.items) {
		return &IndexError{Op: op, Index: index, Len: len(s.items)}
	}
	return nil
}
