package set

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrNotFound is returned by Remove when the element is not in the set.
var ErrNotFound = errors.New("set: element not found")

// Set is the minimal contract a set implementation has to satisfy to be
// usable by generic code such as the settest harness.
type Set[T any] interface {
	// Contains reports whether v is in the set.
	Contains(v T) bool
	// Add inserts v. Adding an element that is already present is a no-op.
	Add(v T)
	// Remove deletes v, or returns an error wrapping ErrNotFound.
	Remove(v T) error
	// IsEmpty reports whether the set has no elements.
	IsEmpty() bool
}

// Constructor builds a populated Set from a slice of values.
type Constructor[T any] func(values []T) Set[T]

// NotFound wraps ErrNotFound with the offending element.
func NotFound[T any](v T) error {
	return fmt.Errorf("%w: %v", ErrNotFound, v)
}

// MapSet is a Set backed by the builtin map.
type MapSet[T comparable] struct {
	data map[T]struct{}
}

var _ Set[int] = (*MapSet[int])(nil)

func NewMap[T comparable](values ...T) *MapSet[T] {
	s := &MapSet[T]{
		data: make(map[T]struct{}, len(values)),
	}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *MapSet[T]) Add(v T) {
	if s.data == nil {
		s.data = make(map[T]struct{})
	}
	s.data[v] = struct{}{}
}

func (s *MapSet[T]) Contains(v T) bool {
	_, ok := s.data[v]
	return ok
}

func (s *MapSet[T]) Remove(v T) error {
	if _, ok := s.data[v]; !ok {
		return NotFound(v)
	}
	delete(s.data, v)
	return nil
}

func (s *MapSet[T]) IsEmpty() bool {
	return len(s.data) == 0
}

func (s *MapSet[T]) Len() int {
	return len(s.data)
}

// All iterates the elements in map order.
func (s *MapSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.data {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *MapSet[T]) String() string {
	var sb strings.Builder
	sb.WriteString("MapSet{")
	i := 0
	for v := range s.data {
		if i != 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", v)
		i++
	}
	sb.WriteString("}")
	return sb.String()
}
