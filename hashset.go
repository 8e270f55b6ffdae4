// Package hashset implements an unordered set on top of a chained hash table.
//
// The table is an array of buckets, each bucket a slice of entries. An element
// lives in bucket hash(element) % capacity. The table doubles once more than
// half of the buckets' worth of elements are stored and halves once fewer than
// a quarter are, so Add and Remove stay amortized O(1).
//
// A HashSet is not safe for concurrent use.
package hashset

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/adapap/hashset/internal/logfields"
	"github.com/adapap/hashset/set"
)

const (
	// DefaultCapacity is the number of buckets of a set built without WithCapacity.
	DefaultCapacity = 16
	// DefaultMinCapacity is the smallest number of buckets a set shrinks to.
	DefaultMinCapacity = 1
)

type entry[T any] struct {
	key   uint64
	value T
}

// HashSet is a set of T. The zero value is not usable; build one with New,
// NewFunc, FromSlice or FromSeq.
type HashSet[T any] struct {
	hash  func(T) uint64
	equal func(a, b T) bool

	buckets [][]entry[T]
	count   int
	floor   int
	logger  *slog.Logger
}

var _ set.Set[int] = (*HashSet[int])(nil)

// Option configures a HashSet at construction.
type Option func(*options)

type options struct {
	capacity    int
	minCapacity int
	logger      *slog.Logger
}

// WithCapacity sets the initial number of buckets. It must be at least 1.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithMinCapacity sets the number of buckets below which the set never
// shrinks. Values below 1 are treated as 1.
func WithMinCapacity(n int) Option {
	return func(o *options) { o.minCapacity = n }
}

// WithLogger logs every resize at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{
		capacity:    DefaultCapacity,
		minCapacity: DefaultMinCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.minCapacity < 1 {
		o.minCapacity = 1
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// New returns an empty set of comparable elements hashed with hash.
func New[T comparable](hash func(T) uint64, opts ...Option) *HashSet[T] {
	return NewFunc(hash, func(a, b T) bool { return a == b }, opts...)
}

// NewFunc returns an empty set whose elements are keyed by hash and compared
// with equal. Elements that are equal must produce the same key. The key of
// each element is computed once, on insertion.
func NewFunc[T any](hash func(T) uint64, equal func(a, b T) bool, opts ...Option) *HashSet[T] {
	if hash == nil || equal == nil {
		panic("hashset: nil hash or equal function")
	}
	o := buildOptions(opts)
	if o.capacity < 1 {
		panic(fmt.Sprintf("hashset: invalid capacity %d", o.capacity))
	}
	return &HashSet[T]{
		hash:    hash,
		equal:   equal,
		buckets: make([][]entry[T], o.capacity),
		floor:   o.minCapacity,
		logger:  o.logger,
	}
}

// FromSlice returns a set holding the distinct elements of values. The table
// starts with at least 2*len(values) buckets so populating it never resizes.
func FromSlice[T comparable](hash func(T) uint64, values []T, opts ...Option) *HashSet[T] {
	return FromSliceFunc(hash, func(a, b T) bool { return a == b }, values, opts...)
}

// FromSliceFunc is FromSlice with a caller-supplied equality.
func FromSliceFunc[T any](hash func(T) uint64, equal func(a, b T) bool, values []T, opts ...Option) *HashSet[T] {
	o := buildOptions(opts)
	capacity := max(o.capacity, 2*len(values))
	s := NewFunc(hash, equal, append(opts[:len(opts):len(opts)], WithCapacity(capacity))...)
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// FromSeq collects seq and returns FromSlice of the result.
func FromSeq[T comparable](hash func(T) uint64, seq iter.Seq[T], opts ...Option) *HashSet[T] {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	return FromSlice(hash, values, opts...)
}

// Constructor adapts FromSlice to the set.Constructor contract.
func Constructor[T comparable](hash func(T) uint64, opts ...Option) set.Constructor[T] {
	return func(values []T) set.Set[T] {
		return FromSlice(hash, values, opts...)
	}
}

// Len returns the number of elements in the set.
func (s *HashSet[T]) Len() int { return s.count }

// Cap returns the current number of buckets.
func (s *HashSet[T]) Cap() int { return len(s.buckets) }

func (s *HashSet[T]) IsEmpty() bool { return s.count == 0 }

func (s *HashSet[T]) bucket(key uint64) int {
	return int(key % uint64(len(s.buckets)))
}

func (s *HashSet[T]) find(key uint64, v T) (int, int) {
	b := s.bucket(key)
	for i, e := range s.buckets[b] {
		if e.key == key && s.equal(e.value, v) {
			return b, i
		}
	}
	return b, -1
}

// Contains reports whether v is in the set.
func (s *HashSet[T]) Contains(v T) bool {
	_, i := s.find(s.hash(v), v)
	return i >= 0
}

// Add inserts v unless an equal element is already present.
func (s *HashSet[T]) Add(v T) {
	key := s.hash(v)
	b, i := s.find(key, v)
	if i >= 0 {
		return
	}
	s.buckets[b] = append(s.buckets[b], entry[T]{key: key, value: v})
	s.count++
	if s.count*2 > len(s.buckets) {
		s.resize(2 * len(s.buckets))
	}
}

// Remove deletes v. It returns an error wrapping set.ErrNotFound and leaves
// the set untouched if v is absent.
func (s *HashSet[T]) Remove(v T) error {
	b, i := s.find(s.hash(v), v)
	if i < 0 {
		return set.NotFound(v)
	}
	chain := s.buckets[b]
	last := len(chain) - 1
	chain[i] = chain[last]
	chain[last] = entry[T]{}
	s.buckets[b] = chain[:last]
	s.count--
	if s.count*4 < len(s.buckets) {
		s.resize(max(len(s.buckets)/2, s.floor))
	}
	return nil
}

// resize rehashes every entry into n buckets using the cached keys.
func (s *HashSet[T]) resize(n int) {
	if n == len(s.buckets) {
		return
	}
	old := s.buckets
	s.buckets = make([][]entry[T], n)
	for _, chain := range old {
		for _, e := range chain {
			b := s.bucket(e.key)
			s.buckets[b] = append(s.buckets[b], e)
		}
	}
	s.logger.Debug("hashset resized",
		logfields.OldCapacity(len(old)),
		logfields.NewCapacity(n),
		logfields.Count(s.count))
}

// All returns an iterator over the elements, bucket by bucket. The order is
// unspecified and changes when the set resizes. The set must not be modified
// while iterating.
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, chain := range s.buckets {
			for _, e := range chain {
				if !yield(e.value) {
					return
				}
			}
		}
	}
}

func (s *HashSet[T]) String() string {
	var sb strings.Builder
	sb.WriteString("HashSet{")
	i := 0
	for v := range s.All() {
		if i != 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", v)
		i++
	}
	sb.WriteString("}")
	return sb.String()
}
