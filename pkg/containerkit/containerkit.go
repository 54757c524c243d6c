// Package containerkit connects the gods data structures with seqkit sequences.
//
// gods containers hold their elements as interface{} values.
// Every element is asserted to the requested type when it is pulled,
// and a mismatch panics with ErrTypeMismatch,
// since it means the caller asked for the wrong element type.
package containerkit

import (
	"reflect"

	"github.com/emirpasic/gods/containers"

	"go.llib.dev/pullseq/pkg/errorkit"
	"go.llib.dev/pullseq/pkg/seqkit"
)

const ErrTypeMismatch errorkit.Error = "container element has an unexpected type"

// List is the read side of a gods list, such as arraylist.List or doublylinkedlist.List.
type List interface {
	Get(index int) (interface{}, bool)
	Size() int
}

// FromList returns a double-ended sequence over the elements of a list.
// The size of the list is captured at construction,
// the list must not be modified while the sequence is in use.
func FromList[T any](l List) *ListSeq[T] {
	return &ListSeq[T]{list: l, back: l.Size()}
}

type ListSeq[T any] struct {
	list  List
	front int
	back  int // exclusive
}

func (s *ListSeq[T]) Pull() (T, bool) {
	if s.back <= s.front {
		var zero T
		return zero, false
	}
	v, ok := s.list.Get(s.front)
	s.front++
	if !ok {
		return s.exhaust()
	}
	return cast[T](v), true
}

func (s *ListSeq[T]) PullBack() (T, bool) {
	if s.back <= s.front {
		var zero T
		return zero, false
	}
	s.back--
	v, ok := s.list.Get(s.back)
	if !ok {
		return s.exhaust()
	}
	return cast[T](v), true
}

// exhaust handles a list that shrank underneath the sequence.
func (s *ListSeq[T]) exhaust() (T, bool) {
	s.front, s.back = 0, 0
	var zero T
	return zero, false
}

func (s *ListSeq[T]) Len() int { return s.back - s.front }

func (s *ListSeq[T]) Clone() seqkit.Seq[T] {
	c := *s
	return &c
}

// Values takes a snapshot of the container's values in the container's own order,
// which is sorted order for trees and sets built on them.
func Values[T any](c containers.Container) *seqkit.SliceSeq[T] {
	return seqkit.FromSlice(castAll[T](c.Values()))
}

// Keys takes a snapshot of a map's keys.
// Ordered maps, such as treemap.Map, return them sorted.
func Keys[K any](m interface{ Keys() []interface{} }) *seqkit.SliceSeq[K] {
	return seqkit.FromSlice(castAll[K](m.Keys()))
}

// Iterator is the forward-walking part of the gods iterators.
type Iterator interface {
	Next() bool
	Value() interface{}
}

// FromIterator pulls values lazily from a gods iterator.
// Unlike Values, nothing is copied up front,
// so modifying the container while the sequence is in use is undefined behaviour.
func FromIterator[T any](it Iterator) seqkit.Seq[T] {
	return seqkit.Fuse(seqkit.Func[T](func() (T, bool) {
		if !it.Next() {
			var zero T
			return zero, false
		}
		return cast[T](it.Value()), true
	}))
}

// Adder is implemented by the gods lists and sets.
type Adder interface {
	Add(values ...interface{})
}

// Extend adds every remaining value of seq to the container, and returns how many values were added.
func Extend[T any](c Adder, seq seqkit.Seq[T]) int {
	var n int
	seqkit.ForEach(seq, func(v T) {
		c.Add(v)
		n++
	})
	return n
}

func castAll[T any](vs []interface{}) []T {
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		out = append(out, cast[T](v))
	}
	return out
}

func cast[T any](v interface{}) T {
	if v == nil {
		var zero T
		return zero
	}
	out, ok := v.(T)
	if !ok {
		panic(ErrTypeMismatch.F("%T is not %s", v, reflect.TypeOf((*T)(nil)).Elem()))
	}
	return out
}
