package seqkit

import (
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
)

// FromSlice returns a double-ended sequence over the elements of vs.
// The slice is not copied, it must not be modified while the sequence is in use.
func FromSlice[T any](vs []T) *SliceSeq[T] {
	return &SliceSeq[T]{vs: vs, back: len(vs)}
}

type SliceSeq[T any] struct {
	vs    []T
	front int
	back  int // exclusive
}

func (s *SliceSeq[T]) Pull() (T, bool) {
	if s.back <= s.front {
		var zero T
		return zero, false
	}
	v := s.vs[s.front]
	s.front++
	return v, true
}

func (s *SliceSeq[T]) PullBack() (T, bool) {
	if s.back <= s.front {
		var zero T
		return zero, false
	}
	s.back--
	return s.vs[s.back], true
}

func (s *SliceSeq[T]) Len() int { return s.back - s.front }

func (s *SliceSeq[T]) Clone() Seq[T] {
	c := *s
	return &c
}

// Range returns the integers of the half-open interval [begin, end).
// When end is not greater than begin, the sequence is empty.
func Range[I constraints.Integer](begin, end I) *RangeSeq[I] {
	if end < begin {
		end = begin
	}
	return &RangeSeq[I]{front: begin, back: end}
}

type RangeSeq[I constraints.Integer] struct {
	front I
	back  I // exclusive
}

func (r *RangeSeq[I]) Pull() (I, bool) {
	if r.back <= r.front {
		return 0, false
	}
	v := r.front
	r.front++
	return v, true
}

func (r *RangeSeq[I]) PullBack() (I, bool) {
	if r.back <= r.front {
		return 0, false
	}
	r.back--
	return r.back, true
}

func (r *RangeSeq[I]) Len() int { return int(r.back) - int(r.front) }

func (r *RangeSeq[I]) Clone() Seq[I] {
	c := *r
	return &c
}

// RangeFrom counts upwards from begin without an end.
// Overflowing the integer type wraps around.
func RangeFrom[I constraints.Integer](begin I) Seq[I] {
	return &counterSeq[I]{next: begin}
}

type counterSeq[I constraints.Integer] struct{ next I }

func (c *counterSeq[I]) Pull() (I, bool) {
	v := c.next
	c.next++
	return v, true
}

func (c *counterSeq[I]) Clone() Seq[I] {
	n := *c
	return &n
}

// Empty returns a sequence that is exhausted from the start.
func Empty[T any]() DoubleEnded[T] {
	return FromSlice[T](nil)
}

// Once returns a sequence with the single value v.
func Once[T any](v T) DoubleEnded[T] {
	return FromSlice([]T{v})
}

// Repeat yields v forever, from both ends.
func Repeat[T any](v T) DoubleEnded[T] {
	return repeatSeq[T]{v: v}
}

type repeatSeq[T any] struct{ v T }

func (r repeatSeq[T]) Pull() (T, bool)     { return r.v, true }
func (r repeatSeq[T]) PullBack() (T, bool) { return r.v, true }
func (r repeatSeq[T]) Clone() Seq[T]       { return r }

// Runes returns the unicode code points of s.
func Runes(s string) *SliceSeq[rune] {
	return FromSlice([]rune(s))
}

// Lines returns the lines of s without their line terminators.
// Both "\n" and "\r\n" end a line, and a final line terminator does not start an empty line.
func Lines(s string) *SliceSeq[string] {
	var lines []string
	for line := range strings.Lines(s) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
	}
	return FromSlice(lines)
}

// Fields returns the whitespace separated words of s.
func Fields(s string) *SliceSeq[string] {
	return FromSlice(strings.Fields(s))
}

// FromIter adapts a push style iter.Seq into a Seq.
// The returned stop function releases the underlying iterator,
// and must be called when the sequence is abandoned before exhaustion.
func FromIter[T any](i iter.Seq[T]) (Seq[T], func()) {
	next, stop := iter.Pull(i)
	return Func[T](next), stop
}

// ToIter exposes a Seq as an iter.Seq, so it can be used with a for range loop.
// The result is single use, since ranging over it pulls from seq.
func ToIter[T any](seq Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := seq.Pull()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
