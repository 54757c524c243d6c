// Package seqkit provides lazy, pull based sequences and a catalog of adapters to compose them.
//
// # Summary
//
// A Seq produces its values one at a time, only when the consumer pulls the next one.
// Adapters such as Map, Filter, Scan or Zip wrap a Seq and are themselves a Seq,
// so pipelines compose by wrapping, and no work happens until something pulls from the outermost layer.
//
// Sequences are single-cursor values.
// An adapter takes exclusive ownership of its upstream,
// and no Seq is safe for concurrent use.
//
// # Exhaustion
//
// Pull reports exhaustion with ok == false.
// Every source in this package is fused: once exhausted, it stays exhausted.
// A custom Seq is allowed to resume producing values after reporting exhaustion,
// this is implementation-defined and consumers must not assume either behaviour.
// Wrap a Seq with Fuse when the consumer needs exhaustion to be final.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Lazy_evaluation
package seqkit

import (
	"go.llib.dev/pullseq/pkg/errorkit"
)

// Seq is a lazy, ordered, finite or infinite run of values.
type Seq[T any] interface {
	// Pull advances the sequence by exactly one element.
	// When ok is false, the sequence is exhausted and v is the zero value.
	Pull() (v T, ok bool)
}

// DoubleEnded is a Seq that can also be pulled from its back.
// Pull and PullBack may be interleaved freely,
// the sequence is exhausted once the two cursors meet, from both directions.
type DoubleEnded[T any] interface {
	Seq[T]
	PullBack() (v T, ok bool)
}

// Sized is implemented by sequences that know how many values they have left.
type Sized interface {
	Len() int
}

// SizedDoubleEnded is a DoubleEnded sequence that knows its remaining length.
type SizedDoubleEnded[T any] interface {
	DoubleEnded[T]
	Sized
}

// Cloner is implemented by sequences that can hand out an independent copy of themselves.
// The copy starts where the receiver currently is, and the two never affect each other.
//
// Adapters implement Cloner by cloning their upstream and sharing their functions with the copy.
// When the upstream cannot be cloned, Clone returns nil.
type Cloner[T any] interface {
	Clone() Seq[T]
}

// clone returns an independent copy of seq, if seq can make one.
func clone[T any](seq Seq[T]) (Seq[T], bool) {
	c, ok := seq.(Cloner[T])
	if !ok {
		return nil, false
	}
	cp := c.Clone()
	return cp, cp != nil
}

// ErrNotDoubleEnded is the panic payload when PullBack reaches a sequence that can only be pulled from the front.
const ErrNotDoubleEnded errorkit.Error = "sequence cannot be pulled from the back"

// Func turns a pull function into a Seq.
//
// Func makes no promise about exhaustion:
// it forwards whatever the function returns,
// so a function may report exhaustion and later produce values again.
type Func[T any] func() (T, bool)

func (fn Func[T]) Pull() (T, bool) { return fn() }

func pullBack[T any](seq Seq[T]) (T, bool) {
	de, ok := seq.(DoubleEnded[T])
	if !ok {
		panic(ErrNotDoubleEnded.F("%T", seq))
	}
	return de.PullBack()
}
