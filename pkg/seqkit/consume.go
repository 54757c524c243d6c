package seqkit

import (
	"strings"

	"go.llib.dev/pullseq/pkg/compare"
	"golang.org/x/exp/constraints"
)

// Number is the set of types Sum and Product can work with.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Collect pulls every remaining value of seq into a slice.
func Collect[T any](seq Seq[T]) []T {
	if seq == nil {
		return nil
	}
	return AppendTo(make([]T, 0), seq)
}

// AppendTo extends dst with every remaining value of seq.
func AppendTo[T any](dst []T, seq Seq[T]) []T {
	for {
		v, ok := seq.Pull()
		if !ok {
			return dst
		}
		dst = append(dst, v)
	}
}

// CollectString concatenates a sequence of runes.
func CollectString(seq Seq[rune]) string {
	var sb strings.Builder
	ForEach(seq, func(r rune) { sb.WriteRune(r) })
	return sb.String()
}

// Fold reduces seq into a single value, threading an accumulator through fn.
func Fold[A, T any](seq Seq[T], initial A, fn func(A, T) A) A {
	acc := initial
	ForEach(seq, func(v T) { acc = fn(acc, v) })
	return acc
}

// ForEach calls fn with every remaining value of seq.
func ForEach[T any](seq Seq[T], fn func(T)) {
	for {
		v, ok := seq.Pull()
		if !ok {
			return
		}
		fn(v)
	}
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in a sequence but don't want to do anything else.
func Count[T any](seq Seq[T]) int {
	return Fold(seq, 0, func(n int, _ T) int { return n + 1 })
}

func Sum[T Number](seq Seq[T]) T {
	return Fold(seq, T(0), func(sum T, v T) T { return sum + v })
}

func Product[T Number](seq Seq[T]) T {
	return Fold(seq, T(1), func(product T, v T) T { return product * v })
}

// Max returns the greatest value of seq.
// A NaN anywhere in seq panics with compare.ErrUnordered, even when it is the only value.
func Max[T constraints.Ordered](seq Seq[T]) (T, bool) {
	v, ok := MaxBy(seq, compare.Values[T])
	return ordered(v, ok)
}

// Min returns the least value of seq.
// A NaN anywhere in seq panics with compare.ErrUnordered, even when it is the only value.
func Min[T constraints.Ordered](seq Seq[T]) (T, bool) {
	v, ok := MinBy(seq, compare.Values[T])
	return ordered(v, ok)
}

// ordered makes sure v was compared at least once, so a lone NaN is caught as well.
func ordered[T constraints.Ordered](v T, ok bool) (T, bool) {
	if ok {
		compare.Values(v, v)
	}
	return v, ok
}

// MaxBy returns the greatest value of seq according to cmp.
// When several values are equally the greatest, the last of them is returned.
//
// cmp must be able to order any two values of seq.
// When it cannot, it should panic rather than guess, as compare.Values does.
func MaxBy[T any](seq Seq[T], cmp func(a, b T) int) (T, bool) {
	best, ok := seq.Pull()
	if !ok {
		return best, false
	}
	ForEach(seq, func(v T) {
		if compare.IsMoreOrEqual(cmp(v, best)) {
			best = v
		}
	})
	return best, true
}

// MinBy returns the least value of seq according to cmp.
// When several values are equally the least, the first of them is returned.
func MinBy[T any](seq Seq[T], cmp func(a, b T) int) (T, bool) {
	best, ok := seq.Pull()
	if !ok {
		return best, false
	}
	ForEach(seq, func(v T) {
		if compare.IsLess(cmp(v, best)) {
			best = v
		}
	})
	return best, true
}

// MaxByKey returns the value of seq with the greatest key.
// key is called once per value.
func MaxByKey[T any, K constraints.Ordered](seq Seq[T], key func(T) K) (T, bool) {
	return byKey(seq, key, compare.IsMoreOrEqual)
}

// MinByKey returns the value of seq with the least key.
// key is called once per value.
func MinByKey[T any, K constraints.Ordered](seq Seq[T], key func(T) K) (T, bool) {
	return byKey(seq, key, compare.IsLess)
}

func byKey[T any, K constraints.Ordered](seq Seq[T], key func(T) K, replace func(cmp int) bool) (T, bool) {
	best, ok := seq.Pull()
	if !ok {
		return best, false
	}
	bestKey := key(best)
	ForEach(seq, func(v T) {
		k := key(v)
		if replace(compare.Values(k, bestKey)) {
			best, bestKey = v, k
		}
	})
	return best, true
}

// Any reports whether pred holds for at least one value.
// It stops pulling at the first match.
func Any[T any](seq Seq[T], pred func(T) bool) bool {
	_, ok := Find(seq, pred)
	return ok
}

// All reports whether pred holds for every value.
// It stops pulling at the first mismatch.
func All[T any](seq Seq[T], pred func(T) bool) bool {
	return !Any(seq, func(v T) bool { return !pred(v) })
}

// Find returns the first value for which pred holds.
// The values after it are left in seq.
func Find[T any](seq Seq[T], pred func(T) bool) (T, bool) {
	for {
		v, ok := seq.Pull()
		if !ok {
			return v, false
		}
		if pred(v) {
			return v, true
		}
	}
}

// Position returns the zero-based index of the first value for which pred holds.
func Position[T any](seq Seq[T], pred func(T) bool) (int, bool) {
	for i := 0; ; i++ {
		v, ok := seq.Pull()
		if !ok {
			return 0, false
		}
		if pred(v) {
			return i, true
		}
	}
}

// RPosition searches from the back, and returns the front based index of the last value for which pred holds.
func RPosition[T any](seq SizedDoubleEnded[T], pred func(T) bool) (int, bool) {
	i := seq.Len()
	for {
		v, ok := seq.PullBack()
		if !ok {
			return 0, false
		}
		i--
		if pred(v) {
			return i, true
		}
	}
}

// Nth consumes the next n values and returns the one after them.
// Nth(seq, 0) is the same as a single Pull.
func Nth[T any](seq Seq[T], n int) (T, bool) {
	for ; 0 < n; n-- {
		if v, ok := seq.Pull(); !ok {
			return v, false
		}
	}
	return seq.Pull()
}

// Last consumes seq and returns its final value.
// For a DoubleEnded sequence, a single PullBack is the cheaper way to get there.
func Last[T any](seq Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	ForEach(seq, func(v T) {
		last = v
		ok = true
	})
	return last, ok
}

// Partition splits seq into the values for which pred holds and the rest, keeping their order.
func Partition[T any](seq Seq[T], pred func(T) bool) (matching, rest []T) {
	ForEach(seq, func(v T) {
		if pred(v) {
			matching = append(matching, v)
		} else {
			rest = append(rest, v)
		}
	})
	return matching, rest
}

// Equal reports whether a and b yield the same values in the same order.
func Equal[T comparable](a, b Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but uses eq to compare the values.
func EqualFunc[A, B any](a Seq[A], b Seq[B], eq func(A, B) bool) bool {
	for {
		va, okA := a.Pull()
		vb, okB := b.Pull()
		if !okA || !okB {
			return okA == okB
		}
		if !eq(va, vb) {
			return false
		}
	}
}

// Compare compares a and b lexicographically.
// The first unequal pair decides, and a sequence that ends first is the lesser one.
func Compare[T constraints.Ordered](a, b Seq[T]) int {
	return CompareFunc(a, b, compare.Values[T])
}

// CompareFunc is like Compare, but uses cmp to compare the values.
func CompareFunc[A, B any](a Seq[A], b Seq[B], cmp func(A, B) int) int {
	for {
		va, okA := a.Pull()
		vb, okB := b.Pull()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		if c := cmp(va, vb); c != 0 {
			return c
		}
	}
}
