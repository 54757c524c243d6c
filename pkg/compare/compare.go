// Package compare holds the three-way comparison helpers the sequence reducers are built on.
package compare

import (
	"strings"

	"go.llib.dev/pullseq/pkg/errorkit"
	"golang.org/x/exp/constraints"
)

// ErrUnordered is the panic payload when two values have no defined order between them, such as a NaN.
const ErrUnordered errorkit.Error = "values cannot be ordered"

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool {
	return IsMore(cmp)
}

// IsGreaterOrEqual reports whether the receiver is greater than or equal to another value.
func IsGreaterOrEqual(cmp int) bool {
	return IsMoreOrEqual(cmp)
}

// Values compares a and b and returns:
//   - -1 if a  < b;
//   -  0 if a == b;
//   - +1 if a  > b.
//
// Unlike cmp.Compare, Values refuses to invent an order for NaN.
// Comparing a NaN is treated as a caller defect and panics with ErrUnordered.
func Values[T constraints.Ordered](a, b T) int {
	if isNaN(a) || isNaN(b) {
		panic(ErrUnordered.F("%v <=> %v", a, b))
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Numbers[T constraints.Integer | constraints.Float](a, b T) int {
	return Values(a, b)
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Reverse flips the direction of a comparison function.
func Reverse[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return cmp(b, a) }
}

// By derives a comparison function from a key extractor.
func By[T any, K constraints.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int { return Values(key(a), key(b)) }
}

// isNaN only ever holds for floating point values.
func isNaN[T constraints.Ordered](v T) bool {
	return v != v
}
