// Package seqkitcontract holds reusable test suites that any seqkit.Seq implementation can be checked against.
package seqkitcontract

import (
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/pullseq/pkg/seqkit"
	"go.llib.dev/pullseq/port/contract"
)

// Finite checks a finite sequence which must produce at least one value.
// Exhaustion has to be permanent, so Fuse should wrap sources that are not fused on their own.
func Finite[T any](mk contract.Make[seqkit.Seq[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) seqkit.Seq[T] {
		return mk(t)
	})

	s.Then("values can be pulled from the sequence", func(t *testcase.T) {
		assert.NotEmpty(t, seqkit.Collect(subject.Get(t)))
	})

	s.Then("once exhausted, it stays exhausted", func(t *testcase.T) {
		seq := subject.Get(t)
		seqkit.Collect(seq)

		for i, n := 0, t.Random.IntBetween(1, 7); i < n; i++ {
			_, ok := seq.Pull()
			assert.False(t, ok)
		}
	})

	s.Then("the sequence is lazy, values are not produced ahead of pulling", func(t *testcase.T) {
		var pulled int
		seq := seqkit.Inspect(subject.Get(t), func(T) { pulled++ })
		assert.Equal(t, 0, pulled)
		_, ok := seq.Pull()
		assert.True(t, ok)
		assert.Equal(t, 1, pulled)
	})

	return s.AsSuite("finite sequence")
}

// DoubleEnded checks a finite double-ended sequence which must produce at least one value.
// Pulling from the back must yield the same values as pulling from the front, only reversed,
// and any interleaving of the two ends must cover every value exactly once.
func DoubleEnded[T any](mk contract.Make[seqkit.DoubleEnded[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) seqkit.DoubleEnded[T] {
		return mk(t)
	})

	s.Then("pulling from the back yields the front order reversed", func(t *testcase.T) {
		front := seqkit.Collect[T](subject.Get(t))
		back := seqkit.Collect(seqkit.Rev(mk(t)))
		assert.Equal(t, len(front), len(back))
		for i := range front {
			assert.Equal(t, front[i], back[len(back)-1-i])
		}
	})

	s.Then("interleaved pulls from both ends meet without skipping or repeating", func(t *testcase.T) {
		expected := seqkit.Collect[T](mk(t))
		seq := subject.Get(t)

		var head, tail []T
		for {
			var (
				v  T
				ok bool
			)
			if t.Random.Bool() {
				v, ok = seq.Pull()
				if ok {
					head = append(head, v)
				}
			} else {
				v, ok = seq.PullBack()
				if ok {
					tail = append([]T{v}, tail...)
				}
			}
			if !ok {
				break
			}
		}

		assert.Equal(t, expected, append(head, tail...))

		_, ok := seq.Pull()
		assert.False(t, ok, "front should be exhausted once the cursors met")
		_, ok = seq.PullBack()
		assert.False(t, ok, "back should be exhausted once the cursors met")
	})

	return s.AsSuite("double-ended sequence")
}
