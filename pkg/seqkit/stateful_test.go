package seqkit_test

import (
	"strconv"
	"testing"
	"unicode"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/pullseq/pkg/seqkit"
)

func TestScan(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test(`the state is carried between pulls, and the sequence halts when fn says so`, func(t *testcase.T) {
		seq := seqkit.Scan(seqkit.Range(0, 10), 0, func(sum *int, n int) (int, bool) {
			*sum += n
			if 10 < *sum {
				return 0, false
			}
			return n * n, true
		})
		t.Must.Equal([]int{0, 1, 4, 9, 16}, seqkit.Collect(seq))
	})

	s.Test(`once halted, upstream is not pulled again`, func(t *testcase.T) {
		var pulls int
		src := seqkit.Inspect(seqkit.RangeFrom(0), func(int) { pulls++ })
		seq := seqkit.Scan[string](src, struct{}{}, func(_ *struct{}, n int) (string, bool) {
			return strconv.Itoa(n), n < 2
		})
		t.Must.Equal([]string{"0", "1"}, seqkit.Collect(seq))
		_, ok := seq.Pull()
		assert.False(t, ok)
		assert.Equal(t, 3, pulls)
	})
}

func TestTakeWhile_andSkipWhile(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 20), func() int { return t.Random.IntBetween(0, 10) })
	})
	pred := func(n int) bool { return n < 7 }

	s.Then(`the same predicate splits the source into a prefix and the rest`, func(t *testcase.T) {
		taken := seqkit.Collect(seqkit.TakeWhile[int](seqkit.FromSlice(values.Get(t)), pred))
		skipped := seqkit.Collect(seqkit.SkipWhile[int](seqkit.FromSlice(values.Get(t)), pred))
		t.Must.Equal(values.Get(t), append(taken, skipped...))
	})

	s.Test(`TakeWhile consumes the first failing value`, func(t *testcase.T) {
		src := seqkit.FromSlice([]int{1, 2, 9, 3})
		t.Must.Equal([]int{1, 2}, seqkit.Collect(seqkit.TakeWhile[int](src, pred)))
		t.Must.Equal([]int{3}, seqkit.Collect[int](src))
	})

	s.Test(`TakeWhile stays halted even if later values would match`, func(t *testcase.T) {
		seq := seqkit.TakeWhile[int](seqkit.FromSlice([]int{1, 9, 2}), pred)
		seqkit.Collect(seq)
		_, ok := seq.Pull()
		assert.False(t, ok)
	})

	s.Test(`SkipWhile only skips the leading values`, func(t *testcase.T) {
		seq := seqkit.SkipWhile[int](seqkit.FromSlice([]int{1, 2, 9, 3, 8}), pred)
		t.Must.Equal([]int{9, 3, 8}, seqkit.Collect(seq))
	})

	s.Test(`a shared upstream can be consumed by multiple adapters in turn`, func(t *testcase.T) {
		lines := seqkit.Lines("# header\n# more header\nbody 1\nbody 2")
		header := seqkit.Collect(seqkit.TakeWhile[string](lines, func(l string) bool { return l[0] == '#' }))
		t.Must.Equal([]string{"# header", "# more header"}, header)
		t.Must.Equal([]string{"body 2"}, seqkit.Collect[string](lines), "the first body line was consumed by TakeWhile")
	})
}

func TestTake(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test(`at most n values are yielded`, func(t *testcase.T) {
		t.Must.Equal([]int{0, 1, 2}, seqkit.Collect(seqkit.Take(seqkit.RangeFrom(0), 3)))
		t.Must.Equal([]int{0, 1}, seqkit.Collect(seqkit.Take[int](seqkit.Range(0, 2), 5)))
		t.Must.Equal([]int{}, seqkit.Collect(seqkit.Take[int](seqkit.Range(0, 2), 0)))
	})

	s.Test(`upstream is left untouched after n values`, func(t *testcase.T) {
		src := seqkit.Range(0, 5)
		seqkit.Collect(seqkit.Take[int](src, 2))
		assert.Equal(t, 3, src.Len())
	})
}

func TestSkip(t *testing.T) {
	t.Run("", func(t *testing.T) {
		assert.Equal(t, []int{3, 4}, seqkit.Collect(seqkit.Skip[int](seqkit.Range(0, 5), 3)))
	})
	t.Run("skipping more than available", func(t *testing.T) {
		assert.Equal(t, []int{}, seqkit.Collect(seqkit.Skip[int](seqkit.Range(0, 5), 7)))
	})
	t.Run("skipping is lazy", func(t *testing.T) {
		var pulls int
		seq := seqkit.Skip(seqkit.Inspect(seqkit.RangeFrom(0), func(int) { pulls++ }), 3)
		assert.Equal(t, 0, pulls)
		v, _ := seq.Pull()
		assert.Equal(t, 3, v)
		assert.Equal(t, 4, pulls)
	})
}

func TestEnumerate(t *testing.T) {
	got := seqkit.Collect(seqkit.Enumerate(seqkit.Fields("foo bar baz")))
	assert.Equal(t, []seqkit.Indexed[string]{
		{Index: 0, Value: "foo"},
		{Index: 1, Value: "bar"},
		{Index: 2, Value: "baz"},
	}, got)
}

func TestPeekable(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test(`peek does not advance the sequence`, func(t *testcase.T) {
		seq := seqkit.Peekable[int](seqkit.Range(1, 3))
		for i := 0; i < 3; i++ {
			v, ok := seq.Peek()
			assert.True(t, ok)
			assert.Equal(t, 1, v)
		}
		t.Must.Equal([]int{1, 2}, seqkit.Collect[int](seq))
	})

	s.Test(`upstream is pulled at most once per upcoming value, exhaustion included`, func(t *testcase.T) {
		var pulls int
		seq := seqkit.Peekable(seqkit.Func[int](func() (int, bool) {
			pulls++
			return 0, false
		}))
		seq.Peek()
		seq.Peek()
		_, ok := seq.Pull()
		assert.False(t, ok)
		assert.Equal(t, 1, pulls)
	})

	s.Test(`NextIf only consumes a matching value`, func(t *testcase.T) {
		seq := seqkit.Peekable[rune](seqkit.Runes("12,3"))
		_, ok := seq.NextIf(func(r rune) bool { return r == ',' })
		assert.False(t, ok)
		v, ok := seq.NextIf(unicode.IsDigit)
		assert.True(t, ok)
		assert.Equal(t, '1', v)
	})

	s.Test(`parsing numbers separated by commas`, func(t *testcase.T) {
		seq := seqkit.Peekable[rune](seqkit.Runes("226153980,1766319049"))
		var numbers []uint64
		for {
			var n uint64
			for {
				r, ok := seq.NextIf(unicode.IsDigit)
				if !ok {
					break
				}
				n = n*10 + uint64(r-'0')
			}
			numbers = append(numbers, n)
			if _, ok := seq.Pull(); !ok {
				break
			}
		}
		t.Must.Equal([]uint64{226153980, 1766319049}, numbers)
	})

	s.Test(`from the back, a peeked value is handed out last`, func(t *testcase.T) {
		seq := seqkit.Peekable[int](seqkit.Range(0, 3))
		seq.Peek()
		t.Must.Equal([]int{2, 1, 0}, seqkit.Collect(seqkit.Rev[int](seq)))
	})

	s.Test(`wrapping a peekable returns it as is`, func(t *testcase.T) {
		seq := seqkit.Peekable[int](seqkit.Range(0, 3))
		assert.True(t, seq == seqkit.Peekable[int](seq))
	})
}

func TestCycle(t *testing.T) {
	s := testcase.NewSpec(t)

	directions := []string{"North", "East", "South", "West"}

	s.Test(`a cloneable source restarts from its starting point`, func(t *testcase.T) {
		seq := seqkit.Take(seqkit.Cycle[string](seqkit.FromSlice(directions)), 6)
		t.Must.Equal([]string{"North", "East", "South", "West", "North", "East"}, seqkit.Collect(seq))
	})

	s.Test(`a source that cannot be cloned is replayed`, func(t *testcase.T) {
		var pulls int
		src := seqkit.Func[string](func() (string, bool) {
			if len(directions) <= pulls {
				return "", false
			}
			defer func() { pulls++ }()
			return directions[pulls], true
		})
		seq := seqkit.Take(seqkit.Cycle[string](seqkit.Fuse[string](src)), 10)
		t.Must.Equal([]string{"North", "East", "South", "West", "North", "East", "South", "West", "North", "East"}, seqkit.Collect(seq))
		assert.Equal(t, len(directions), pulls)
	})

	s.Test(`a cloneable pipeline runs its functions again in every round`, func(t *testcase.T) {
		var calls int
		src := seqkit.Inspect[int](seqkit.FromSlice([]int{1, 2}), func(int) { calls++ })
		got := seqkit.Collect(seqkit.Take(seqkit.Cycle(src), 6))
		t.Must.Equal([]int{1, 2, 1, 2, 1, 2}, got)
		assert.Equal(t, 6, calls)
	})

	s.Test(`an infinite cloneable pipeline is not buffered, it simply never restarts`, func(t *testcase.T) {
		double := func(n int) int { return n * 2 }
		seq := seqkit.Take(seqkit.Cycle(seqkit.Map(seqkit.RangeFrom(0), double)), 5)
		t.Must.Equal([]int{0, 2, 4, 6, 8}, seqkit.Collect(seq))
	})

	s.Test(`an empty source makes an empty cycle`, func(t *testcase.T) {
		_, ok := seqkit.Cycle(seqkit.Empty[int]()).Pull()
		assert.False(t, ok)
		_, ok = seqkit.Cycle(seqkit.Filter(seqkit.Range(0, 3), func(int) bool { return false })).Pull()
		assert.False(t, ok)
	})

	s.Test(`a cloned cycle starts where the source was when the cycle was made`, func(t *testcase.T) {
		src := seqkit.FromSlice(directions)
		src.Pull()
		seq := seqkit.Take(seqkit.Cycle[string](src), 4)
		t.Must.Equal([]string{"East", "South", "West", "East"}, seqkit.Collect(seq))
	})
}

func TestClone_adapters(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test(`a cloned pipeline continues independently from where the original is`, func(t *testcase.T) {
		seq := seqkit.Skip(seqkit.Filter(seqkit.Map(seqkit.Range(0, 10), func(n int) int { return n * 3 }),
			func(n int) bool { return n%2 == 0 }), 1)
		v, ok := seq.Pull()
		assert.True(t, ok)
		assert.Equal(t, 6, v)

		c, ok := seq.(seqkit.Cloner[int])
		assert.True(t, ok)
		cp := c.Clone()
		assert.NotNil(t, cp)

		t.Must.Equal([]int{12, 18, 24}, seqkit.Collect(seq))
		t.Must.Equal([]int{12, 18, 24}, seqkit.Collect(cp))
	})

	s.Test(`combinators clone both sides`, func(t *testcase.T) {
		seq := seqkit.Zip(seqkit.Enumerate(seqkit.Fields("a b")), seqkit.Rev(seqkit.Chain[int](seqkit.Range(0, 2), seqkit.Once(9))))
		cp := seq.(seqkit.Cloner[seqkit.Pair[seqkit.Indexed[string], int]]).Clone()
		assert.NotNil(t, cp)
		assert.Equal(t, seqkit.Collect(seq), seqkit.Collect(cp))
	})

	s.Test(`an upstream that cannot be cloned makes the adapter uncloneable`, func(t *testcase.T) {
		seq := seqkit.Map(seqkit.Func[int](func() (int, bool) { return 0, false }), strconv.Itoa)
		assert.Nil(t, seq.(seqkit.Cloner[string]).Clone())
	})
}
