package seqkit

// Pair holds one value from each side of a Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip walks a and b in lockstep and yields their values in pairs.
// It is exhausted as soon as either side is.
// a is pulled first, so when a runs out, b is left untouched.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return &zipSeq[A, B]{a: a, b: b}
}

type zipSeq[A, B any] struct {
	a Seq[A]
	b Seq[B]
}

func (z *zipSeq[A, B]) Pull() (Pair[A, B], bool) {
	va, ok := z.a.Pull()
	if !ok {
		return Pair[A, B]{}, false
	}
	vb, ok := z.b.Pull()
	if !ok {
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: va, Second: vb}, true
}

func (z *zipSeq[A, B]) Clone() Seq[Pair[A, B]] {
	a, ok := clone(z.a)
	if !ok {
		return nil
	}
	b, ok := clone(z.b)
	if !ok {
		return nil
	}
	return &zipSeq[A, B]{a: a, b: b}
}

// Chain yields every value of a, then every value of b.
// The switch to b happens on the first exhaustion of a, and it is permanent.
//
// From the back, b is drained first and a after it.
// This requires both a and b to be DoubleEnded.
func Chain[T any](a, b Seq[T]) DoubleEnded[T] {
	return &chainSeq[T]{a: a, b: b}
}

type chainSeq[T any] struct {
	a, b      Seq[T]
	aDone     bool
	bBackDone bool
}

func (c *chainSeq[T]) Pull() (T, bool) {
	if !c.aDone {
		if v, ok := c.a.Pull(); ok {
			return v, true
		}
		c.aDone = true
	}
	return c.b.Pull()
}

func (c *chainSeq[T]) PullBack() (T, bool) {
	if !c.bBackDone {
		if v, ok := pullBack(c.b); ok {
			return v, true
		}
		c.bBackDone = true
	}
	if c.aDone {
		var zero T
		return zero, false
	}
	return pullBack(c.a)
}

func (c *chainSeq[T]) Clone() Seq[T] {
	a, ok := clone(c.a)
	if !ok {
		return nil
	}
	b, ok := clone(c.b)
	if !ok {
		return nil
	}
	return &chainSeq[T]{a: a, b: b, aDone: c.aDone, bBackDone: c.bBackDone}
}

// Rev flips the direction of a double-ended sequence:
// Pull takes from the back of seq and PullBack from its front.
func Rev[T any](seq DoubleEnded[T]) DoubleEnded[T] {
	if r, ok := seq.(*revSeq[T]); ok {
		return r.src
	}
	return &revSeq[T]{src: seq}
}

type revSeq[T any] struct {
	src DoubleEnded[T]
}

func (r *revSeq[T]) Pull() (T, bool)     { return r.src.PullBack() }
func (r *revSeq[T]) PullBack() (T, bool) { return r.src.Pull() }

func (r *revSeq[T]) Clone() Seq[T] {
	src, ok := clone[T](r.src)
	if !ok {
		return nil
	}
	de, ok := src.(DoubleEnded[T])
	if !ok {
		return nil
	}
	return &revSeq[T]{src: de}
}
