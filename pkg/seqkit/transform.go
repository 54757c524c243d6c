package seqkit

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Map never changes where the sequence ends.
//
// The result can be pulled from the back when seq is DoubleEnded.
func Map[To, From any](seq Seq[From], transform func(From) To) DoubleEnded[To] {
	return &mapSeq[To, From]{src: seq, fn: transform}
}

type mapSeq[To, From any] struct {
	src Seq[From]
	fn  func(From) To
}

func (m *mapSeq[To, From]) Pull() (To, bool) {
	v, ok := m.src.Pull()
	if !ok {
		var zero To
		return zero, false
	}
	return m.fn(v), true
}

func (m *mapSeq[To, From]) Clone() Seq[To] {
	src, ok := clone(m.src)
	if !ok {
		return nil
	}
	return &mapSeq[To, From]{src: src, fn: m.fn}
}

func (m *mapSeq[To, From]) PullBack() (To, bool) {
	v, ok := pullBack(m.src)
	if !ok {
		var zero To
		return zero, false
	}
	return m.fn(v), true
}

// Filter yields only the values for which filter returns true.
//
// The result can be pulled from the back when seq is DoubleEnded.
func Filter[T any](seq Seq[T], filter func(T) bool) DoubleEnded[T] {
	return &filterSeq[T]{src: seq, fn: filter}
}

type filterSeq[T any] struct {
	src Seq[T]
	fn  func(T) bool
}

func (f *filterSeq[T]) Pull() (T, bool) {
	for {
		v, ok := f.src.Pull()
		if !ok {
			return v, false
		}
		if f.fn(v) {
			return v, true
		}
	}
}

func (f *filterSeq[T]) PullBack() (T, bool) {
	for {
		v, ok := pullBack(f.src)
		if !ok {
			return v, false
		}
		if f.fn(v) {
			return v, true
		}
	}
}

func (f *filterSeq[T]) Clone() Seq[T] {
	src, ok := clone(f.src)
	if !ok {
		return nil
	}
	return &filterSeq[T]{src: src, fn: f.fn}
}

// FilterMap transforms and filters in one step.
// Values for which transform reports false are dropped,
// which makes it the natural fit for parsing, where a failed conversion simply produces no element.
//
// The result can be pulled from the back when seq is DoubleEnded.
func FilterMap[To, From any](seq Seq[From], transform func(From) (To, bool)) DoubleEnded[To] {
	return &filterMapSeq[To, From]{src: seq, fn: transform}
}

type filterMapSeq[To, From any] struct {
	src Seq[From]
	fn  func(From) (To, bool)
}

func (f *filterMapSeq[To, From]) Pull() (To, bool) {
	return f.next(f.src.Pull)
}

func (f *filterMapSeq[To, From]) PullBack() (To, bool) {
	return f.next(func() (From, bool) { return pullBack(f.src) })
}

func (f *filterMapSeq[To, From]) Clone() Seq[To] {
	src, ok := clone(f.src)
	if !ok {
		return nil
	}
	return &filterMapSeq[To, From]{src: src, fn: f.fn}
}

func (f *filterMapSeq[To, From]) next(pull func() (From, bool)) (To, bool) {
	for {
		v, ok := pull()
		if !ok {
			var zero To
			return zero, false
		}
		if out, ok := f.fn(v); ok {
			return out, true
		}
	}
}

// FlatMap maps every value of seq into a sequence of its own, and yields their values one after the other.
// The next outer value is only pulled once the current inner sequence is exhausted.
// A nil inner sequence counts as an empty one.
func FlatMap[To, From any](seq Seq[From], transform func(From) Seq[To]) Seq[To] {
	return &flatMapSeq[To, From]{outer: seq, fn: transform}
}

type flatMapSeq[To, From any] struct {
	outer Seq[From]
	fn    func(From) Seq[To]
	inner Seq[To]
}

func (f *flatMapSeq[To, From]) Pull() (To, bool) {
	for {
		if f.inner != nil {
			if v, ok := f.inner.Pull(); ok {
				return v, true
			}
			f.inner = nil
		}
		ov, ok := f.outer.Pull()
		if !ok {
			var zero To
			return zero, false
		}
		f.inner = f.fn(ov)
	}
}

func (f *flatMapSeq[To, From]) Clone() Seq[To] {
	outer, ok := clone(f.outer)
	if !ok {
		return nil
	}
	c := &flatMapSeq[To, From]{outer: outer, fn: f.fn}
	if f.inner != nil {
		if c.inner, ok = clone(f.inner); !ok {
			return nil
		}
	}
	return c
}

// Inspect calls fn with every value that passes through, and forwards the value unchanged.
// fn runs at the moment the value is pulled, so it observes the same laziness as the consumer.
//
// The result can be pulled from the back when seq is DoubleEnded.
func Inspect[T any](seq Seq[T], fn func(T)) DoubleEnded[T] {
	return &inspectSeq[T]{src: seq, fn: fn}
}

type inspectSeq[T any] struct {
	src Seq[T]
	fn  func(T)
}

func (i *inspectSeq[T]) Pull() (T, bool) {
	v, ok := i.src.Pull()
	if ok {
		i.fn(v)
	}
	return v, ok
}

func (i *inspectSeq[T]) PullBack() (T, bool) {
	v, ok := pullBack(i.src)
	if ok {
		i.fn(v)
	}
	return v, ok
}

func (i *inspectSeq[T]) Clone() Seq[T] {
	src, ok := clone(i.src)
	if !ok {
		return nil
	}
	return &inspectSeq[T]{src: src, fn: i.fn}
}
