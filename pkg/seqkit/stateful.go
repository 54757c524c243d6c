package seqkit

// Scan is like Map, but with a mutable state that lives as long as the sequence.
// fn receives a pointer to the state and the next upstream value.
// When fn reports false, the sequence halts for good,
// and no further upstream value is pulled.
func Scan[To, From, State any](seq Seq[From], initial State, fn func(state *State, v From) (To, bool)) Seq[To] {
	return &scanSeq[To, From, State]{src: seq, state: initial, fn: fn}
}

type scanSeq[To, From, State any] struct {
	src    Seq[From]
	state  State
	fn     func(*State, From) (To, bool)
	halted bool
}

func (s *scanSeq[To, From, State]) Pull() (To, bool) {
	var zero To
	if s.halted {
		return zero, false
	}
	v, ok := s.src.Pull()
	if !ok {
		return zero, false
	}
	out, ok := s.fn(&s.state, v)
	if !ok {
		s.halted = true
		return zero, false
	}
	return out, true
}

// Clone copies the current state by value, so a State holding references shares them with the copy.
func (s *scanSeq[To, From, State]) Clone() Seq[To] {
	src, ok := clone(s.src)
	if !ok {
		return nil
	}
	c := *s
	c.src = src
	return &c
}

// TakeWhile yields values as long as pred holds.
// The first value that fails pred is consumed from upstream but not yielded,
// and the sequence halts for good.
func TakeWhile[T any](seq Seq[T], pred func(T) bool) Seq[T] {
	return &takeWhileSeq[T]{src: seq, pred: pred}
}

type takeWhileSeq[T any] struct {
	src    Seq[T]
	pred   func(T) bool
	halted bool
}

func (tw *takeWhileSeq[T]) Pull() (T, bool) {
	var zero T
	if tw.halted {
		return zero, false
	}
	v, ok := tw.src.Pull()
	if !ok {
		return zero, false
	}
	if !tw.pred(v) {
		tw.halted = true
		return zero, false
	}
	return v, true
}

func (tw *takeWhileSeq[T]) Clone() Seq[T] {
	src, ok := clone(tw.src)
	if !ok {
		return nil
	}
	c := *tw
	c.src = src
	return &c
}

// SkipWhile drops the leading values for which pred holds.
// From the first value that fails pred, every upstream value is forwarded unconditionally.
func SkipWhile[T any](seq Seq[T], pred func(T) bool) Seq[T] {
	return &skipWhileSeq[T]{src: seq, pred: pred}
}

type skipWhileSeq[T any] struct {
	src         Seq[T]
	pred        func(T) bool
	passthrough bool
}

func (sw *skipWhileSeq[T]) Pull() (T, bool) {
	if sw.passthrough {
		return sw.src.Pull()
	}
	for {
		v, ok := sw.src.Pull()
		if !ok {
			return v, false
		}
		if !sw.pred(v) {
			sw.passthrough = true
			return v, true
		}
	}
}

func (sw *skipWhileSeq[T]) Clone() Seq[T] {
	src, ok := clone(sw.src)
	if !ok {
		return nil
	}
	c := *sw
	c.src = src
	return &c
}

// Take yields at most the next n values of seq.
// Once n values were yielded, seq is not pulled any further,
// so the rest of it can still be consumed by someone else.
func Take[T any](seq Seq[T], n int) Seq[T] {
	return &takeSeq[T]{src: seq, remaining: n}
}

type takeSeq[T any] struct {
	src       Seq[T]
	remaining int
}

func (t *takeSeq[T]) Pull() (T, bool) {
	if t.remaining <= 0 {
		var zero T
		return zero, false
	}
	t.remaining--
	return t.src.Pull()
}

func (t *takeSeq[T]) Clone() Seq[T] {
	src, ok := clone(t.src)
	if !ok {
		return nil
	}
	return &takeSeq[T]{src: src, remaining: t.remaining}
}

// Skip drops the first n values of seq, and yields the rest.
func Skip[T any](seq Seq[T], n int) Seq[T] {
	return &skipSeq[T]{src: seq, n: n}
}

type skipSeq[T any] struct {
	src Seq[T]
	n   int
}

func (s *skipSeq[T]) Pull() (T, bool) {
	for ; 0 < s.n; s.n-- {
		if v, ok := s.src.Pull(); !ok {
			s.n = 0
			return v, false
		}
	}
	return s.src.Pull()
}

func (s *skipSeq[T]) Clone() Seq[T] {
	src, ok := clone(s.src)
	if !ok {
		return nil
	}
	return &skipSeq[T]{src: src, n: s.n}
}

// Indexed is a value paired with its zero-based position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerate pairs every value with a running counter that starts at zero.
func Enumerate[T any](seq Seq[T]) Seq[Indexed[T]] {
	return &enumerateSeq[T]{src: seq}
}

type enumerateSeq[T any] struct {
	src   Seq[T]
	index int
}

func (e *enumerateSeq[T]) Pull() (Indexed[T], bool) {
	v, ok := e.src.Pull()
	if !ok {
		return Indexed[T]{}, false
	}
	out := Indexed[T]{Index: e.index, Value: v}
	e.index++
	return out, true
}

func (e *enumerateSeq[T]) Clone() Seq[Indexed[T]] {
	src, ok := clone(e.src)
	if !ok {
		return nil
	}
	return &enumerateSeq[T]{src: src, index: e.index}
}

// Fuse guarantees that once seq reported exhaustion, every further pull reports exhaustion too,
// regardless of what seq would do on its own.
//
// The result can be pulled from the back when seq is DoubleEnded.
// Exhaustion observed from either end fuses both.
func Fuse[T any](seq Seq[T]) DoubleEnded[T] {
	if f, ok := seq.(*fuseSeq[T]); ok {
		return f
	}
	return &fuseSeq[T]{src: seq}
}

type fuseSeq[T any] struct {
	src  Seq[T]
	done bool
}

func (f *fuseSeq[T]) Pull() (T, bool) {
	if f.done {
		var zero T
		return zero, false
	}
	v, ok := f.src.Pull()
	if !ok {
		f.done = true
	}
	return v, ok
}

func (f *fuseSeq[T]) PullBack() (T, bool) {
	if f.done {
		var zero T
		return zero, false
	}
	v, ok := pullBack(f.src)
	if !ok {
		f.done = true
	}
	return v, ok
}

func (f *fuseSeq[T]) Clone() Seq[T] {
	src, ok := clone(f.src)
	if !ok {
		return nil
	}
	return &fuseSeq[T]{src: src, done: f.done}
}

// Peekable wraps seq, so the next value can be looked at without consuming it.
func Peekable[T any](seq Seq[T]) *PeekableSeq[T] {
	if p, ok := seq.(*PeekableSeq[T]); ok {
		return p
	}
	return &PeekableSeq[T]{src: seq}
}

// PeekableSeq caches at most one upcoming pull result.
// Both a peeked value and a peeked exhaustion are remembered,
// so upstream is pulled at most once per upcoming element.
type PeekableSeq[T any] struct {
	src    Seq[T]
	peeked bool
	val    T
	ok     bool
}

// Peek returns the upcoming value without advancing the sequence.
func (p *PeekableSeq[T]) Peek() (T, bool) {
	if !p.peeked {
		p.val, p.ok = p.src.Pull()
		p.peeked = true
	}
	return p.val, p.ok
}

func (p *PeekableSeq[T]) Pull() (T, bool) {
	if p.peeked {
		p.peeked = false
		return p.val, p.ok
	}
	return p.src.Pull()
}

// NextIf consumes and returns the upcoming value only when pred holds for it.
// Otherwise the value stays in place for the next pull.
func (p *PeekableSeq[T]) NextIf(pred func(T) bool) (T, bool) {
	if v, ok := p.Peek(); ok && pred(v) {
		p.peeked = false
		return v, true
	}
	var zero T
	return zero, false
}

// PullBack requires the wrapped sequence to be DoubleEnded.
// A peeked value is the front-most one, so it is handed out last.
func (p *PeekableSeq[T]) PullBack() (T, bool) {
	var zero T
	if p.peeked && !p.ok {
		return zero, false
	}
	if v, ok := pullBack(p.src); ok {
		return v, true
	}
	if p.peeked {
		p.peeked = false
		return p.val, true
	}
	return zero, false
}

func (p *PeekableSeq[T]) Clone() Seq[T] {
	src, ok := clone(p.src)
	if !ok {
		return nil
	}
	c := *p
	c.src = src
	return &c
}

// Cycle repeats seq endlessly.
//
// When seq can be cloned, every round restarts production from a copy taken when Cycle was called,
// so the functions of an adapter pipeline run again in every round.
// Otherwise the values seen during the first round are buffered and replayed,
// which costs memory proportional to the first round,
// and grows without bound when that round never ends.
//
// If the first round produces no value at all, the cycle is exhausted immediately,
// instead of restarting over and over without output.
func Cycle[T any](seq Seq[T]) Seq[T] {
	if current, ok := clone(seq); ok {
		return &cloneCycleSeq[T]{origin: seq.(Cloner[T]), current: current}
	}
	return &replayCycleSeq[T]{src: seq}
}

type cloneCycleSeq[T any] struct {
	origin  Cloner[T]
	current Seq[T]
	done    bool
}

func (c *cloneCycleSeq[T]) Pull() (T, bool) {
	var zero T
	if c.done {
		return zero, false
	}
	if v, ok := c.current.Pull(); ok {
		return v, true
	}
	c.current = c.origin.Clone()
	v, ok := c.current.Pull()
	if !ok {
		c.done = true
		return zero, false
	}
	return v, true
}

type replayCycleSeq[T any] struct {
	src       Seq[T]
	seen      []T
	replaying bool
	pos       int
}

func (c *replayCycleSeq[T]) Pull() (T, bool) {
	if !c.replaying {
		if v, ok := c.src.Pull(); ok {
			c.seen = append(c.seen, v)
			return v, true
		}
		c.replaying = true
		c.src = nil
	}
	if len(c.seen) == 0 {
		var zero T
		return zero, false
	}
	v := c.seen[c.pos]
	c.pos = (c.pos + 1) % len(c.seen)
	return v, true
}
