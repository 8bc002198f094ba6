// SPDX-License-Identifier: MIT

package rootfinder

import (
	"errors"
	"fmt"
	"iter"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/ran"
	"github.com/katalvlaran/realroots/sturm"
)

// Finder isolates the real roots of one polynomial in one search interval.
// It is not safe for concurrent use.
type Finder struct {
	opts Options
	log  *zap.Logger

	input  poly.Polynomial // caller's polynomial, never modified
	base   poly.Polynomial // square-free part of input
	p      poly.Polynomial // working polynomial: base with exact roots divided out
	dp     poly.Polynomial // p'
	seq    *sturm.Sequence // Sturm sequence of p
	search interval.Interval

	queue workQueue
	found []*ran.Number // ascending, pairwise disjoint
	next  int           // found[:next] have been returned

	approx map[Strategy][]float64 // per working polynomial
	state  State
	stats  Stats
}

// New prepares a Finder for the real roots of p.
//
// The polynomial is reduced to its square-free part, unbounded sides of the
// search interval are replaced by the Cauchy bound, and roots sitting on
// closed endpoints are recorded. Polynomials of degree ≤ 2 are solved in
// closed form when TrivialSolver is on; otherwise one open item is queued.
// Returns ErrDegenerateInput for the zero polynomial.
func New(p poly.Polynomial, opts ...Option) (*Finder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if !o.Strategy.Valid() {
		return nil, fmt.Errorf("New: strategy %d: %w", int(o.Strategy), ErrUnknownStrategy)
	}
	if o.StepBudget <= 0 {
		o.StepBudget = DefaultStepBudget
	}
	if o.GridCells < 2 {
		o.GridCells = DefaultGridCells
	}
	if p.IsZero() {
		return nil, fmt.Errorf("New: %w", ErrDegenerateInput)
	}

	base := p.SquareFree()
	seq, err := sturm.New(base)
	if err != nil {
		return nil, fmt.Errorf("New: %w", ErrDegenerateInput)
	}
	f := &Finder{
		opts:   o,
		log:    o.Logger,
		input:  p,
		base:   base,
		p:      base,
		dp:     base.Derivative(),
		seq:    seq,
		search: o.Interval,
		approx: make(map[Strategy][]float64),
	}
	f.seed()
	f.log.Debug("finder seeded",
		zap.Stringer("polynomial", f.p),
		zap.Stringer("interval", f.search),
		zap.Stringer("strategy", o.Strategy),
		zap.Int("queued", f.queue.len()),
		zap.Int("roots", len(f.found)))

	return f, nil
}

// seed resolves the search interval and fills the queue or the root list.
func (f *Finder) seed() {
	iv := f.search
	if iv.IsPoint() {
		if x := iv.Left(); f.p.Sign(x) == 0 {
			f.AddRoot(x)
		}
		return
	}

	bound := f.base.CauchyBound()
	left, right := iv.Left(), iv.Right()
	if left == nil {
		left = new(big.Rat).Neg(bound)
	} else if !iv.LeftOpen() && f.p.Sign(left) == 0 {
		f.AddRoot(left)
	}
	if right == nil {
		right = bound
	} else if !iv.RightOpen() && f.p.Sign(right) == 0 {
		f.AddRoot(right)
	}
	core, err := interval.Open(left, right)
	if err != nil {
		return // half-line beyond the Cauchy bound
	}
	if f.opts.TrivialSolver && f.p.Degree() <= 2 {
		f.solveTrivial(core)
		return
	}
	f.queue.push(core, f.opts.Strategy)
}

// State returns the lifecycle stage.
func (f *Finder) State() State { return f.state }

// Stats returns counters of the work done so far.
func (f *Finder) Stats() Stats { return f.stats }

// Input returns the polynomial the finder was built for.
func (f *Finder) Input() poly.Polynomial { return f.input }

// Interval returns the search interval as given.
func (f *Finder) Interval() interval.Interval { return f.search }

// Polynomial returns the current working polynomial.
func (f *Finder) Polynomial() poly.Polynomial { return f.p }

// Derivative returns the derivative of the working polynomial.
func (f *Finder) Derivative() poly.Polynomial { return f.dp }

// Sturm returns the Sturm sequence of the working polynomial.
func (f *Finder) Sturm() *sturm.Sequence { return f.seq }

// GridCells returns the Grid strategy cell count.
func (f *Finder) GridCells() int { return f.opts.GridCells }

// Logger returns the debug logger.
func (f *Finder) Logger() *zap.Logger { return f.log }

// Pending returns the number of queued intervals.
func (f *Finder) Pending() int { return f.queue.len() }

func (f *Finder) noteFallback() { f.stats.Fallbacks++ }

// RealApproximations returns cached float approximations of the real roots
// of the working polynomial computed with strategy s.
func (f *Finder) RealApproximations(s Strategy) ([]float64, error) {
	if v, ok := f.approx[s]; ok {
		return v, nil
	}
	v, err := realApproximations(s, f.p.Float64s())
	if err != nil {
		return nil, err
	}
	f.approx[s] = v

	return v, nil
}

// Next returns the smallest root not returned yet.
//
// It processes queue items until that root is known to be the smallest one
// left, i.e. no queued interval lies to its left. Returns Done once every
// root has been returned, on this and every later call. Returns
// ErrBudgetExceeded after StepBudget items without a result; the state is
// kept and the next call resumes.
func (f *Finder) Next() (*ran.Number, error) {
	if f.state == Exhausted {
		return nil, Done
	}
	f.state = Draining

	for steps := 0; ; steps++ {
		if f.next < len(f.found) && f.ready(f.found[f.next]) {
			r := f.found[f.next]
			f.next++
			if f.next == len(f.found) && f.queue.len() == 0 {
				f.state = Exhausted
			}
			return r, nil
		}
		if f.queue.len() == 0 {
			f.state = Exhausted
			f.log.Debug("finder exhausted", zap.Int("roots", len(f.found)), zap.Any("stats", f.stats))
			return nil, Done
		}
		if steps >= f.opts.StepBudget {
			f.log.Debug("step budget exceeded", zap.Int("budget", f.opts.StepBudget), zap.Int("pending", f.queue.len()))
			return nil, ErrBudgetExceeded
		}
		f.ProcessQueueItem()
	}
}

// ready reports whether every queued interval lies to the right of r.
func (f *Finder) ready(r *ran.Number) bool {
	m := f.queue.minLeft()
	if m == nil {
		return true
	}

	return m.Cmp(upper(r)) >= 0
}

// upper returns the exact value or the right end of the isolating interval.
func upper(r *ran.Number) *big.Rat {
	if r.IsExact() {
		return r.Value()
	}

	return r.Interval().Right()
}

// ProcessQueueItem pops the widest queued interval and classifies it by its
// Sturm root count: none is dropped, one is certified, more are split by the
// item's strategy. Reports false when the queue was empty.
func (f *Finder) ProcessQueueItem() bool {
	if f.queue.len() == 0 {
		return false
	}
	if f.state == Seeded {
		f.state = Draining
	}
	it := f.queue.pop()
	f.stats.Processed++

	n := f.seq.RootCountIn(it.iv)
	f.log.Debug("queue item",
		zap.Stringer("interval", it.iv), zap.Stringer("strategy", it.strategy), zap.Int("roots", n))
	switch {
	case n == 0:
	case n == 1:
		f.AddIsolated(it.iv)
	default:
		strategyTable[it.strategy](it.iv, f)
	}

	return true
}

// AddQueue schedules iv for classification with strategy s.
//
// Unbounded sides are resolved with the Cauchy bound. iv is then clipped to
// the search interval and to the right of every root already returned;
// closed endpoints that are roots are recorded and the remainder is queued as
// an open interval. A point is recorded when it is a root and ignored
// otherwise, as is a seed clipped to nothing. Returns ErrInvalidInterval when
// the left bound exceeds the right one, ErrUnknownStrategy for an invalid tag.
func (f *Finder) AddQueue(iv interval.Interval, s Strategy) error {
	if !s.Valid() {
		return fmt.Errorf("AddQueue(%s): strategy %d: %w", iv, int(s), ErrUnknownStrategy)
	}
	if l, r := iv.Left(), iv.Right(); l != nil && r != nil && l.Cmp(r) > 0 {
		return fmt.Errorf("AddQueue(%s): %w", iv, ErrInvalidInterval)
	}

	bounded, ok := f.resolve(iv)
	if !ok {
		return nil
	}
	clipped, ok := bounded.Intersect(f.search)
	if ok && f.next > 0 {
		fence, _ := interval.New(upper(f.found[f.next-1]), nil, true, true)
		clipped, ok = clipped.Intersect(fence)
	}
	if !ok {
		return nil
	}
	if clipped.IsPoint() {
		f.AddRoot(clipped.Left())
		return nil
	}
	if l := clipped.Left(); !clipped.LeftOpen() && f.p.Sign(l) == 0 {
		f.AddRoot(l)
	}
	if r := clipped.Right(); !clipped.RightOpen() && f.p.Sign(r) == 0 {
		f.AddRoot(r)
	}
	open, _ := interval.Open(clipped.Left(), clipped.Right())
	f.queue.push(open, s)

	return nil
}

// resolve replaces unbounded sides of iv by the open Cauchy bound of the
// square-free input. Reports false when nothing of iv lies within the bound.
func (f *Finder) resolve(iv interval.Interval) (interval.Interval, bool) {
	if iv.IsBounded() {
		return iv, true
	}
	bound := f.base.CauchyBound()
	left, right := iv.Left(), iv.Right()
	leftOpen, rightOpen := iv.LeftOpen(), iv.RightOpen()
	if left == nil {
		left, leftOpen = new(big.Rat).Neg(bound), true
	}
	if right == nil {
		right, rightOpen = bound, true
	}
	out, err := interval.New(left, right, leftOpen, rightOpen)

	return out, err == nil
}

// AddRoot records the exact root x and, with deflation on, divides the
// working polynomial by the linear factor of x. Values that are not roots
// are ignored.
func (f *Finder) AddRoot(x *big.Rat) {
	if f.base.Sign(x) != 0 {
		f.log.Debug("not a root", zap.String("x", x.RatString()))
		return
	}
	if f.insert(ran.NewExact(x)) {
		f.stats.Exact++
	}
	f.deflate(x)
}

// AddIsolated certifies iv as holding exactly one root of the working
// polynomial. An interval that does not isolate is re-queued for bisection.
func (f *Finder) AddIsolated(iv interval.Interval) {
	n, err := ran.NewIsolatedSeq(f.p, f.seq, iv)
	if err != nil {
		f.log.Debug("interval does not isolate", zap.Stringer("interval", iv), zap.Error(err))
		enqueue(f, iv, BinarySample)
		return
	}
	if n.IsExact() {
		f.AddRoot(n.Value())
		return
	}
	if f.insert(n) {
		f.stats.Certified++
	}
}

// deflate divides the working polynomial by (x - r) when enabled.
func (f *Finder) deflate(r *big.Rat) {
	if !f.opts.Deflation {
		return
	}
	q, ok := f.p.Deflate(r)
	if !ok {
		return
	}
	seq, err := sturm.New(q)
	if err != nil {
		return // unreachable: q is nonzero
	}
	f.p, f.dp, f.seq = q, q.Derivative(), seq
	clear(f.approx)
	f.stats.Deflations++
	f.log.Debug("deflated", zap.String("root", r.RatString()), zap.Stringer("polynomial", q))
}

// insert adds r to the ascending root list. A number describing a root that
// is already listed is merged instead (an exact value replaces an interval);
// distinct roots with overlapping intervals are refined apart. Reports
// whether a new root was added.
func (f *Finder) insert(r *ran.Number) bool {
	for i, old := range f.found {
		if !old.Interval().Overlaps(r.Interval()) {
			continue
		}
		if sameRoot(old, r) {
			if r.IsExact() && !old.IsExact() && i >= f.next {
				f.found[i] = r
			}
			return false
		}
		separate(old, r)
	}

	pos := len(f.found)
	for i, old := range f.found {
		if r.Less(old) {
			pos = i
			break
		}
	}
	if pos < f.next {
		f.log.Warn("root found left of returned roots", zap.Stringer("root", r))
		pos = f.next
	}
	f.found = append(f.found, nil)
	copy(f.found[pos+1:], f.found[pos:])
	f.found[pos] = r

	return true
}

// sameRoot reports whether two overlapping numbers denote the same root:
// their defining polynomials share a root inside the common part of the
// intervals, and each interval holds only one root of its own polynomial.
func sameRoot(a, b *ran.Number) bool {
	switch {
	case a.IsExact() && b.IsExact():
		return a.Value().Cmp(b.Value()) == 0
	case a.IsExact():
		return b.Contains(a.Value()) && b.Polynomial().Sign(a.Value()) == 0
	case b.IsExact():
		return a.Contains(b.Value()) && a.Polynomial().Sign(b.Value()) == 0
	}
	common, ok := a.Interval().Intersect(b.Interval())
	if !ok {
		return false
	}
	g := poly.GCD(a.Polynomial(), b.Polynomial())
	if g.IsConstant() {
		return false
	}
	seq, err := sturm.New(g)
	if err != nil {
		return false
	}

	return seq.RootCountIn(common) > 0
}

// separate bisects overlapping intervals of two distinct roots until disjoint.
func separate(a, b *ran.Number) {
	half := big.NewRat(1, 2)
	for a.Interval().Overlaps(b.Interval()) {
		for _, n := range []*ran.Number{a, b} {
			if !n.IsExact() {
				eps := n.Interval().Diameter()
				n.Refine(eps.Mul(eps, half))
			}
		}
	}
}

// RootCache drains Next and returns every root returned so far, ascending.
// On ErrBudgetExceeded the partial list is returned with the error; calling
// RootCache again resumes.
func (f *Finder) RootCache() ([]*ran.Number, error) {
	for {
		_, err := f.Next()
		if errors.Is(err, Done) {
			break
		}
		if err != nil {
			return f.returned(), err
		}
	}

	return f.returned(), nil
}

func (f *Finder) returned() []*ran.Number {
	out := make([]*ran.Number, f.next)
	copy(out, f.found[:f.next])

	return out
}

// Roots returns an iterator over the remaining roots in ascending order.
// Iteration stops after Done; any other error is yielded once with a nil root.
func (f *Finder) Roots() iter.Seq2[*ran.Number, error] {
	return func(yield func(*ran.Number, error) bool) {
		for {
			r, err := f.Next()
			if errors.Is(err, Done) {
				return
			}
			if !yield(r, err) || err != nil {
				return
			}
		}
	}
}

var _ Context = (*Finder)(nil)
