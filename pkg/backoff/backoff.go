// Package backoff provides delay schedules for retrying failed operations.
//
// A Strategy is an unbounded stepper: every call to Next yields the delay to
// wait before the following attempt. Callers bound a schedule with Take and
// perturb it with WithJitter.
package backoff

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand/v2"
	"strings"
	"time"
)

// Strategy yields successive retry delays. The boolean is false once the
// schedule is exhausted.
type Strategy interface {
	Next() (time.Duration, bool)
}

// Kind names a built-in schedule.
type Kind string

const (
	KindFixed       Kind = "fixed"
	KindExponential Kind = "exponential"
	KindFibonacci   Kind = "fibonacci"
)

// maxMillis is the largest millisecond count representable as a time.Duration.
const maxMillis = uint64(math.MaxInt64 / int64(time.Millisecond))

func fromMillis(ms uint64) time.Duration {
	if ms > maxMillis {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

func mulSat(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

func addSat(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// Fixed yields the same delay forever.
type Fixed struct {
	delay time.Duration
}

// NewFixed returns a schedule that always waits d.
func NewFixed(d time.Duration) *Fixed {
	return &Fixed{delay: d}
}

// Next implements Strategy.
func (f *Fixed) Next() (time.Duration, bool) {
	return f.delay, true
}

// Exponential multiplies its state by the base after every step.
// Values are computed in milliseconds and saturate instead of overflowing.
type Exponential struct {
	current  uint64
	base     uint64
	factor   uint64
	maxDelay time.Duration
	capped   bool
}

// NewExponential starts an exponential schedule at baseMillis.
func NewExponential(baseMillis uint64) *Exponential {
	return &Exponential{current: baseMillis, base: baseMillis, factor: 1}
}

// WithFactor scales every yielded delay by f.
func (e *Exponential) WithFactor(f uint64) *Exponential {
	e.factor = f
	return e
}

// WithMaxDelay caps yielded delays at d. Once the cap is hit the schedule
// stops advancing.
func (e *Exponential) WithMaxDelay(d time.Duration) *Exponential {
	e.maxDelay = d
	e.capped = true
	return e
}

// Next implements Strategy.
func (e *Exponential) Next() (time.Duration, bool) {
	d := fromMillis(mulSat(e.current, e.factor))
	if e.capped && d > e.maxDelay {
		return e.maxDelay, true
	}
	e.current = mulSat(e.current, e.base)
	return d, true
}

// Fibonacci grows delays along the Fibonacci sequence seeded with the base.
type Fibonacci struct {
	current  uint64
	next     uint64
	factor   uint64
	maxDelay time.Duration
	capped   bool
}

// NewFibonacci starts a Fibonacci schedule at baseMillis, baseMillis, ...
func NewFibonacci(baseMillis uint64) *Fibonacci {
	return &Fibonacci{current: baseMillis, next: baseMillis, factor: 1}
}

// WithFactor scales every yielded delay by f.
func (f *Fibonacci) WithFactor(factor uint64) *Fibonacci {
	f.factor = factor
	return f
}

// WithMaxDelay caps yielded delays at d.
func (f *Fibonacci) WithMaxDelay(d time.Duration) *Fibonacci {
	f.maxDelay = d
	f.capped = true
	return f
}

// Next implements Strategy.
func (f *Fibonacci) Next() (time.Duration, bool) {
	d := fromMillis(mulSat(f.current, f.factor))
	if f.capped && d > f.maxDelay {
		return f.maxDelay, true
	}
	f.current, f.next = f.next, addSat(f.current, f.next)
	return d, true
}

type bounded struct {
	s         Strategy
	remaining int
}

// Take limits s to at most n steps.
func Take(s Strategy, n int) Strategy {
	return &bounded{s: s, remaining: n}
}

func (b *bounded) Next() (time.Duration, bool) {
	if b.remaining <= 0 {
		return 0, false
	}
	b.remaining--
	return b.s.Next()
}

type mapped struct {
	s  Strategy
	fn func(time.Duration) time.Duration
}

// WithJitter applies fn to every delay yielded by s.
func WithJitter(s Strategy, fn func(time.Duration) time.Duration) Strategy {
	return &mapped{s: s, fn: fn}
}

func (m *mapped) Next() (time.Duration, bool) {
	d, ok := m.s.Next()
	if !ok {
		return 0, false
	}
	return m.fn(d), true
}

// Jitter scales d by a uniform random factor in [0, 1).
func Jitter(d time.Duration) time.Duration {
	return time.Duration(float64(d) * rand.Float64())
}

// JitterRange returns a jitter function scaling by a uniform factor in [lo, hi).
func JitterRange(lo, hi float64) func(time.Duration) time.Duration {
	return func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * (lo + rand.Float64()*(hi-lo)))
	}
}

// Collect returns up to n delays from s.
func Collect(s Strategy, n int) []time.Duration {
	out := make([]time.Duration, 0, n)
	for range n {
		d, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, d)
	}
	return out
}

// Options describes a bounded schedule, typically loaded from configuration.
type Options struct {
	Kind     Kind
	Base     time.Duration
	MaxDelay time.Duration
	Retries  int
	Jitter   bool
}

// ParseKind validates a schedule name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindFixed, KindExponential, KindFibonacci:
		return k, nil
	case "":
		return KindFibonacci, nil
	default:
		return "", fmt.Errorf("unknown backoff strategy %q (supported: fixed, exponential, fibonacci)", s)
	}
}

// Build returns a fresh strategy for o. Every call returns independent state.
func (o Options) Build() (Strategy, error) {
	kind, err := ParseKind(string(o.Kind))
	if err != nil {
		return nil, err
	}

	base := uint64(max(o.Base.Milliseconds(), 0))

	var s Strategy
	switch kind {
	case KindFixed:
		s = NewFixed(o.Base)
	case KindExponential:
		e := NewExponential(base)
		if o.MaxDelay > 0 {
			e.WithMaxDelay(o.MaxDelay)
		}
		s = e
	default:
		f := NewFibonacci(base)
		if o.MaxDelay > 0 {
			f.WithMaxDelay(o.MaxDelay)
		}
		s = f
	}

	if o.Jitter {
		s = WithJitter(s, Jitter)
	}
	return Take(s, max(o.Retries, 0)), nil
}
