// Package property lifts predicates over generated values into properties and runs them.
//
// A property is a generator of results. Running it samples the generator repeatedly with
// growing sizes. When a trial fails the shrink tree of the failing sample is searched for a
// smaller failing input, and the journal of that input is reported.
package property

import (
	"errors"
	"fmt"

	"gopbt/gen"
)

type Property[A any] gen.Gen[Result[A]]

// The value of successful trials of properties that only pass or fail
type Unit = struct{}

func FromGen[A any](g gen.Gen[Result[A]]) Property[A] {
	return Property[A](g)
}

func ToGen[A any](p Property[A]) gen.Gen[Result[A]] {
	return gen.Gen[Result[A]](p)
}

// Construct the property when it is run
func Delay[A any](f func() Property[A]) Property[A] {
	return FromGen(gen.Delay(func() gen.Gen[Result[A]] { return ToGen(f()) }))
}

func FromResult[A any](r Result[A]) Property[A] {
	return FromGen(gen.Constant(r))
}

func FromOutcome[A any](o Outcome[A]) Property[A] {
	return FromResult(Result[A]{Outcome: o})
}

func Failure[A any]() Property[A] {
	return FromOutcome(Failed[A]())
}

func Discard[A any]() Property[A] {
	return FromOutcome(Discarded[A]())
}

func Success[A any](x A) Property[A] {
	return FromOutcome(Succeeded(x))
}

func FromBool(ok bool) Property[Unit] {
	if ok {
		return Success(Unit{})
	}
	return Failure[Unit]()
}

// A successful property that adds a line to the journal.
// The line is only formatted if the journal is rendered.
func CounterExample(f func() string) Property[Unit] {
	return FromResult(Result[Unit]{Journal: DelayedJournal(f), Outcome: Succeeded(Unit{})})
}

func Map[A, B any](p Property[A], f func(A) B) Property[B] {
	return FromGen(gen.Map(ToGen(p), func(r Result[A]) Result[B] {
		return Result[B]{Journal: r.Journal, Outcome: MapOutcome(r.Outcome, f)}
	}))
}

// Discard the successful trials whose value does not satisfy pred
func Filter[A any](p Property[A], pred func(A) bool) Property[A] {
	return FromGen(gen.Map(ToGen(p), func(r Result[A]) Result[A] {
		return Result[A]{Journal: r.Journal, Outcome: FilterOutcome(r.Outcome, pred)}
	}))
}

// Sequence two properties.
//
// A failure or discard of p ends the property without running k.
// Otherwise the journal of p is followed by the journal of the property returned by k.
func Bind[A, B any](p Property[A], k func(A) Property[B]) Property[B] {
	return FromGen(gen.Bind(ToGen(p), func(r Result[A]) gen.Gen[Result[B]] {
		if r.Outcome.Kind != KindSuccess {
			return gen.Constant(Result[B]{Journal: r.Journal, Outcome: Outcome[B]{Kind: r.Outcome.Kind}})
		}
		return gen.Map(ToGen(k(r.Outcome.Value)), func(next Result[B]) Result[B] {
			return Result[B]{Journal: r.Journal.Append(next.Journal), Outcome: next.Outcome}
		})
	}))
}

// Check k for values generated by g.
//
// The generated value is written to the journal before k is evaluated.
// A panic in k fails the trial.
func ForAll[A, B any](g gen.Gen[A], k func(A) Property[B]) Property[B] {
	return FromGen(gen.Bind(g, func(x A) gen.Gen[Result[B]] {
		line := CounterExample(func() string { return fmt.Sprint(x) })
		return ToGen(Bind(line, func(Unit) Property[B] { return protect(k, x) }))
	}))
}

// A property that succeeds for every generated value.
// Exercises the generator and reports the value.
func ForAllTick[A any](g gen.Gen[A]) Property[A] {
	return ForAll(g, Success[A])
}

func ForAllBool[A any](g gen.Gen[A], pred func(A) bool) Property[Unit] {
	return ForAll(g, func(x A) Property[Unit] { return FromBool(pred(x)) })
}

// Evaluate k(x). A panic becomes a failure with the panic in the journal.
func protect[A, B any](k func(A) Property[B], x A) (p Property[B]) {
	defer func() {
		if v := recover(); v != nil {
			if reraise(v) {
				panic(v)
			}
			p = FromResult(Result[B]{Journal: JournalOf(fmt.Sprintf("panic: %v", v)), Outcome: Failed[B]()})
		}
	}()
	return k(x)
}

// Returns true for panics that must not be turned into a failed trial.
// Malformed generators abort the run. Exhausted filters are discarded by the runner.
func reraise(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	return contractViolation(err) || errors.Is(err, gen.ErrFilterExhausted)
}

func contractViolation(err error) bool {
	return errors.Is(err, gen.ErrEmptyInput) || errors.Is(err, gen.ErrNoWeight)
}

// Anything the runner can check. Implemented by every Property.
type Testable interface {
	outcomes() gen.Gen[Result[Unit]]
}

func (p Property[A]) outcomes() gen.Gen[Result[Unit]] {
	drop := func(A) Unit { return Unit{} }
	return gen.Map(ToGen(p), func(r Result[A]) Result[Unit] {
		return Result[Unit]{Journal: r.Journal, Outcome: MapOutcome(r.Outcome, drop)}
	})
}
