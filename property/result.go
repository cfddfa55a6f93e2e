package property

import (
	"golang.org/x/exp/slices"

	"gopbt/lazy"
)

// The verdict of a single trial
type Kind int

const (
	KindFailure Kind = iota
	KindDiscard
	KindSuccess
)

func (k Kind) String() string {
	switch k {
	case KindFailure:
		return "failure"
	case KindDiscard:
		return "discard"
	case KindSuccess:
		return "success"
	}
	return "unknown"
}

// Outcome of a trial. Value is only meaningful for KindSuccess.
type Outcome[A any] struct {
	Kind  Kind
	Value A
}

func Failed[A any]() Outcome[A] {
	return Outcome[A]{Kind: KindFailure}
}

func Discarded[A any]() Outcome[A] {
	return Outcome[A]{Kind: KindDiscard}
}

func Succeeded[A any](x A) Outcome[A] {
	return Outcome[A]{Kind: KindSuccess, Value: x}
}

func (o Outcome[A]) IsFailure() bool {
	return o.Kind == KindFailure
}

func MapOutcome[A, B any](o Outcome[A], f func(A) B) Outcome[B] {
	if o.Kind != KindSuccess {
		return Outcome[B]{Kind: o.Kind}
	}
	return Succeeded(f(o.Value))
}

// Turn a success that does not satisfy p into a discard
func FilterOutcome[A any](o Outcome[A], p func(A) bool) Outcome[A] {
	if o.Kind == KindSuccess && !p(o.Value) {
		return Discarded[A]()
	}
	return o
}

// Journal is the log of a counterexample.
// Lines are formatted the first time they are read.
type Journal struct {
	lines []*lazy.Lazy[string]
}

func JournalOf(lines ...string) Journal {
	j := Journal{}
	for _, line := range lines {
		j.lines = append(j.lines, lazy.Of(line))
	}
	return j
}

// A journal with a single line that is formatted by f when it is read
func DelayedJournal(f func() string) Journal {
	return Journal{lines: []*lazy.Lazy[string]{lazy.New(f)}}
}

// Returns a journal with the lines of j followed by the lines of other
func (j Journal) Append(other Journal) Journal {
	lines := slices.Clone(j.lines)
	return Journal{lines: append(lines, other.lines...)}
}

func (j Journal) Len() int {
	return len(j.lines)
}

func (j Journal) Lines() []string {
	out := make([]string, len(j.lines))
	for i, line := range j.lines {
		out[i] = line.Value()
	}
	return out
}

// Result of evaluating a property on one generated input
type Result[A any] struct {
	Journal Journal
	Outcome Outcome[A]
}
