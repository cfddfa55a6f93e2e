package property

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// The runner discarded too many trials
	ErrGaveUp = errors.New("property: gave up")
	// The runner found a counterexample
	ErrFailed = errors.New("property: falsified")
)

type StatusKind int

const (
	StatusOK StatusKind = iota
	StatusGaveUp
	StatusFailed
)

func (k StatusKind) String() string {
	switch k {
	case StatusOK:
		return "ok"
	case StatusGaveUp:
		return "gave up"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Shrinks and Journal are only set for StatusFailed
type Status struct {
	Kind    StatusKind
	Shrinks int
	Journal Journal
}

// The result of running a property
type Report struct {
	Tests    int
	Discards int
	Status   Status
}

func (r Report) OK() bool {
	return r.Status.Kind == StatusOK
}

func (r Report) String() string {
	return Render(r)
}

// Returns nil if the report is ok.
// Otherwise returns ErrGaveUp or ErrFailed wrapped with the rendered report.
func (r Report) Err() error {
	switch r.Status.Kind {
	case StatusGaveUp:
		return fmt.Errorf("%w: %s", ErrGaveUp, Render(r))
	case StatusFailed:
		return fmt.Errorf("%w: %s", ErrFailed, Render(r))
	}
	return nil
}

// Render the report as text.
//
// A failure is rendered on the first line followed by one line per journal entry.
func Render(r Report) string {
	switch r.Status.Kind {
	case StatusGaveUp:
		return fmt.Sprintf("*** Gave up after %s, passed %s.", count(r.Discards, "discard"), count(r.Tests, "test"))
	case StatusFailed:
		var out strings.Builder
		fmt.Fprintf(&out, "*** Failed! Falsifiable (after %s and %s and %s):",
			count(r.Tests, "test"), count(r.Status.Shrinks, "shrink"), count(r.Discards, "discard"))
		for _, line := range r.Status.Journal.Lines() {
			out.WriteString("\n")
			out.WriteString(line)
		}
		return out.String()
	}
	return fmt.Sprintf("+++ OK, passed %s.", count(r.Tests, "test"))
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
