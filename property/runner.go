package property

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"gopbt/gen"
	"gopbt/ranges"
	"gopbt/seed"
	"gopbt/tree"
)

const (
	DefaultTests        = 100
	DefaultDiscardLimit = 100
	// Shrink until no smaller counterexample is found
	NoShrinkLimit = -1
)

// Runner runs properties.
//
// The trials are sampled with seeds split from the starting seed, so a runner with a fixed seed
// always runs the same trials.
type Runner struct {
	tests        int
	discardLimit int
	shrinkLimit  int
	seed         seed.Seed
	size         ranges.Size
	log          logrus.FieldLogger
}

// Create a runner that stops after tests successful trials or discardLimit discarded trials.
// The size of the first trial is size. Negative shrinkLimit means no limit.
func NewRunner(tests, discardLimit, shrinkLimit int, start seed.Seed, size ranges.Size, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = DefaultLogger()
	}
	return &Runner{
		tests:        tests,
		discardLimit: discardLimit,
		shrinkLimit:  shrinkLimit,
		seed:         start,
		size:         size,
		log:          log,
	}
}

// A logger that writes warnings to stderr
func DefaultLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return log
}

func (r *Runner) Seed() seed.Seed {
	return r.seed
}

// Run the property until the configured number of trials pass, too many are discarded, or one fails.
func (r *Runner) Run(p Testable) Report {
	g := p.outcomes()
	log := r.log.WithField("seed", r.seed.String())
	tests, discards, size, s := 0, 0, r.size, r.seed
	for {
		if tests >= r.tests {
			report := Report{Tests: tests, Discards: discards, Status: Status{Kind: StatusOK}}
			log.WithFields(logrus.Fields{"tests": tests, "discards": discards}).Info(report)
			return report
		}
		if discards >= r.discardLimit {
			report := Report{Tests: tests, Discards: discards, Status: Status{Kind: StatusGaveUp}}
			log.WithFields(logrus.Fields{"tests": tests, "discards": discards}).Warn(report)
			return report
		}
		trial, next := seed.Split(s)
		s = next
		t := r.sample(g, trial, size)
		kind := t.Value().Outcome.Kind
		log.WithFields(logrus.Fields{"tests": tests, "discards": discards, "size": size}).Debugf("Trial: %v", kind)
		switch kind {
		case KindSuccess:
			tests++
			size = grow(size)
		case KindDiscard:
			discards++
		case KindFailure:
			shrinks, journal := r.takeSmallest(t, log)
			report := Report{
				Tests:    tests + 1,
				Discards: discards,
				Status:   Status{Kind: StatusFailed, Shrinks: shrinks, Journal: journal},
			}
			log.WithFields(logrus.Fields{"tests": report.Tests, "discards": discards, "shrinks": shrinks}).Warn(report)
			return report
		}
	}
}

// The size of the next trial. Wraps to 1 after the maximum size.
func grow(size ranges.Size) ranges.Size {
	if size+1 > ranges.MaxSize {
		return 1
	}
	return size + 1
}

// Sample one trial. The value of the root is forced.
//
// A filter that gave up is a discarded trial and any other panic a failed one.
// Malformed generators still panic.
func (r *Runner) sample(g gen.Gen[Result[Unit]], s seed.Seed, size ranges.Size) (t tree.Tree[Result[Unit]]) {
	defer func() {
		if v := recover(); v != nil {
			err, _ := v.(error)
			switch {
			case err != nil && contractViolation(err):
				panic(v)
			case errors.Is(err, gen.ErrFilterExhausted):
				r.log.WithError(err).Debug("Discarding trial")
				t = tree.Singleton(Result[Unit]{Outcome: Discarded[Unit]()})
			default:
				journal := JournalOf(fmt.Sprintf("panic: %v", v))
				t = tree.Singleton(Result[Unit]{Journal: journal, Outcome: Failed[Unit]()})
			}
		}
	}()
	t = gen.Run(s, size, g)
	t.Value()
	return t
}

// Search the shrinks of a failing tree for the smallest failing node.
//
// Descends into the first failing child until no child fails or the shrink limit is reached.
// Returns the number of shrinks and the journal of the last failing node.
func (r *Runner) takeSmallest(t tree.Tree[Result[Unit]], log logrus.FieldLogger) (int, Journal) {
	shrinks := 0
	for r.shrinkLimit < 0 || shrinks < r.shrinkLimit {
		child, ok := t.Children().Find(fails)
		if !ok {
			break
		}
		shrinks++
		t = child
		log.WithField("shrinks", shrinks).Debug("Found a smaller counterexample")
	}
	return shrinks, t.Value().Journal
}

// Returns true if the value of the node is a failure.
// Nodes that panic are not considered smaller counterexamples.
func fails(t tree.Tree[Result[Unit]]) (failed bool) {
	defer func() {
		if v := recover(); v != nil {
			if err, ok := v.(error); ok && contractViolation(err) {
				panic(v)
			}
			failed = false
		}
	}()
	return t.Value().Outcome.IsFailure()
}

// Run p with DefaultTests trials. Returns nil if every trial passed.
func Check(p Testable) error {
	return CheckTick(DefaultTests, p)
}

// Run p with n trials. Returns nil if every trial passed.
func CheckTick(n int, p Testable) error {
	return ReportTick(n, p).Err()
}

// Run p with DefaultTests trials and return the report
func ReportOf(p Testable) Report {
	return ReportTick(DefaultTests, p)
}

// Run p with n trials from a random seed and return the report
func ReportTick(n int, p Testable) Report {
	r := NewRunner(n, DefaultDiscardLimit, NoShrinkLimit, seed.Random(), 1, nil)
	return r.Run(p)
}
