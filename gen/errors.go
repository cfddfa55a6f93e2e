package gen

import "errors"

var (
	// The input to Item, Choice, Frequency or ChoiceRec is empty
	ErrEmptyInput = errors.New("gen: empty input")
	// The weights given to Frequency do not add up to a positive number
	ErrNoWeight = errors.New("gen: no positive weight")
	// Filter gave up finding a value that satisfies the predicate
	ErrFilterExhausted = errors.New("gen: filter exhausted")
)
