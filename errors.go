package fsa

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAutomaton is matched by every ValidationError.
	ErrInvalidAutomaton = errors.New("invalid automaton")

	// ErrNotDeterministic is returned when an operation needs a DFA.
	ErrNotDeterministic = errors.New("operation requires a deterministic automaton")

	// ErrNoCommonAlphabet is returned by intersection and difference when the alphabets are disjoint.
	ErrNoCommonAlphabet = errors.New("automata have no symbols in common")

	// ErrInternal wraps a failure raised inside an operation.
	ErrInternal = errors.New("internal error")
)

// ValidationError Reports why an automaton is structurally invalid.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid automaton: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidAutomaton
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// OperationError Names the operation that failed.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// guard runs one operation. Inputs are validated first; a panic in the engine is
// reported as ErrInternal instead of escaping.
func guard[T any](op string, fn func() (T, error), inputs ...*Automaton) (result T, err error) {
	var zero T
	for _, in := range inputs {
		if err := Validate(in); err != nil {
			return zero, &OperationError{Op: op, Err: err}
		}
	}

	defer func() {
		if r := recover(); r != nil {
			result = zero
			err = &OperationError{Op: op, Err: fmt.Errorf("%w: %v", ErrInternal, r)}
		}
	}()

	result, err = fn()
	if err != nil {
		return zero, &OperationError{Op: op, Err: err}
	}
	return result, nil
}
