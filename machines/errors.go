package machines

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/turing/tapes"
)

var (
	ErrNoRule            = errors.New("no rule")
	ErrStepLimit         = errors.New("step limit exceeded")
	ErrInvalidDefinition = errors.New("invalid machine definition")
	ErrInvalidRecord     = errors.New("invalid machine record")
)

// NoRuleError reports a halt on a (state, symbol) pair absent from the table.
type NoRuleError struct {
	State  string
	Symbol tapes.Symbol
	Step   int
}

func (e *NoRuleError) Error() string {
	return fmt.Sprintf("no rule for state %q reading %q at step %d", e.State, string(e.Symbol), e.Step)
}

func (e *NoRuleError) Is(target error) bool {
	return target == ErrNoRule
}

// StepLimitError reports a halt caused by exhausting the step budget.
type StepLimitError struct {
	Limit int
	State string
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit of %d reached in state %q without halting, raise the limit or check for an infinite loop", e.Limit, e.State)
}

func (e *StepLimitError) Is(target error) bool {
	return target == ErrStepLimit
}

// DefinitionError collects every problem found while validating a definition.
type DefinitionError struct {
	Problems []error
}

func (e *DefinitionError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidDefinition.Error())
	for _, p := range e.Problems {
		b.WriteString("\n\t")
		b.WriteString(p.Error())
	}
	return b.String()
}

func (e *DefinitionError) Unwrap() []error {
	return e.Problems
}

func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// FieldError is a single problem in an external record.
type FieldError struct {
	Field  string
	Key    string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("field %s[%q]: %s", e.Field, e.Key, e.Reason)
	}
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// RecordError collects every problem found in an external record.
type RecordError struct {
	Problems []error
}

func (e *RecordError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidRecord.Error())
	for _, p := range e.Problems {
		b.WriteString("\n\t")
		b.WriteString(p.Error())
	}
	return b.String()
}

func (e *RecordError) Unwrap() []error {
	return e.Problems
}

func (e *RecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}
