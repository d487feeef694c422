package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a quiz document was rejected.
// Every kind is terminal: the first violation found wins.
type ErrorKind int

// Error kinds in the order the validator can encounter them.
const (
	InvalidSource ErrorKind = iota + 1
	MalformedStructure
	MissingValues
	InvalidDefaults
	InvalidRange
	InvalidRangeValue
	InvalidRangeValueRating
	IncompleteQuestion
	AnswerMissing
	AnswerMissingRating
)

var kindMessages = map[ErrorKind]string{
	InvalidSource:           "is invalid yaml or the resource is inaccessible",
	MalformedStructure:      "has unexpected model structure",
	MissingValues:           "misses model values",
	InvalidDefaults:         "contains invalid defaults for scale in meta",
	InvalidRange:            "contains an invalid range of scale in meta",
	InvalidRangeValue:       "contains an invalid default value for the scale",
	InvalidRangeValueRating: "contains an invalid answer rating for the scale",
	IncompleteQuestion:      "has incomplete questions",
	AnswerMissing:           "misses an answer",
	AnswerMissingRating:     "misses a rating for an answer",
}

var kindNames = map[ErrorKind]string{
	InvalidSource:           "InvalidSource",
	MalformedStructure:      "MalformedStructure",
	MissingValues:           "MissingValues",
	InvalidDefaults:         "InvalidDefaults",
	InvalidRange:            "InvalidRange",
	InvalidRangeValue:       "InvalidRangeValue",
	InvalidRangeValueRating: "InvalidRangeValueRating",
	IncompleteQuestion:      "IncompleteQuestion",
	AnswerMissing:           "AnswerMissing",
	AnswerMissingRating:     "AnswerMissingRating",
}

// Error implements the error interface so kinds work with errors.Is.
func (k ErrorKind) Error() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// String returns the kind's identifier, e.g. "MissingValues".
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ValidationError is returned when a document cannot be parsed or validated.
// Question and Answer are 1-based positions; zero means not applicable.
type ValidationError struct {
	Kind     ErrorKind
	Question int
	Answer   int
	Cause    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Question > 0 {
		parts = append(parts, fmt.Sprintf("question %d", e.Question))
	}
	if e.Answer > 0 {
		parts = append(parts, fmt.Sprintf("answer %d", e.Answer))
	}
	msg := e.Kind.Error()
	if len(parts) > 0 {
		msg = fmt.Sprintf("%s (at %s)", msg, strings.Join(parts, ", "))
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// KindOf extracts the ErrorKind from err. Returns 0 when err carries none.
func KindOf(err error) ErrorKind {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind
	}
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind
	}
	return 0
}

func fail(kind ErrorKind, question, answer int) *ValidationError {
	return &ValidationError{Kind: kind, Question: question, Answer: answer}
}
