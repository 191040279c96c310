package flows

import (
	"errors"
	"strings"
)

var (
	ErrFlowFinished = errors.New("flow already finished")
	ErrBusy         = errors.New("submission in progress")
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
	order  []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for _, f := range e.order {
		msg, ok := e.Fields[f]
		if !ok {
			continue
		}
		b.WriteString("; ")
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(msg)
	}
	return b.String()
}

// SubmissionError is the general banner shown when the submit step fails
// after validation passed.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
