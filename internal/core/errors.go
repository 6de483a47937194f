package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCommand     = errors.New("invalid command")
	ErrDepartmentNotFound = errors.New("department not found")
)

// ClassificationError reports a line that matches none of the known command shapes.
type ClassificationError struct {
	Line string
	Msg  string
}

func NewClassificationError(line string) *ClassificationError {
	return &ClassificationError{Line: line, Msg: ErrInvalidCommand.Error()}
}

func (e *ClassificationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Line == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %q", e.Msg, e.Line)
}

func (e *ClassificationError) Is(target error) bool {
	return target == ErrInvalidCommand
}

// LookupMiss is returned by a Registry query for a department nobody was added to.
// It is an expected outcome rather than a failure.
type LookupMiss struct {
	Department string
}

func (e *LookupMiss) Error() string {
	return fmt.Sprintf("no employees registered in department %s", e.Department)
}

func (e *LookupMiss) Unwrap() error {
	return ErrDepartmentNotFound
}

// IsLookupMiss reports whether err is a LookupMiss and returns the department it names.
func IsLookupMiss(err error) (string, bool) {
	var miss *LookupMiss
	if errors.As(err, &miss) {
		return miss.Department, true
	}
	return "", false
}
