package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the input file does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrConversion matches every *Error.
	ErrConversion = errors.New("conversion failed")
)

// Stage names a pipeline step.
type Stage string

const (
	StageRead     Stage = "read"
	StageAssemble Stage = "assemble"
	StageMarshal  Stage = "marshal"
	StageWrite    Stage = "write"
)

// Error is a conversion failure at a given stage.
type Error struct {
	Stage Stage
	Path  string
	Cause error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Cause)
	}

	return fmt.Sprintf("%s: %v", e.Stage, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	return target == ErrConversion
}

func fail(stage Stage, path string, cause error) error {
	return &Error{Stage: stage, Path: path, Cause: cause}
}
