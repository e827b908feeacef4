package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/tspaths/internal/model"
)

// Pipeline step names used in StepError.
const (
	StepLoadTSConfig      = "loadTSConfig"
	StepResolvePaths      = "resolvePaths"
	StepComputeAliases    = "computeAliases"
	StepGetFilesToProcess = "getFilesToProcess"
	StepGenerateChanges   = "generateChanges"
	StepApplyChanges      = "applyChanges"
	StepExportReport      = "exportReport"
)

var (
	// ErrFileNotFound is matched by every FileNotFoundError.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidAlias is returned for path aliases starting with a relative prefix.
	ErrInvalidAlias = errors.New("invalid alias")
)

// StepError wraps a failure of one pipeline step.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepError(step string, err error) error {
	var se *StepError
	if errors.As(err, &se) {
		return err
	}

	return &StepError{Step: step, Err: err}
}

// FileNotFoundError names a file that a step expected to exist.
type FileNotFoundError struct {
	Step string
	Path m.Path
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s: file not found: %s", e.Step, e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return ErrFileNotFound
}
