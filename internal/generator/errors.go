package generator

import (
	"errors"
	"fmt"

	oerrors "github.com/Diomede5/init-web-app/internal/errors"
)

// StepError reports the step that aborted generation. It unwraps to both
// the taxonomy sentinel and the underlying cause.
type StepError struct {
	// Index is the zero-based position of the step in the plan.
	Index int
	Step  Step

	// Kind is one of the sentinels in internal/errors.
	Kind  error
	Cause error

	// ExitCode is set for ErrToolExit.
	ExitCode int
}

// Error implements the error interface.
func (e *StepError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %v", e.Step, e.Kind)
	}
	if errors.Is(e.Cause, e.Kind) {
		return fmt.Sprintf("%s: %v", e.Step, e.Cause)
	}
	return fmt.Sprintf("%s: %v: %v", e.Step, e.Kind, e.Cause)
}

// Unwrap returns the sentinel and the cause.
func (e *StepError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Artifact returns the artifact of a failed file step.
func (e *StepError) Artifact() string {
	return string(e.Step.Artifact)
}

// Tool returns the tool of a failed process step.
func (e *StepError) Tool() string {
	if e.Step.Run == nil {
		return ""
	}
	return string(e.Step.Run.Tool)
}

func stepErr(i int, s Step, kind, cause error) *StepError {
	return &StepError{Index: i, Step: s, Kind: kind, Cause: cause}
}

// errPathExists reports a project root that is already on disk.
func errPathExists(root string) error {
	return &oerrors.DetailError{
		Type:    "path already exists",
		Message: root,
		Hint:    "remove it or choose another project name",
		Cause:   oerrors.ErrPathExists,
	}
}
