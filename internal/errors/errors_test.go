//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrValidation, ErrCancelled, ErrPathExists, ErrDirectoryCreate,
		ErrFileWrite, ErrToolLaunch, ErrToolExit, ErrManifestRead,
		ErrManifestWrite, ErrManifestInvalid,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation", ErrValidation, ExitValidationError},
		{"cancelled", ErrCancelled, ExitCancelled},
		{"path exists", ErrPathExists, ExitPathExists},
		{"directory create", ErrDirectoryCreate, ExitDirectoryCreateError},
		{"file write", ErrFileWrite, ExitFileWriteError},
		{"tool launch", ErrToolLaunch, ExitToolLaunchError},
		{"tool exit", ErrToolExit, ExitToolExitError},
		{"manifest read", ErrManifestRead, ExitManifestReadError},
		{"manifest write", ErrManifestWrite, ExitManifestWriteError},
		{"manifest invalid", ErrManifestInvalid, ExitManifestInvalid},
		{"wrapped sentinel", fmt.Errorf("writing page: %w", ErrFileWrite), ExitFileWriteError},
		{"explicit exit error wins", &ExitError{Code: 42, Err: ErrFileWrite}, 42},
		{"unknown error returns general error", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitGeneralError)
	assert.Equal(t, 2, ExitValidationError)
	assert.Equal(t, 3, ExitPathExists)
	assert.Equal(t, 7, ExitToolExitError)
	assert.Equal(t, 10, ExitManifestInvalid)
	assert.Equal(t, 130, ExitCancelled)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Path Exists", ExitCodeName(ExitPathExists))
	assert.Equal(t, "Cancelled", ExitCodeName(ExitCancelled))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "unknown archetype: 9",
		Location: "--archetype",
		Hint:     "choose 1-6",
	}

	assert.Equal(t, "validation failed: unknown archetype: 9 (--archetype); choose 1-6", detail.Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("project name is empty", "--name", "")

	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "--name", detail.Location)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrManifestInvalid, "package.json")

	assert.ErrorIs(t, wrapped, ErrManifestInvalid)
	assert.Equal(t, "package.json: manifest invalid", wrapped.Error())
}
