package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrCancelled indicates the session ended before generation started,
	// either at end of input or on interrupt.
	ErrCancelled = errors.New("cancelled")

	// ErrPathExists indicates the project root already exists.
	ErrPathExists = errors.New("path already exists")

	// ErrDirectoryCreate indicates a project directory could not be created.
	ErrDirectoryCreate = errors.New("directory create failed")

	// ErrFileWrite indicates a generated file could not be written.
	ErrFileWrite = errors.New("file write failed")

	// ErrToolLaunch indicates an external tool could not be started.
	ErrToolLaunch = errors.New("tool launch failed")

	// ErrToolExit indicates an external tool exited with a non-zero status.
	ErrToolExit = errors.New("tool exited with error")

	// ErrManifestRead indicates a package manifest could not be read.
	ErrManifestRead = errors.New("manifest read failed")

	// ErrManifestWrite indicates a package manifest could not be written.
	ErrManifestWrite = errors.New("manifest write failed")

	// ErrManifestInvalid indicates an edited manifest no longer parses or
	// is missing required entries.
	ErrManifestInvalid = errors.New("manifest invalid")
)
