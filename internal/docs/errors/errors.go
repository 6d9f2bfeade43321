package errors

// Package errors provides sentinel errors for content-root inspection.
// Callers classify failures with errors.Is.

import "errors"

var (
	// ErrContentRootNotFound indicates the configured content root does not exist.
	ErrContentRootNotFound = errors.New("content root not found")

	// ErrDocsDirWalkFailed indicates filesystem traversal of the content root failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrFileReadFailed indicates reading a discovered document failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrInvalidRelativePath indicates a link resolves outside the content root.
	ErrInvalidRelativePath = errors.New("invalid relative path")

	// ErrScaffoldFailed indicates a stub document could not be created.
	ErrScaffoldFailed = errors.New("document scaffold failed")
)
