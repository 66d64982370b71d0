package post

import "errors"

// Errors returned by model operations.
var (
	// ErrInvalidOffset indicates a position offset outside [0, section length].
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrInvalidTagName indicates an unsupported markup section tag name.
	ErrInvalidTagName = errors.New("invalid section tag name")

	// ErrInvalidMarkup indicates an unsupported markup tag on a marker.
	ErrInvalidMarkup = errors.New("invalid markup tag name")

	// ErrEmptyPost indicates an operation that needs at least one section.
	ErrEmptyPost = errors.New("post has no sections")

	// ErrAlreadyAttached indicates a section or marker that already has a parent.
	ErrAlreadyAttached = errors.New("already attached to a parent")
)
