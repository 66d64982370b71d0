package dom

import "errors"

// Errors returned by boundary point validation.
var (
	// ErrNotFound indicates a boundary point without a node.
	ErrNotFound = errors.New("node not found")

	// ErrIndexSize indicates an offset outside [0, Length(node)].
	ErrIndexSize = errors.New("offset out of range")

	// ErrInvalidNodeType indicates a node that cannot hold a boundary point.
	ErrInvalidNodeType = errors.New("invalid node type for boundary point")
)
