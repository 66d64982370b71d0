package editor

import "errors"

// Editor errors.
var (
	// ErrNotRendered is returned by queries made before Render.
	ErrNotRendered = errors.New("editor is not rendered")

	// ErrAlreadyRendered is returned when rendering an editor twice.
	ErrAlreadyRendered = errors.New("editor is already rendered")

	// ErrDestroyed is returned by any operation on a destroyed editor.
	ErrDestroyed = errors.New("editor is destroyed")

	// ErrNilRoot is returned when rendering into a nil element.
	ErrNilRoot = errors.New("nil root element")
)
