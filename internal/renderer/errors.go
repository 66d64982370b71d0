package renderer

import (
	"errors"
	"fmt"
)

// Renderer errors.
var (
	// ErrNilRoot is returned when rendering into a nil root node.
	ErrNilRoot = errors.New("nil root node")

	// ErrNilPost is returned when rendering a nil post.
	ErrNilPost = errors.New("nil post")

	// ErrUnsupportedSection is returned for a section variant the renderer does not know.
	ErrUnsupportedSection = errors.New("unsupported section")
)

// PluginError reports a failing card or atom render hook.
type PluginError struct {
	Kind string // "card" or "atom"
	Name string
	Err  error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("rendering %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *PluginError) Unwrap() error {
	return e.Err
}
