package cursor

import (
	"errors"
	"fmt"

	"github.com/dshills/richcursor/internal/dom"
)

// Cursor errors.
var (
	// ErrUnresolvableSelection is returned when a native endpoint does not
	// map to a position in the rendered post.
	ErrUnresolvableSelection = errors.New("unresolvable selection")

	// ErrNoSelection is returned when the native selection has no range.
	ErrNoSelection = errors.New("no selection")

	// ErrNotRendered is returned when a position's section has no render node.
	ErrNotRendered = errors.New("position is not rendered")
)

// ResolveError describes a native endpoint that could not be resolved.
type ResolveError struct {
	Point  dom.Point
	Reason string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("unresolvable selection at %s: %s", e.Point, e.Reason)
}

func (e *ResolveError) Unwrap() error {
	return ErrUnresolvableSelection
}
