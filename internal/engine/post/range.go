package post

import "fmt"

// Direction describes which way a range runs.
type Direction int

const (
	// DirectionNone is a collapsed range.
	DirectionNone Direction = iota
	// DirectionForward has its head before its tail.
	DirectionForward
	// DirectionBackward has its head after its tail.
	DirectionBackward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Range is a pair of positions. Head is where the selection started and
// Tail where it ends; Head may follow Tail for a backward selection.
// Range is an immutable value type.
type Range struct {
	Head Position
	Tail Position
}

// NewRange creates a range from head to tail.
func NewRange(head, tail Position) Range {
	return Range{Head: head, Tail: tail}
}

// NewCollapsedRange creates a range with head == tail.
func NewCollapsedRange(p Position) Range {
	return Range{Head: p, Tail: p}
}

// IsCollapsed returns true if head equals tail.
func (r Range) IsCollapsed() bool {
	return r.Head.Equal(r.Tail)
}

// IsZero returns true if neither endpoint has a section.
func (r Range) IsZero() bool {
	return r.Head.IsZero() && r.Tail.IsZero()
}

// Direction returns the direction of the range.
func (r Range) Direction() Direction {
	switch c := r.Head.Compare(r.Tail); {
	case c < 0:
		return DirectionForward
	case c > 0:
		return DirectionBackward
	default:
		return DirectionNone
	}
}

// Normalized returns the range with head and tail in document order.
func (r Range) Normalized() Range {
	if r.Head.After(r.Tail) {
		return Range{Head: r.Tail, Tail: r.Head}
	}
	return r
}

// Equal returns true if both ranges have equal heads and tails.
func (r Range) Equal(other Range) bool {
	return r.Head.Equal(other.Head) && r.Tail.Equal(other.Tail)
}

// String returns a string representation of the range.
func (r Range) String() string {
	if r.IsCollapsed() {
		return fmt.Sprintf("Range(%s)", r.Head)
	}
	dir := "→"
	if r.Direction() == DirectionBackward {
		dir = "←"
	}
	return fmt.Sprintf("Range(%s%s%s)", r.Head, dir, r.Tail)
}
