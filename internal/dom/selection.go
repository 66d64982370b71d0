package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

// Point is a native boundary point: a node and an offset into it.
type Point struct {
	Node   *html.Node
	Offset int
}

// IsZero reports whether the point has no node.
func (p Point) IsZero() bool {
	return p.Node == nil
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	if p.Node == nil {
		return "Point(nil)"
	}
	switch p.Node.Type {
	case html.TextNode:
		return fmt.Sprintf("Point(#text %q, %d)", p.Node.Data, p.Offset)
	default:
		return fmt.Sprintf("Point(<%s>, %d)", p.Node.Data, p.Offset)
	}
}

// ValidatePoint checks that node can hold a boundary point at offset.
func ValidatePoint(node *html.Node, offset int) error {
	if node == nil {
		return ErrNotFound
	}
	if node.Type == html.DoctypeNode {
		return ErrInvalidNodeType
	}
	if offset < 0 || offset > Length(node) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexSize, offset, Length(node))
	}
	return nil
}

// Selection is the live native selection of a document.
// The anchor is where the selection started, the focus is where it ends;
// the focus may precede the anchor for backward selections.
type Selection struct {
	anchor    Point
	focus     Point
	hasRange  bool
	listeners map[int]func(*Selection)
	nextID    int
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{listeners: make(map[int]func(*Selection))}
}

// Anchor returns the anchor boundary point.
func (s *Selection) Anchor() Point {
	return s.anchor
}

// Focus returns the focus boundary point.
func (s *Selection) Focus() Point {
	return s.focus
}

// RangeCount returns 1 when the selection holds a range, 0 otherwise.
func (s *Selection) RangeCount() int {
	if s.hasRange {
		return 1
	}
	return 0
}

// IsCollapsed returns true if anchor and focus are the same point.
// An empty selection is collapsed.
func (s *Selection) IsCollapsed() bool {
	return !s.hasRange || s.anchor == s.focus
}

// Type returns "None", "Caret" or "Range".
func (s *Selection) Type() string {
	switch {
	case !s.hasRange:
		return "None"
	case s.anchor == s.focus:
		return "Caret"
	default:
		return "Range"
	}
}

// Collapse places a caret at (node, offset).
func (s *Selection) Collapse(node *html.Node, offset int) error {
	return s.SetBaseAndExtent(node, offset, node, offset)
}

// SetBaseAndExtent sets the anchor and focus of the selection.
// The selection is left unchanged when either point is invalid.
func (s *Selection) SetBaseAndExtent(anchorNode *html.Node, anchorOffset int, focusNode *html.Node, focusOffset int) error {
	if err := ValidatePoint(anchorNode, anchorOffset); err != nil {
		return fmt.Errorf("anchor: %w", err)
	}
	if err := ValidatePoint(focusNode, focusOffset); err != nil {
		return fmt.Errorf("focus: %w", err)
	}
	s.anchor = Point{Node: anchorNode, Offset: anchorOffset}
	s.focus = Point{Node: focusNode, Offset: focusOffset}
	s.hasRange = true
	s.notify()
	return nil
}

// Extend moves the focus to (node, offset), keeping the anchor.
func (s *Selection) Extend(node *html.Node, offset int) error {
	if !s.hasRange {
		return s.Collapse(node, offset)
	}
	return s.SetBaseAndExtent(s.anchor.Node, s.anchor.Offset, node, offset)
}

// RemoveAllRanges empties the selection.
func (s *Selection) RemoveAllRanges() {
	if !s.hasRange {
		return
	}
	s.anchor = Point{}
	s.focus = Point{}
	s.hasRange = false
	s.notify()
}

// OnChange registers fn to be called synchronously after every change.
// The returned function removes the listener.
func (s *Selection) OnChange(fn func(*Selection)) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]func(*Selection))
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

func (s *Selection) notify() {
	for i := 0; i < s.nextID; i++ {
		if fn, ok := s.listeners[i]; ok {
			fn(s)
		}
	}
}

// String returns a string representation of the selection.
func (s *Selection) String() string {
	if !s.hasRange {
		return "Selection(none)"
	}
	if s.anchor == s.focus {
		return fmt.Sprintf("Caret(%s)", s.anchor)
	}
	return fmt.Sprintf("Selection(%s→%s)", s.anchor, s.focus)
}
