package cursor

import (
	"github.com/dshills/richcursor/internal/dom"
)

// Cursor reads and writes a native selection in terms of logical positions.
// Reads never modify the post or the native selection.
type Cursor struct {
	selection *dom.Selection
	resolver  *Resolver
}

// New creates a cursor over a native selection.
func New(selection *dom.Selection, resolver *Resolver) *Cursor {
	return &Cursor{selection: selection, resolver: resolver}
}

// Selection returns the native selection.
func (c *Cursor) Selection() *dom.Selection {
	return c.selection
}

// Resolver returns the resolver used to map endpoints.
func (c *Cursor) Resolver() *Resolver {
	return c.resolver
}

// HasCursor reports whether the native selection has a range whose anchor
// lies within the rendered post.
func (c *Cursor) HasCursor() bool {
	if c.selection == nil || c.selection.RangeCount() == 0 {
		return false
	}
	tree := c.resolver.Tree()
	return tree != nil && tree.Contains(c.selection.Anchor().Node)
}

// HasSelection reports whether the cursor spans a non-empty native range.
func (c *Cursor) HasSelection() bool {
	return c.HasCursor() && !c.selection.IsCollapsed()
}

// Offsets resolves the native anchor and focus independently and returns
// them as the head and tail of a range, in selection order. If either
// endpoint fails to resolve, the whole query fails.
func (c *Cursor) Offsets() (Range, error) {
	if c.selection == nil || c.selection.RangeCount() == 0 {
		return Range{}, ErrNoSelection
	}
	head, err := c.resolver.FromPoint(c.selection.Anchor())
	if err != nil {
		return Range{}, err
	}
	tail, err := c.resolver.FromPoint(c.selection.Focus())
	if err != nil {
		return Range{}, err
	}
	return Range{Head: head, Tail: tail}, nil
}

// Range returns Offsets normalized to document order.
func (c *Cursor) Range() (Range, error) {
	r, err := c.Offsets()
	if err != nil {
		return Range{}, err
	}
	return r.Normalized(), nil
}

// SelectRange sets the native selection to r, keeping its direction.
func (c *Cursor) SelectRange(r Range) error {
	if c.selection == nil {
		return ErrNoSelection
	}
	anchor, err := c.resolver.ToNative(r.Head)
	if err != nil {
		return err
	}
	focus, err := c.resolver.ToNative(r.Tail)
	if err != nil {
		return err
	}
	return c.selection.SetBaseAndExtent(anchor.Node, anchor.Offset, focus.Node, focus.Offset)
}

// SelectPosition collapses the native selection to p.
func (c *Cursor) SelectPosition(p Position) error {
	return c.SelectRange(Range{Head: p, Tail: p})
}
