package cursor

import (
	"fmt"

	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/engine/post"
	"github.com/dshills/richcursor/internal/logging"
	"github.com/dshills/richcursor/internal/renderer"
	"golang.org/x/net/html"
)

// Position is an alias for post.Position for convenience.
type Position = post.Position

// Range is an alias for post.Range for convenience.
type Range = post.Range

// Option configures a Resolver.
type Option func(*Resolver)

// WithCardBoundaryRepair enables or disables card boundary repair.
func WithCardBoundaryRepair(enabled bool) Option {
	return func(r *Resolver) {
		r.repair = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *logging.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l.WithComponent("cursor")
		}
	}
}

// Resolver maps between native endpoints in a render tree and positions in
// the rendered post. A Resolver never mutates the tree or the post.
type Resolver struct {
	tree   *renderer.Tree
	repair bool
	logger *logging.Logger
}

// NewResolver creates a resolver over tree.
func NewResolver(tree *renderer.Tree, opts ...Option) *Resolver {
	r := &Resolver{
		tree:   tree,
		repair: true,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tree returns the render tree the resolver reads.
func (r *Resolver) Tree() *renderer.Tree {
	return r.tree
}

// CardBoundaryRepair reports whether card boundary repair is enabled.
func (r *Resolver) CardBoundaryRepair() bool {
	return r.repair
}

// FromPoint resolves a native endpoint.
func (r *Resolver) FromPoint(p dom.Point) (Position, error) {
	return r.FromNode(p.Node, p.Offset)
}

// FromNode resolves the native endpoint (node, offset) to a position.
// It fails with an error wrapping ErrUnresolvableSelection when node is nil
// or outside the rendered subtree, when offset is outside [0, Length(node)],
// or when the post has no sections.
func (r *Resolver) FromNode(node *html.Node, offset int) (Position, error) {
	pt := dom.Point{Node: node, Offset: offset}
	fail := func(reason string) (Position, error) {
		r.logger.Debug("cannot resolve %s: %s", pt, reason)
		return Position{}, &ResolveError{Point: pt, Reason: reason}
	}

	switch {
	case r.tree == nil:
		return fail("nothing rendered")
	case node == nil:
		return fail("nil node")
	case r.tree.Post().Len() == 0:
		return fail("post has no sections")
	case !r.tree.Contains(node):
		return fail("node is outside the editor")
	case offset < 0 || offset > dom.Length(node):
		return fail(fmt.Sprintf("offset not in [0, %d]", dom.Length(node)))
	}

	direct := true
	if node == r.tree.Root() {
		node, offset = r.descend(node, offset)
		if node == nil {
			return fail("editor root is empty")
		}
		direct = false
	}

	owner, ok := r.tree.SectionOwner(node)
	if !ok {
		return fail("node is not part of a rendered section")
	}

	var (
		pos Position
		err error
	)
	switch owner.Kind {
	case renderer.KindCardSection:
		pos, err = post.NewPosition(owner.Section, r.cardOffset(owner, node, offset))
	default:
		pos, err = post.NewPosition(owner.Section, r.markupOffset(owner, node, offset))
		if err == nil && direct && r.repair && node == owner.Element {
			pos = r.repairCardBoundary(pos)
		}
	}
	if err != nil {
		return fail(err.Error())
	}

	r.logger.Debug("resolved %s to %s", pt, pos)
	return pos, nil
}

// descend maps an endpoint on the editor root onto a section element: the
// slot before child k becomes the start of child k, and the final slot
// becomes the end of the last child.
func (r *Resolver) descend(root *html.Node, offset int) (*html.Node, int) {
	n := dom.ChildCount(root)
	if n == 0 {
		return nil, 0
	}
	if offset < n {
		return dom.ChildAt(root, offset), 0
	}
	last := root.LastChild
	return last, dom.Length(last)
}

// cardOffset resolves an endpoint inside a card wrapper. The wrapper has
// four slots around its head pad, payload and tail pad; the first two are
// the card head and the last two the card tail.
func (r *Resolver) cardOffset(card *renderer.Node, node *html.Node, offset int) int {
	switch node {
	case card.HeadPad:
		return 0
	case card.TailPad:
		return 1
	case card.Element:
		if offset < 2 {
			return 0
		}
		return 1
	default:
		return 0
	}
}

// markupOffset resolves an endpoint inside a markup section element.
func (r *Resolver) markupOffset(section *renderer.Node, node *html.Node, offset int) int {
	if ms, ok := section.Section.(*post.MarkupSection); ok && ms.IsBlank() {
		return 0
	}

	owner, _ := r.tree.Owner(node)
	if owner != nil && owner.Kind == renderer.KindAtom {
		base := r.before(section.Element, owner.Element)
		switch {
		case node == owner.TailPad:
			return base + 1
		case node == owner.Element && offset >= 2:
			return base + 1
		default:
			return base
		}
	}

	if dom.IsText(node) {
		if owner != nil && owner.Kind == renderer.KindMarker {
			return r.before(section.Element, node) + offset
		}
		return r.before(section.Element, node)
	}

	if offset < dom.ChildCount(node) {
		return r.before(section.Element, dom.ChildAt(node, offset))
	}
	if node == section.Element {
		return section.Section.Length()
	}
	return r.before(section.Element, node) + r.contentLength(node)
}

// repairCardBoundary moves a section-edge position onto an adjacent card.
func (r *Resolver) repairCardBoundary(pos Position) Position {
	p := r.tree.Post()
	if pos.IsHead() {
		if prev := p.Prev(pos.Section); prev != nil && post.IsCard(prev) {
			r.logger.Debug("repaired %s onto preceding card", pos)
			return post.TailPosition(prev)
		}
	}
	if pos.IsTail() {
		if next := p.Next(pos.Section); next != nil && post.IsCard(next) {
			r.logger.Debug("repaired %s onto following card", pos)
			return post.HeadPosition(next)
		}
	}
	return pos
}

// before returns the logical length of the content of section that
// precedes target in document order.
func (r *Resolver) before(section, target *html.Node) int {
	total := 0
	for n := section; n != nil && n != target; {
		var next *html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c == target || dom.Contains(c, target) {
				next = c
				break
			}
			total += r.contentLength(c)
		}
		if next == nil {
			break
		}
		n = next
	}
	return total
}

// contentLength returns the logical length rendered by n and its subtree.
func (r *Resolver) contentLength(n *html.Node) int {
	if rn, ok := r.tree.Lookup(n); ok {
		switch rn.Kind {
		case renderer.KindMarker, renderer.KindAtom:
			return rn.Marker.Length()
		}
	}
	if !dom.IsElement(n) {
		return 0
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += r.contentLength(c)
	}
	return total
}

// ToNative returns a native endpoint that resolves back to pos.
func (r *Resolver) ToNative(pos Position) (dom.Point, error) {
	if r.tree == nil {
		return dom.Point{}, ErrNotRendered
	}
	if _, err := post.NewPosition(pos.Section, pos.Offset); err != nil {
		return dom.Point{}, err
	}
	rn, ok := r.tree.ForSection(pos.Section)
	if !ok {
		return dom.Point{}, fmt.Errorf("%w: %s", ErrNotRendered, pos)
	}

	switch s := pos.Section.(type) {
	case *post.CardSection:
		if pos.Offset == 0 {
			return dom.Point{Node: rn.HeadPad, Offset: 0}, nil
		}
		return dom.Point{Node: rn.TailPad, Offset: dom.Length(rn.TailPad)}, nil

	case *post.MarkupSection:
		if s.IsBlank() {
			// The <br> keeps the endpoint off the section element so that
			// card boundary repair does not apply on the way back.
			if br := rn.Element.FirstChild; br != nil {
				return dom.Point{Node: br, Offset: 0}, nil
			}
			return dom.Point{Node: rn.Element, Offset: 0}, nil
		}
		return r.markupPoint(s, pos.Offset)
	}
	return dom.Point{}, fmt.Errorf("%w: %s", ErrNotRendered, pos)
}

func (r *Resolver) markupPoint(s *post.MarkupSection, offset int) (dom.Point, error) {
	var afterAtom *renderer.Node
	start := 0
	for _, m := range s.Markers() {
		rn, ok := r.tree.ForMarker(m)
		if !ok {
			return dom.Point{}, fmt.Errorf("%w: marker %s", ErrNotRendered, m)
		}
		end := start + m.Length()
		switch {
		case !m.IsAtom() && offset >= start && offset <= end:
			return dom.Point{Node: rn.Element, Offset: offset - start}, nil
		case m.IsAtom() && offset == start:
			return dom.Point{Node: rn.HeadPad, Offset: 0}, nil
		case m.IsAtom() && offset == end:
			afterAtom = rn
		}
		start = end
	}
	if afterAtom != nil {
		return dom.Point{Node: afterAtom.TailPad, Offset: dom.Length(afterAtom.TailPad)}, nil
	}
	return dom.Point{}, fmt.Errorf("%w: offset %d in %s", ErrNotRendered, offset, s)
}
