package renderer

import (
	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/engine/post"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Kind identifies what a render node was rendered for.
type Kind int

const (
	// KindMarkupSection is a markup section element.
	KindMarkupSection Kind = iota
	// KindCardSection is a card wrapper element.
	KindCardSection
	// KindMarker is a text marker's text node.
	KindMarker
	// KindAtom is an atom wrapper element.
	KindAtom
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMarkupSection:
		return "markup-section"
	case KindCardSection:
		return "card-section"
	case KindMarker:
		return "marker"
	case KindAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// Node associates a rendered node with the model object it was rendered for.
type Node struct {
	Kind Kind

	// Element is the rendered node: the section element, the card or atom
	// wrapper, or a text marker's text node.
	Element *html.Node

	// Section is the owning section (for markers, the marker's section).
	Section post.Section

	// Marker is set for KindMarker and KindAtom.
	Marker *post.Marker

	// HeadPad and TailPad are the zero-width padding text nodes around
	// cards and atoms. Payload holds the plugin output.
	HeadPad *html.Node
	TailPad *html.Node
	Payload *html.Node
}

// ID returns the identity of the model object behind the node.
func (n *Node) ID() uuid.UUID {
	if n.Marker != nil {
		return n.Marker.ID()
	}
	return n.Section.ID()
}

// Tree is the result of rendering a post: a non-owning association between
// rendered nodes and model objects, in both directions.
type Tree struct {
	root   *html.Node
	post   *post.Post
	byNode map[*html.Node]*Node
	byID   map[uuid.UUID]*Node
}

func newTree(p *post.Post, root *html.Node) *Tree {
	return &Tree{
		root:   root,
		post:   p,
		byNode: make(map[*html.Node]*Node),
		byID:   make(map[uuid.UUID]*Node),
	}
}

func (t *Tree) add(n *Node) {
	t.byNode[n.Element] = n
	t.byID[n.ID()] = n
}

// Root returns the editor root element.
func (t *Tree) Root() *html.Node {
	return t.root
}

// Post returns the rendered post.
func (t *Tree) Post() *post.Post {
	return t.post
}

// Len returns the number of render nodes.
func (t *Tree) Len() int {
	return len(t.byID)
}

// Contains reports whether n is the root or inside it.
func (t *Tree) Contains(n *html.Node) bool {
	return dom.Contains(t.root, n)
}

// Lookup returns the render node whose element is exactly n.
func (t *Tree) Lookup(n *html.Node) (*Node, bool) {
	rn, ok := t.byNode[n]
	return rn, ok
}

// Owner returns the render node of n or of its nearest ancestor that has
// one, stopping at the root.
func (t *Tree) Owner(n *html.Node) (*Node, bool) {
	for ; n != nil && n != t.root; n = n.Parent {
		if rn, ok := t.byNode[n]; ok {
			return rn, true
		}
	}
	return nil, false
}

// SectionOwner returns the render node of the section n belongs to.
func (t *Tree) SectionOwner(n *html.Node) (*Node, bool) {
	rn, ok := t.Owner(n)
	if !ok {
		return nil, false
	}
	if rn.Kind == KindMarker || rn.Kind == KindAtom {
		return t.ForSection(rn.Section)
	}
	return rn, true
}

// ByID returns the render node for a model id.
func (t *Tree) ByID(id uuid.UUID) (*Node, bool) {
	rn, ok := t.byID[id]
	return rn, ok
}

// ForSection returns the render node of s.
func (t *Tree) ForSection(s post.Section) (*Node, bool) {
	if s == nil {
		return nil, false
	}
	return t.ByID(s.ID())
}

// ForMarker returns the render node of m.
func (t *Tree) ForMarker(m *post.Marker) (*Node, bool) {
	if m == nil {
		return nil, false
	}
	return t.ByID(m.ID())
}
