package renderer

import (
	"fmt"

	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/engine/post"
	"github.com/dshills/richcursor/internal/logging"
	"github.com/dshills/richcursor/internal/plugin"
	"golang.org/x/net/html"
)

// Options configures rendering.
type Options struct {
	// AtomClass is the class of atom wrapper elements.
	AtomClass string
	// CardClass is the class of card wrapper elements.
	CardClass string
	// Logger receives debug output. Nil disables logging.
	Logger *logging.Logger
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		AtomClass: "-mobiledoc-kit__atom",
		CardClass: "__mobiledoc-card",
	}
}

// Renderer paints posts into html node trees.
type Renderer struct {
	registry *plugin.Registry
	opts     Options
	logger   *logging.Logger
}

// New creates a renderer resolving cards and atoms through registry.
func New(registry *plugin.Registry, opts Options) *Renderer {
	defaults := DefaultOptions()
	if opts.AtomClass == "" {
		opts.AtomClass = defaults.AtomClass
	}
	if opts.CardClass == "" {
		opts.CardClass = defaults.CardClass
	}
	if registry == nil {
		registry = plugin.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Renderer{
		registry: registry,
		opts:     opts,
		logger:   logger.WithComponent("renderer"),
	}
}

// Options returns the renderer options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render replaces the children of root with the rendering of p and returns
// the tree describing it. On error root is left empty.
func (r *Renderer) Render(p *post.Post, root *html.Node) (*Tree, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if p == nil {
		return nil, ErrNilPost
	}

	dom.Clear(root)
	tree := newTree(p, root)

	for _, s := range p.Sections() {
		el, err := r.renderSection(tree, s)
		if err != nil {
			dom.Clear(root)
			return nil, err
		}
		dom.Append(root, el)
	}

	r.logger.Debug("rendered %d sections (%d render nodes)", p.Len(), tree.Len())
	return tree, nil
}

func (r *Renderer) renderSection(tree *Tree, s post.Section) (*html.Node, error) {
	switch section := s.(type) {
	case *post.MarkupSection:
		return r.renderMarkupSection(tree, section)
	case *post.CardSection:
		return r.renderCardSection(tree, section)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSection, s)
	}
}

func (r *Renderer) renderMarkupSection(tree *Tree, s *post.MarkupSection) (*html.Node, error) {
	el := dom.Element(s.TagName())
	tree.add(&Node{Kind: KindMarkupSection, Element: el, Section: s})

	if len(s.Markers()) == 0 {
		dom.Append(el, dom.Element("br"))
		return el, nil
	}

	for _, m := range s.Markers() {
		if m.IsAtom() {
			wrapper, err := r.renderAtom(tree, s, m)
			if err != nil {
				return nil, err
			}
			dom.Append(el, wrapper)
			continue
		}
		dom.Append(el, r.renderMarker(tree, s, m))
	}
	return el, nil
}

// renderMarker renders a text marker nested inside its markup elements and
// returns the outermost node.
func (r *Renderer) renderMarker(tree *Tree, s *post.MarkupSection, m *post.Marker) *html.Node {
	text := dom.Text(m.Value)
	tree.add(&Node{Kind: KindMarker, Element: text, Section: s, Marker: m})

	outer := text
	for i := len(m.Markups) - 1; i >= 0; i-- {
		outer = dom.Append(dom.Element(m.Markups[i]), outer)
	}
	return outer
}

func (r *Renderer) renderAtom(tree *Tree, s *post.MarkupSection, m *post.Marker) (*html.Node, error) {
	atom := m.Atom()
	p, err := r.registry.Atom(atom.Name)
	if err != nil {
		return nil, &PluginError{Kind: "atom", Name: atom.Name, Err: err}
	}
	content, err := p.Render(plugin.Env{Name: atom.Name, Value: m.Value, Payload: atom.Payload})
	if err != nil {
		return nil, &PluginError{Kind: "atom", Name: atom.Name, Err: err}
	}

	wrapper := dom.Element("span", dom.Attr("class", r.opts.AtomClass))
	payload := dom.Append(dom.Element("span", dom.Attr("contenteditable", "false")), content)
	head, tail := dom.Text(dom.ZWNJ), dom.Text(dom.ZWNJ)
	dom.Append(wrapper, head, payload, tail)

	tree.add(&Node{
		Kind:    KindAtom,
		Element: wrapper,
		Section: s,
		Marker:  m,
		HeadPad: head,
		TailPad: tail,
		Payload: payload,
	})
	return wrapper, nil
}

func (r *Renderer) renderCardSection(tree *Tree, s *post.CardSection) (*html.Node, error) {
	p, err := r.registry.Card(s.Name())
	if err != nil {
		return nil, &PluginError{Kind: "card", Name: s.Name(), Err: err}
	}
	content, err := p.Render(plugin.Env{Name: s.Name(), Payload: s.Payload()})
	if err != nil {
		return nil, &PluginError{Kind: "card", Name: s.Name(), Err: err}
	}

	wrapper := dom.Element("div", dom.Attr("class", r.opts.CardClass))
	payload := dom.Append(dom.Element("div", dom.Attr("contenteditable", "false")), content)
	head, tail := dom.Text(dom.ZWNJ), dom.Text(dom.ZWNJ)
	dom.Append(wrapper, head, payload, tail)

	tree.add(&Node{
		Kind:    KindCardSection,
		Element: wrapper,
		Section: s,
		HeadPad: head,
		TailPad: tail,
		Payload: payload,
	})
	return wrapper, nil
}
