package editor

import (
	"fmt"

	"github.com/dshills/richcursor/internal/config"
	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/engine/cursor"
	"github.com/dshills/richcursor/internal/engine/post"
	"github.com/dshills/richcursor/internal/logging"
	"github.com/dshills/richcursor/internal/plugin"
	"github.com/dshills/richcursor/internal/renderer"
	"golang.org/x/net/html"
)

// Editor renders a post and reports the native selection as positions.
type Editor struct {
	post      *post.Post
	cfg       *config.Config
	logger    *logging.Logger
	selection *dom.Selection

	cards        []plugin.Plugin
	atoms        []plugin.Plugin
	plugins      []plugin.Plugin
	registryOpts []plugin.RegistryOption
	registry     *plugin.Registry

	element *html.Node
	tree    *renderer.Tree
	cursor  *cursor.Cursor

	unsubscribe func()
	listeners   map[int]func(cursor.Range)
	nextID      int
	lastRange   cursor.Range

	destroyed bool
}

// New creates an editor for p. A nil post is treated as an empty one.
func New(p *post.Post, opts ...Option) (*Editor, error) {
	if p == nil {
		p = post.New()
	}
	e := &Editor{
		post:      p,
		cfg:       config.New(),
		logger:    logging.Nop(),
		selection: dom.NewSelection(),
		listeners: make(map[int]func(cursor.Range)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("editor")

	e.registry = plugin.NewRegistry(e.registryOpts...)
	if err := e.register(plugin.KindCard, e.cards); err != nil {
		return nil, err
	}
	if err := e.register(plugin.KindAtom, e.atoms); err != nil {
		return nil, err
	}
	if err := e.registry.Register(e.plugins...); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Editor) register(kind plugin.Kind, plugins []plugin.Plugin) error {
	for _, p := range plugins {
		if p != nil && p.Kind() != kind {
			return fmt.Errorf("%w: %s is not a %s", plugin.ErrInvalidPlugin, p.Name(), kind)
		}
	}
	return e.registry.Register(plugins...)
}

// Render renders the post into root, replacing its children, and starts
// tracking the selection. An editor renders once.
func (e *Editor) Render(root *html.Node) error {
	switch {
	case e.destroyed:
		return ErrDestroyed
	case e.tree != nil:
		return ErrAlreadyRendered
	case root == nil:
		return ErrNilRoot
	}

	if err := e.render(root); err != nil {
		return err
	}
	e.unsubscribe = e.selection.OnChange(func(*dom.Selection) {
		e.selectionDidChange()
	})
	e.logger.Info("rendered %d sections", e.post.Len())
	return nil
}

// Rerender renders the post again into the same element. The native
// selection points at the discarded nodes, so it is cleared.
func (e *Editor) Rerender() error {
	switch {
	case e.destroyed:
		return ErrDestroyed
	case e.tree == nil:
		return ErrNotRendered
	}
	if err := e.render(e.element); err != nil {
		return err
	}
	e.lastRange = cursor.Range{}
	e.selection.RemoveAllRanges()
	return nil
}

func (e *Editor) render(root *html.Node) error {
	rc := e.cfg.Render()
	r := renderer.New(e.registry, renderer.Options{
		AtomClass: rc.AtomClass,
		CardClass: rc.CardClass,
		Logger:    e.logger,
	})
	tree, err := r.Render(e.post, root)
	if err != nil {
		return fmt.Errorf("rendering post: %w", err)
	}

	resolver := cursor.NewResolver(tree,
		cursor.WithCardBoundaryRepair(e.cfg.Cursor().CardBoundaryRepair),
		cursor.WithLogger(e.logger),
	)
	e.element = root
	e.tree = tree
	e.cursor = cursor.New(e.selection, resolver)
	return nil
}

// Post returns the post.
func (e *Editor) Post() *post.Post {
	return e.post
}

// Registry returns the plugin registry.
func (e *Editor) Registry() *plugin.Registry {
	return e.registry
}

// Config returns the configuration.
func (e *Editor) Config() *config.Config {
	return e.cfg
}

// Element returns the root element, or nil before Render.
func (e *Editor) Element() *html.Node {
	return e.element
}

// Tree returns the render tree, or nil before Render.
func (e *Editor) Tree() *renderer.Tree {
	return e.tree
}

// Selection returns the native selection.
func (e *Editor) Selection() *dom.Selection {
	return e.selection
}

// Cursor returns the cursor, or nil before Render.
func (e *Editor) Cursor() *cursor.Cursor {
	return e.cursor
}

// IsRendered reports whether the editor has been rendered and not destroyed.
func (e *Editor) IsRendered() bool {
	return e.tree != nil && !e.destroyed
}

func (e *Editor) ready() error {
	if e.destroyed {
		return ErrDestroyed
	}
	if e.tree == nil {
		return ErrNotRendered
	}
	return nil
}

// Offsets returns the selection in selection order.
func (e *Editor) Offsets() (cursor.Range, error) {
	if err := e.ready(); err != nil {
		return cursor.Range{}, err
	}
	return e.cursor.Offsets()
}

// Range returns the selection in document order.
func (e *Editor) Range() (cursor.Range, error) {
	if err := e.ready(); err != nil {
		return cursor.Range{}, err
	}
	return e.cursor.Range()
}

// SelectRange sets the native selection to r.
func (e *Editor) SelectRange(r cursor.Range) error {
	if err := e.ready(); err != nil {
		return err
	}
	return e.cursor.SelectRange(r)
}

// CursorDidChange registers fn to be called with the new range whenever the
// native selection changes to a resolvable range different from the last
// one reported. The returned function removes the callback.
func (e *Editor) CursorDidChange(fn func(cursor.Range)) func() {
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	return func() {
		delete(e.listeners, id)
	}
}

func (e *Editor) selectionDidChange() {
	if e.ready() != nil {
		return
	}
	rng, err := e.cursor.Range()
	if err != nil {
		e.logger.Debug("ignoring selection change: %v", err)
		return
	}
	if rng.Equal(e.lastRange) {
		return
	}
	e.lastRange = rng
	for i := 0; i < e.nextID; i++ {
		if fn, ok := e.listeners[i]; ok {
			fn(rng)
		}
	}
}

// Destroy detaches the editor from the selection and empties its element.
// It is safe to call more than once.
func (e *Editor) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	if e.element != nil {
		dom.Clear(e.element)
	}
	e.listeners = make(map[int]func(cursor.Range))
	e.logger.Debug("destroyed")
}
