package plugin

import (
	"fmt"

	"golang.org/x/net/html"
)

// Kind identifies whether a plugin renders cards or atoms.
type Kind int

const (
	// KindCard renders a block-level card section.
	KindCard Kind = iota
	// KindAtom renders an inline atom.
	KindAtom
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// ParseKind parses "card" or "atom".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "card":
		return KindCard, nil
	case "atom":
		return KindAtom, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidPlugin, s)
	}
}

// Mode says which hook the editor is running.
type Mode int

const (
	// ModeDisplay runs the render hook.
	ModeDisplay Mode = iota
	// ModeEdit runs a card's edit hook.
	ModeEdit
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "display"
}

// Env is passed to render and edit hooks.
type Env struct {
	// Name is the card or atom name from the post.
	Name string
	// Value is the atom's text value; empty for cards.
	Value string
	// Payload is the section or atom payload.
	Payload map[string]any
	// Mode is the hook being run.
	Mode Mode
}

// Plugin renders a card or an atom.
// Render may return a nil node to render nothing.
type Plugin interface {
	Name() string
	Kind() Kind
	Render(env Env) (*html.Node, error)
}

// Editable is implemented by cards that provide an edit hook.
type Editable interface {
	Plugin
	Edit(env Env) (*html.Node, error)
}

// RenderFunc is a render or edit hook.
type RenderFunc func(env Env) (*html.Node, error)

type funcPlugin struct {
	name   string
	kind   Kind
	render RenderFunc
}

func (p *funcPlugin) Name() string { return p.name }
func (p *funcPlugin) Kind() Kind   { return p.kind }

func (p *funcPlugin) Render(env Env) (*html.Node, error) {
	if p.render == nil {
		return nil, nil
	}
	return p.render(env)
}

type editableCard struct {
	funcPlugin
	edit RenderFunc
}

func (c *editableCard) Edit(env Env) (*html.Node, error) {
	return c.edit(env)
}

// NewCard creates a card plugin from hooks. A nil edit hook produces a card
// that does not implement Editable.
func NewCard(name string, render, edit RenderFunc) Plugin {
	base := funcPlugin{name: name, kind: KindCard, render: render}
	if edit == nil {
		return &base
	}
	return &editableCard{funcPlugin: base, edit: edit}
}

// NewAtom creates an atom plugin from a render hook.
func NewAtom(name string, render RenderFunc) Plugin {
	return &funcPlugin{name: name, kind: KindAtom, render: render}
}

// Edit runs p's edit hook, failing with ErrNotEditable when p has none.
func Edit(p Plugin, env Env) (*html.Node, error) {
	e, ok := p.(Editable)
	if !ok {
		return nil, fmt.Errorf("%s: %w", p.Name(), ErrNotEditable)
	}
	env.Mode = ModeEdit
	return e.Edit(env)
}

// Validate checks that p has a name and a known kind.
func Validate(p Plugin) error {
	if p == nil {
		return fmt.Errorf("%w: nil plugin", ErrInvalidPlugin)
	}
	if p.Name() == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPlugin)
	}
	if k := p.Kind(); k != KindCard && k != KindAtom {
		return fmt.Errorf("%w: %s has unknown kind %d", ErrInvalidPlugin, p.Name(), k)
	}
	return nil
}
