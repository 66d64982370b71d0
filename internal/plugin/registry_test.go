package plugin

import (
	"errors"
	"testing"

	"golang.org/x/net/html"
)

func textRender(s string) RenderFunc {
	return func(Env) (*html.Node, error) {
		return &html.Node{Type: html.TextNode, Data: s}, nil
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	card := NewCard("my-card", textRender("card"), nil)
	atom := NewAtom("my-atom", textRender("my-atom"))

	if err := reg.Register(card, atom); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := reg.Card("my-card")
	if err != nil || got != card {
		t.Errorf("Card lookup = %v, %v", got, err)
	}
	got, err = reg.Atom("my-atom")
	if err != nil || got != atom {
		t.Errorf("Atom lookup = %v, %v", got, err)
	}

	if _, err := reg.Card("my-atom"); !errors.Is(err, ErrUnknownCard) {
		t.Errorf("atoms and cards should not share names, got %v", err)
	}
	if _, err := reg.Atom("missing"); !errors.Is(err, ErrUnknownAtom) {
		t.Errorf("expected ErrUnknownAtom, got %v", err)
	}
}

func TestRegistryRejectsDuplicatesAndInvalid(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(NewCard("c", nil, nil)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register(NewCard("c", nil, nil)); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}
	if err := reg.Register(NewAtom("", nil)); !errors.Is(err, ErrInvalidPlugin) {
		t.Errorf("expected ErrInvalidPlugin, got %v", err)
	}
}

func TestRegistryUnknownHandlers(t *testing.T) {
	reg := NewRegistry(
		WithUnknownCardHandler(func(name string) (Plugin, error) {
			return NewCard(name, textRender("missing card"), nil), nil
		}),
	)

	p, err := reg.Card("anything")
	if err != nil {
		t.Fatalf("unknown handler should supply a card: %v", err)
	}
	if p.Name() != "anything" || p.Kind() != KindCard {
		t.Errorf("unexpected fallback plugin %s/%s", p.Name(), p.Kind())
	}
	if _, err := reg.Atom("anything"); !errors.Is(err, ErrUnknownAtom) {
		t.Errorf("atom fallback not configured, got %v", err)
	}
}

func TestEditCapability(t *testing.T) {
	display := NewCard("plain", textRender("d"), nil)
	if _, err := Edit(display, Env{}); !errors.Is(err, ErrNotEditable) {
		t.Errorf("expected ErrNotEditable, got %v", err)
	}

	var seen Mode
	editable := NewCard("rich", textRender("d"), func(env Env) (*html.Node, error) {
		seen = env.Mode
		return nil, nil
	})
	if _, ok := editable.(Editable); !ok {
		t.Fatal("card with edit hook should be Editable")
	}
	if _, err := Edit(editable, Env{Name: "rich"}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if seen != ModeEdit {
		t.Errorf("edit hook should run in edit mode, got %s", seen)
	}
}

func TestNamesAndKinds(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register(NewCard("b", nil, nil), NewCard("a", nil, nil), NewAtom("z", nil))

	names := reg.Names(KindCard)
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names(card) = %v", names)
	}
	if k, err := ParseKind("atom"); err != nil || k != KindAtom {
		t.Errorf("ParseKind(atom) = %v, %v", k, err)
	}
	if _, err := ParseKind("widget"); !errors.Is(err, ErrInvalidPlugin) {
		t.Errorf("expected ErrInvalidPlugin, got %v", err)
	}
}
