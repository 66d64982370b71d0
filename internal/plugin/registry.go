package plugin

import (
	"fmt"
	"sort"
)

// UnknownHandler builds a fallback plugin for a name nothing is registered under.
type UnknownHandler func(name string) (Plugin, error)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithUnknownCardHandler sets the fallback used for unregistered card names.
func WithUnknownCardHandler(h UnknownHandler) RegistryOption {
	return func(r *Registry) {
		r.unknownCard = h
	}
}

// WithUnknownAtomHandler sets the fallback used for unregistered atom names.
func WithUnknownAtomHandler(h UnknownHandler) RegistryOption {
	return func(r *Registry) {
		r.unknownAtom = h
	}
}

// Registry maps card and atom names to plugins.
// Cards and atoms live in separate namespaces.
type Registry struct {
	cards       map[string]Plugin
	atoms       map[string]Plugin
	unknownCard UnknownHandler
	unknownAtom UnknownHandler
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		cards: make(map[string]Plugin),
		atoms: make(map[string]Plugin),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds plugins to the registry.
func (r *Registry) Register(plugins ...Plugin) error {
	for _, p := range plugins {
		if err := Validate(p); err != nil {
			return err
		}
		table := r.table(p.Kind())
		if _, exists := table[p.Name()]; exists {
			return fmt.Errorf("%s %q: %w", p.Kind(), p.Name(), ErrAlreadyRegistered)
		}
		table[p.Name()] = p
	}
	return nil
}

// Card returns the card plugin registered under name.
func (r *Registry) Card(name string) (Plugin, error) {
	if p, ok := r.cards[name]; ok {
		return p, nil
	}
	if r.unknownCard != nil {
		return r.unknownCard(name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCard, name)
}

// Atom returns the atom plugin registered under name.
func (r *Registry) Atom(name string) (Plugin, error) {
	if p, ok := r.atoms[name]; ok {
		return p, nil
	}
	if r.unknownAtom != nil {
		return r.unknownAtom(name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAtom, name)
}

// Names returns the sorted names registered for kind.
func (r *Registry) Names(kind Kind) []string {
	table := r.table(kind)
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) table(kind Kind) map[string]Plugin {
	if kind == KindAtom {
		return r.atoms
	}
	return r.cards
}
