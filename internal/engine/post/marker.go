package post

import (
	"fmt"
	"strings"

	"github.com/dshills/richcursor/internal/dom"
	"github.com/google/uuid"
)

// Markup tag names accepted on text markers.
var markupTags = map[string]bool{
	"a":      true,
	"b":      true,
	"code":   true,
	"em":     true,
	"i":      true,
	"s":      true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"u":      true,
}

// IsValidMarkup reports whether tag may be used as a marker markup.
func IsValidMarkup(tag string) bool {
	return markupTags[strings.ToLower(tag)]
}

// Atom describes an inline atom rendered by an atom plugin.
type Atom struct {
	Name    string
	Payload map[string]any
}

// Marker is a run of text, or an atom, inside a markup section.
type Marker struct {
	id      uuid.UUID
	section *MarkupSection

	// Value is the marker text. For atoms it is the atom's value, which
	// does not affect the marker's length.
	Value string

	// Markups are the formatting tags applied to the text, outermost first.
	Markups []string

	atom *Atom
}

// NewMarker creates a text marker.
func NewMarker(value string, markups ...string) (*Marker, error) {
	normalized := make([]string, 0, len(markups))
	for _, m := range markups {
		tag := strings.ToLower(m)
		if !markupTags[tag] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMarkup, m)
		}
		normalized = append(normalized, tag)
	}
	return &Marker{id: uuid.New(), Value: value, Markups: normalized}, nil
}

// NewAtom creates an atom marker.
func NewAtom(name, value string, payload map[string]any) *Marker {
	if payload == nil {
		payload = map[string]any{}
	}
	return &Marker{
		id:    uuid.New(),
		Value: value,
		atom:  &Atom{Name: name, Payload: payload},
	}
}

// ID returns the marker's identity.
func (m *Marker) ID() uuid.UUID {
	return m.id
}

// Section returns the owning section, or nil when detached.
func (m *Marker) Section() *MarkupSection {
	return m.section
}

// IsAtom returns true for atom markers.
func (m *Marker) IsAtom() bool {
	return m.atom != nil
}

// Atom returns the atom description, or nil for text markers.
func (m *Marker) Atom() *Atom {
	return m.atom
}

// Length returns the marker's contribution to its section's length.
func (m *Marker) Length() int {
	if m.atom != nil {
		return 1
	}
	return dom.UTF16Len(m.Value)
}

// IsEmpty returns true if the marker contributes nothing.
func (m *Marker) IsEmpty() bool {
	return m.Length() == 0
}

// String returns a short description of the marker.
func (m *Marker) String() string {
	if m.atom != nil {
		return fmt.Sprintf("Atom(%s %q)", m.atom.Name, m.Value)
	}
	return fmt.Sprintf("Marker(%q)", m.Value)
}
