package post

// Builder assembles posts and collects the first construction error, so a
// whole document can be described in one expression.
type Builder struct {
	err error
}

// Build runs fn with a fresh Builder and returns its post together with the
// first error recorded while building it.
func Build(fn func(b *Builder) *Post) (*Post, error) {
	b := &Builder{}
	p := fn(b)
	if b.err != nil {
		return nil, b.err
	}
	return p, nil
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Post creates a post from sections. Nil sections, left behind by earlier
// failures, are skipped.
func (b *Builder) Post(sections ...Section) *Post {
	p := &Post{}
	for _, s := range sections {
		if s == nil {
			continue
		}
		if err := p.Append(s); err != nil {
			b.fail(err)
		}
	}
	return p
}

// MarkupSection creates a markup section. It returns nil on error.
func (b *Builder) MarkupSection(tagName string, markers ...*Marker) Section {
	kept := markers[:0:0]
	for _, m := range markers {
		if m != nil {
			kept = append(kept, m)
		}
	}
	s, err := NewMarkupSection(tagName, kept...)
	if err != nil {
		b.fail(err)
		return nil
	}
	return s
}

// CardSection creates a card section.
func (b *Builder) CardSection(name string, payload map[string]any) Section {
	return NewCardSection(name, payload)
}

// Marker creates a text marker. It returns nil on error.
func (b *Builder) Marker(value string, markups ...string) *Marker {
	m, err := NewMarker(value, markups...)
	if err != nil {
		b.fail(err)
		return nil
	}
	return m
}

// Atom creates an atom marker.
func (b *Builder) Atom(name, value string, payload map[string]any) *Marker {
	return NewAtom(name, value, payload)
}
