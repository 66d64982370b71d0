// Package post provides the abstract document model the editor edits: a
// Post made of Sections, markup sections made of Markers, and the Position
// and Range value types that address it.
//
// The package provides:
//
//   - Post, an ordered list of sections that owns them
//   - MarkupSection (text block) and CardSection (opaque block)
//   - Marker, a run of text or an inline atom inside a markup section
//   - Position, a (section, offset) pair ordered by document order
//   - Range, a head/tail pair of positions that may run backward
//   - Builder, a small DSL for assembling posts
//
// Lengths:
//
// A markup section's length is the sum of its markers' lengths. A text
// marker contributes its length in UTF-16 code units (the unit native
// selections count in); an atom contributes exactly 1. A card section
// always has length 1: offset 0 is the card's head, offset 1 its tail.
//
// Basic usage:
//
//	p, err := post.Build(func(b *post.Builder) *post.Post {
//	    return b.Post(
//	        b.MarkupSection("p", b.Marker("aa"), b.Atom("mention", "@bob", nil), b.Marker("cc")),
//	        b.CardSection("image", nil),
//	    )
//	})
//
//	head := p.Head().HeadPosition()  // (section 0, offset 0)
//	tail := p.Tail().TailPosition()  // (section 1, offset 1)
//	r := post.NewRange(tail, head)   // backward
//	r = r.Normalized()               // head <= tail
//
// Identity:
//
// Every section and marker carries a uuid. Renderers key their lookup tables
// on it so the model never holds references to rendered nodes.
package post
