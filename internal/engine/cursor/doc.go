// Package cursor maps native selection endpoints in a rendered post to
// logical positions, and back.
//
// A native endpoint is a (node, offset) pair as reported by the rendered
// tree's selection: an offset into a text node counts UTF-16 code units, an
// offset into an element counts child slots. A logical position is a
// (section, offset) pair from package post.
//
// Resolution Model:
//
// The Resolver computes, for every endpoint, the logical length of section
// content that precedes it. Text markers contribute their length, atoms
// contribute one, and every other rendered node contributes nothing, so
// markup elements and the zero-width padding around atoms never shift
// offsets:
//
//	<p>aa<span atom>&zwnj;<span payload/>&zwnj;</span>cc</p>
//	    0 1 2      2           2        3       3 4 5
//
// Every caret slot around an atom collapses to one of the two positions
// bracketing it. Cards are opaque; every endpoint on or inside a card
// resolves to offset 0 or 1 of the card section.
//
// Card Boundary Repair:
//
// After keyboard navigation across a card, native selections report the
// caret on the edge of the neighbouring markup section element. With repair
// enabled (the default), an endpoint placed directly on a markup section
// element that resolves to the section head right after a card reports the
// card tail instead; one that resolves to the section tail right before a
// card reports the card head. Endpoints in text are never repaired.
//
// Basic usage:
//
//	r := cursor.NewResolver(tree)
//	pos, err := r.FromNode(node, offset)
//
//	c := cursor.New(selection, r)
//	rng, err := c.Range()
package cursor
