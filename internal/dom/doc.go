// Package dom provides the native-tree plumbing the editor renders into and
// reads selections from.
//
// The rendered tree is built from golang.org/x/net/html nodes. The package
// adds the pieces a browser would otherwise provide:
//
//   - Node constructors and child/offset helpers (Text, Element, ChildAt, IndexOf)
//   - DOM node length semantics (UTF-16 code units for text, child count otherwise)
//   - Boundary points (Point) with offset validation
//   - A live native Selection with anchor/focus endpoints and change listeners
//
// Offsets follow the DOM model: an offset into a text node counts UTF-16 code
// units, an offset into an element counts child slots, so an element with n
// children has n+1 addressable offsets.
//
// Basic usage:
//
//	root := dom.Element("div")
//	p := dom.Append(dom.Element("p"), dom.Text("abc"))
//	dom.Append(root, p)
//
//	sel := dom.NewSelection()
//	sel.Collapse(p.FirstChild, 1)
//	anchor := sel.Anchor() // Point{Node: text "abc", Offset: 1}
//
// Thread Safety:
//
// Nothing in this package is safe for concurrent use. The editor is driven
// from a single event loop, as a browser page is.
package dom
