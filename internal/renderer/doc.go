// Package renderer paints a post into a tree of html nodes and keeps the
// association between model objects and the nodes rendered for them.
//
// The renderer is responsible for:
//   - Rendering markup sections, markers and their markups
//   - Wrapping atoms and cards with zero-width caret padding
//   - Running card and atom plugins' render hooks
//   - Maintaining the Tree lookup table used by selection resolution
//
// Rendered structure:
//
//	<p>aa<span class="-mobiledoc-kit__atom">&zwnj;<span contenteditable="false">…</span>&zwnj;</span><b>cc</b></p>
//	<p><br></p>                                   blank markup section
//	<div class="__mobiledoc-card">&zwnj;<div contenteditable="false">…</div>&zwnj;</div>
//
// The padding text nodes hold a single zero-width non-joiner (dom.ZWNJ) so
// that a native caret has somewhere to land next to content it cannot enter.
//
// Ownership:
//
// The model never points at rendered nodes. The Tree maps rendered nodes to
// their model objects and model ids to rendered nodes; it is rebuilt on
// every Render and owned by the caller.
//
// Usage:
//
//	r := renderer.New(registry, renderer.DefaultOptions())
//	tree, err := r.Render(p, root)
//	node, ok := tree.ForSection(p.Head())
package renderer
