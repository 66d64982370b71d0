// Package editor ties a post to its rendering and to the native selection.
//
// An Editor owns a post, a plugin registry, and, once rendered, the render
// tree under a root element. Its cursor resolves the native selection
// against that tree:
//
//	ed, err := editor.New(p, editor.WithCards(card), editor.WithAtoms(atom))
//	if err != nil {
//		return err
//	}
//	if err := ed.Render(root); err != nil {
//		return err
//	}
//	ed.Selection().Collapse(textNode, 1)
//	rng, err := ed.Range()
//
// An Editor is not safe for concurrent use. Selection change callbacks run
// synchronously on the goroutine that changed the selection.
package editor
