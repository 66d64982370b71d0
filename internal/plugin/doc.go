// Package plugin defines the contract between the editor and the cards and
// atoms that render opaque content into a post.
//
// A plugin is identified by name and kind. The editor never looks inside the
// nodes a plugin renders; it only wraps them with caret padding so that
// native selections around them can be resolved.
//
// Kinds:
//
//   - Card: a block-level plugin occupying a whole section. Cards supply a
//     render hook and, optionally, an edit hook (the Editable capability).
//   - Atom: an inline plugin embedded in a markup section. Atoms supply a
//     render hook only.
//
// Plugins are capabilities rather than a type hierarchy: anything with a
// name, a kind and a render hook is a plugin. NewCard and NewAtom adapt plain
// functions; package plugin/lua builds plugins from scripts.
//
// Basic usage:
//
//	reg := plugin.NewRegistry()
//	reg.Register(plugin.NewCard("image", func(env plugin.Env) (*html.Node, error) {
//	    return dom.Element("img", dom.Attr("src", env.Payload["src"].(string))), nil
//	}, nil))
//
//	card, err := reg.Card("image")
package plugin
