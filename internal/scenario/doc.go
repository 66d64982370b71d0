// Package scenario loads YAML descriptions of a post and a list of native
// selection probes, renders the post, and checks each probe's resolved
// range against its expectation.
//
// A scenario file looks like:
//
//	cards: [my-card]
//	atoms:
//	  - {name: my-atom, text: my-atom}
//	plugins: [plugins/mention.lua]
//	config:
//	  cursor.cardBoundaryRepair: true
//	post:
//	  - markup: p
//	    markers:
//	      - {text: aa}
//	      - {atom: my-atom}
//	      - {text: cc, markups: [b]}
//	  - card: my-card
//	probes:
//	  - name: before atom
//	    anchor: {path: [0, 1, 0], offset: 1}
//	    expect: {head: [0, 2], tail: [0, 2]}
//
// Paths are child indexes from the editor root. Expected positions are
// [section index, offset] pairs. A probe without a focus is a caret.
package scenario
