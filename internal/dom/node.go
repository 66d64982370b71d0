package dom

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf16"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ZWNJ is the zero-width non-joiner used as caret padding next to
// non-text content.
const ZWNJ = "\u200c"

// Text creates a detached text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Element creates a detached element node with the given attributes.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// Attr builds an attribute for Element.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Append appends children to parent and returns parent.
// Children that are still attached elsewhere are detached first.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
	return parent
}

// Clear removes all children of n.
func Clear(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// IsText reports whether n is a text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Length returns the DOM length of n: UTF-16 code units for text and
// comment nodes, the number of children for everything else.
func Length(n *html.Node) int {
	if n == nil {
		return 0
	}
	switch n.Type {
	case html.TextNode, html.CommentNode:
		return UTF16Len(n.Data)
	default:
		return ChildCount(n)
	}
}

// ChildCount returns the number of children of n.
func ChildCount(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

// ChildAt returns the i-th child of n, or nil when out of range.
func ChildAt(n *html.Node, i int) *html.Node {
	if i < 0 {
		return nil
	}
	c := n.FirstChild
	for ; c != nil && i > 0; i-- {
		c = c.NextSibling
	}
	return c
}

// IndexOf returns the index of n within its parent, or -1 when detached.
func IndexOf(n *html.Node) int {
	if n == nil || n.Parent == nil {
		return -1
	}
	index := 0
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c == n {
			return index
		}
		index++
	}
	return -1
}

// Contains reports whether n is ancestor or a descendant of ancestor.
func Contains(ancestor, n *html.Node) bool {
	if ancestor == nil {
		return false
	}
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// GetAttr returns the value of the attribute key on n.
func GetAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n carries class in its class attribute.
func HasClass(n *html.Node, class string) bool {
	v, ok := GetAttr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Path returns the child-index path from root to n, or nil when n is
// not inside root.
func Path(root, n *html.Node) []int {
	if !Contains(root, n) {
		return nil
	}
	var path []int
	for ; n != root; n = n.Parent {
		path = append(path, IndexOf(n))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Walk follows a child-index path from root.
// It returns nil when any index is out of range.
func Walk(root *html.Node, path []int) *html.Node {
	n := root
	for _, i := range path {
		if n = ChildAt(n, i); n == nil {
			return nil
		}
	}
	return n
}

// Render writes the HTML serialisation of n to w.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// String returns the HTML serialisation of n.
func String(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML returns the serialisation of the children of n.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}
