package hxwire

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Query returns the first node under root matching the CSS selector, in
// tree order. An invalid selector or no match returns nil; selector errors
// are deliberately non-fatal, matching the engine's lenience everywhere
// else.
func Query(root *html.Node, selector string) *html.Node {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	return cascadia.Query(root, sel)
}

// QueryAll returns all nodes under root matching the CSS selector, in tree
// order. Invalid selectors yield nil.
func QueryAll(root *html.Node, selector string) []*html.Node {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	return cascadia.QueryAll(root, sel)
}

// Attr returns the value of the named attribute on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether n carries the named attribute, regardless of value.
func HasAttr(n *html.Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

// SetAttr sets the named attribute on n, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes the named attribute from n if present.
func RemoveAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// OuterHTML renders n including its own tag.
func OuterHTML(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}

// InnerHTML renders the children of n.
func InnerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return ""
		}
	}
	return b.String()
}

// Text collects the concatenated text content under n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// parseFragment parses markup in the context of an element so that the
// parser applies the right insertion rules (tr inside table, li inside ul,
// and so on). The context node is a detached stand-in: ParseFragment
// requires a parentless context element.
func parseFragment(context *html.Node, markup string) ([]*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	if context != nil && context.Type == html.ElementNode {
		ctx.Data = context.Data
		ctx.DataAtom = context.DataAtom
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return nodes, nil
}
