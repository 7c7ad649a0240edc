package hxwire

import "golang.org/x/net/html"

// ResolveTarget determines which node receives a binding's response.
//
// An empty selector (or the explicit "this") resolves to the declaring
// element itself. Otherwise the first match in the document wins. A selector
// that matches nothing resolves to nil, which downstream swap code treats as
// a no-op: a firing into a missing target completes silently rather than
// erroring.
func ResolveTarget(root, el *html.Node, targetSelector string) *html.Node {
	if targetSelector == "" || targetSelector == "this" {
		return el
	}
	return Query(root, targetSelector)
}
