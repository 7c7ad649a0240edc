package hxwire

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// ParseDoc parses a full HTML document for tests, failing the test on
// malformed input instead of threading errors through every fixture.
func ParseDoc(t testing.TB, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

// MustQuery returns the first match for selector, failing the test when the
// fixture doesn't contain it.
func MustQuery(t testing.TB, root *html.Node, selector string) *html.Node {
	t.Helper()
	n := Query(root, selector)
	if n == nil {
		t.Fatalf("fixture has no element matching %q", selector)
	}
	return n
}
