package hxwire

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Param is one harvested (name, value) pair.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered parameter set. Duplicate names are preserved as
// repeated entries, matching multi-valued form encodings; nothing is ever
// overwritten or sorted.
type Params []Param

// Encode renders the set as a query string in harvest order. Empty sets
// encode to "".
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// CollectParams harvests form-control values from every node under root
// matching the include selector, in tree order. An empty selector yields an
// empty set.
//
// Collection follows HTML form-submission semantics: disabled controls are
// skipped, unchecked checkboxes and radios are skipped, and controls without
// a name contribute nothing. Values reflect the tree's state at call time,
// not at bind time.
func CollectParams(root *html.Node, includeSelector string) Params {
	if includeSelector == "" {
		return nil
	}

	var params Params
	for _, n := range QueryAll(root, includeSelector) {
		if n.Type != html.ElementNode || HasAttr(n, "disabled") {
			continue
		}
		name, ok := Attr(n, "name")
		if !ok || name == "" {
			continue
		}

		switch n.Data {
		case "input":
			kind, _ := Attr(n, "type")
			if kind == "checkbox" || kind == "radio" {
				if !HasAttr(n, "checked") {
					continue
				}
				if v, ok := Attr(n, "value"); ok {
					params = append(params, Param{name, v})
				} else {
					params = append(params, Param{name, "on"})
				}
				continue
			}
			v, _ := Attr(n, "value")
			params = append(params, Param{name, v})

		case "select":
			if opt := selectedOption(n); opt != nil {
				params = append(params, Param{name, optionValue(opt)})
			}

		case "textarea":
			params = append(params, Param{name, Text(n)})
		}
	}
	return params
}

// selectedOption returns the option a select would submit: the first one
// carrying the selected attribute, else the first option at all.
func selectedOption(sel *html.Node) *html.Node {
	var first *html.Node
	for _, opt := range QueryAll(sel, "option") {
		if HasAttr(opt, "disabled") {
			continue
		}
		if first == nil {
			first = opt
		}
		if HasAttr(opt, "selected") {
			return opt
		}
	}
	return first
}

// optionValue returns the option's value attribute, falling back to its
// text content as HTML does.
func optionValue(opt *html.Node) string {
	if v, ok := Attr(opt, "value"); ok {
		return v
	}
	return strings.TrimSpace(Text(opt))
}
