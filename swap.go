package hxwire

import "golang.org/x/net/html"

// SwapMode defines how response markup replaces the target node.
//
// The names are the htmx hx-swap vocabulary. The default is SwapInner:
// an unrecognized or empty hx-swap value falls back to replacing the
// target's contents.
type SwapMode string

const (
	// SwapInner replaces only the target's contents, preserving the outer
	// tag (innerHTML). This is the default swap mode.
	SwapInner SwapMode = "innerHTML"

	// SwapOuter replaces the entire target node including its tag
	// (outerHTML). References to the old node are stale after the swap.
	SwapOuter SwapMode = "outerHTML"

	// SwapBeforeBegin inserts the response before the target element.
	SwapBeforeBegin SwapMode = "beforebegin"

	// SwapAfterBegin prepends the response to the start of the target's
	// contents.
	SwapAfterBegin SwapMode = "afterbegin"

	// SwapBeforeEnd appends the response to the end of the target's
	// contents. Useful for adding items to lists.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterEnd inserts the response after the target element.
	SwapAfterEnd SwapMode = "afterend"

	// SwapDelete removes the target element; the response is ignored.
	SwapDelete SwapMode = "delete"

	// SwapNone performs no swap; the response is discarded.
	SwapNone SwapMode = "none"
)

// ApplySwap splices markup into the tree at target according to mode.
//
// A nil target is a no-op, as is any mode that needs a parent on a detached
// target. Unknown modes fall back to SwapInner. The only error surfaced is a
// fragment parse failure; callers log it and move on - a bad response body
// must not take anything else down.
func ApplySwap(target *html.Node, mode SwapMode, markup string) error {
	if target == nil {
		return nil
	}

	switch mode {
	case SwapNone:
		return nil

	case SwapDelete:
		if target.Parent != nil {
			target.Parent.RemoveChild(target)
		}
		return nil

	case SwapOuter:
		if target.Parent == nil {
			return nil
		}
		nodes, err := parseFragment(target.Parent, markup)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			target.Parent.InsertBefore(n, target)
		}
		target.Parent.RemoveChild(target)
		return nil

	case SwapBeforeBegin:
		if target.Parent == nil {
			return nil
		}
		nodes, err := parseFragment(target.Parent, markup)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			target.Parent.InsertBefore(n, target)
		}
		return nil

	case SwapAfterEnd:
		if target.Parent == nil {
			return nil
		}
		nodes, err := parseFragment(target.Parent, markup)
		if err != nil {
			return err
		}
		ref := target.NextSibling
		for _, n := range nodes {
			if ref != nil {
				target.Parent.InsertBefore(n, ref)
			} else {
				target.Parent.AppendChild(n)
			}
		}
		return nil

	case SwapAfterBegin:
		nodes, err := parseFragment(target, markup)
		if err != nil {
			return err
		}
		ref := target.FirstChild
		for _, n := range nodes {
			if ref != nil {
				target.InsertBefore(n, ref)
			} else {
				target.AppendChild(n)
			}
		}
		return nil

	case SwapBeforeEnd:
		nodes, err := parseFragment(target, markup)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			target.AppendChild(n)
		}
		return nil

	default: // SwapInner and anything unrecognized
		nodes, err := parseFragment(target, markup)
		if err != nil {
			return err
		}
		for target.FirstChild != nil {
			target.RemoveChild(target.FirstChild)
		}
		for _, n := range nodes {
			target.AppendChild(n)
		}
		return nil
	}
}
