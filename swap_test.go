package hxwire

import (
	"strings"
	"testing"
)

const swapFixture = `<html><body><div id="wrap"><p>before</p><div id="out"><span>old</span></div><p>after</p></div></body></html>`

func TestApplySwapInner(t *testing.T) {
	doc := ParseDoc(t, swapFixture)
	out := MustQuery(t, doc, "#out")

	if err := ApplySwap(out, SwapInner, "<b>hi</b>"); err != nil {
		t.Fatalf("ApplySwap: %v", err)
	}

	if got := InnerHTML(out); got != "<b>hi</b>" {
		t.Errorf("InnerHTML = %q, want %q", got, "<b>hi</b>")
	}
	if Query(doc, "#out") == nil {
		t.Error("replace-contents removed the target node itself")
	}
}

func TestApplySwapOuterReplacesNodeIdentity(t *testing.T) {
	doc := ParseDoc(t, swapFixture)
	out := MustQuery(t, doc, "#out")

	if err := ApplySwap(out, SwapOuter, `<section id="new">fresh</section>`); err != nil {
		t.Fatalf("ApplySwap: %v", err)
	}

	if Query(doc, "#out") != nil {
		t.Error("old target still present after replace-node")
	}
	if out.Parent != nil {
		t.Error("old target still attached to the tree")
	}

	repl := Query(doc, "#new")
	if repl == nil {
		t.Fatal("replacement node not found")
	}
	// The replacement occupies the old target's position between the
	// sibling paragraphs.
	wrap := MustQuery(t, doc, "#wrap")
	if got := InnerHTML(wrap); got != `<p>before</p><section id="new">fresh</section><p>after</p>` {
		t.Errorf("wrap contents = %q", got)
	}
}

func TestApplySwapUnknownFallsBackToInner(t *testing.T) {
	doc := ParseDoc(t, swapFixture)
	out := MustQuery(t, doc, "#out")

	if err := ApplySwap(out, SwapMode("sideways"), "x"); err != nil {
		t.Fatalf("ApplySwap: %v", err)
	}
	if got := InnerHTML(out); got != "x" {
		t.Errorf("InnerHTML = %q, want %q", got, "x")
	}
}

func TestApplySwapNilTargetIsNoop(t *testing.T) {
	if err := ApplySwap(nil, SwapInner, "<b>hi</b>"); err != nil {
		t.Errorf("ApplySwap(nil) = %v, want nil", err)
	}
}

func TestApplySwapPositionalModes(t *testing.T) {
	tests := []struct {
		name string
		mode SwapMode
		want string // InnerHTML of #wrap afterwards
	}{
		{"beforebegin", SwapBeforeBegin, `<p>before</p><i>n</i><div id="out"><span>old</span></div><p>after</p>`},
		{"afterend", SwapAfterEnd, `<p>before</p><div id="out"><span>old</span></div><i>n</i><p>after</p>`},
		{"afterbegin", SwapAfterBegin, `<p>before</p><div id="out"><i>n</i><span>old</span></div><p>after</p>`},
		{"beforeend", SwapBeforeEnd, `<p>before</p><div id="out"><span>old</span><i>n</i></div><p>after</p>`},
		{"delete", SwapDelete, `<p>before</p><p>after</p>`},
		{"none", SwapNone, `<p>before</p><div id="out"><span>old</span></div><p>after</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseDoc(t, swapFixture)
			out := MustQuery(t, doc, "#out")

			if err := ApplySwap(out, tt.mode, "<i>n</i>"); err != nil {
				t.Fatalf("ApplySwap: %v", err)
			}
			wrap := MustQuery(t, doc, "#wrap")
			if got := InnerHTML(wrap); got != tt.want {
				t.Errorf("wrap contents = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplySwapTableFragmentContext(t *testing.T) {
	doc := ParseDoc(t, `<html><body><table><tbody id="rows"><tr><td>old</td></tr></tbody></table></body></html>`)
	rows := MustQuery(t, doc, "#rows")

	if err := ApplySwap(rows, SwapInner, "<tr><td>new</td></tr>"); err != nil {
		t.Fatalf("ApplySwap: %v", err)
	}
	got := InnerHTML(rows)
	if !strings.Contains(got, "<tr><td>new</td></tr>") {
		t.Errorf("tbody contents = %q, want a parsed tr row", got)
	}
}
