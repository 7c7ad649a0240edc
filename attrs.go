package hxwire

import (
	"fmt"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// Decl is a fluent builder for declaration attributes, the authoring-side
// counterpart of the engine's scanner. It produces the hx-* attribute set a
// template writes onto an element:
//
//	<div { hxwire.Get("/stock").Every(5*time.Second).Target("#ticker").Attrs()... }></div>
//
// Trigger methods may be chained; each appends one token to hx-trigger.
type Decl struct {
	path     string
	triggers []string
	target   string
	swap     SwapMode
	include  string
}

// Get starts a declaration for the given request path.
func Get(path string) *Decl {
	return &Decl{path: path}
}

// Trigger appends a raw trigger token (an event name or any token the
// engine's parser understands).
func (d *Decl) Trigger(token string) *Decl {
	d.triggers = append(d.triggers, token)
	return d
}

// Every appends an interval trigger. Whole seconds format as "every Ns",
// anything finer as "every Nms".
func (d *Decl) Every(interval time.Duration) *Decl {
	if interval >= time.Second && interval%time.Second == 0 {
		return d.Trigger(fmt.Sprintf("every %ds", interval/time.Second))
	}
	return d.Trigger(fmt.Sprintf("every %dms", interval/time.Millisecond))
}

// OnEvent appends a named event trigger.
func (d *Decl) OnEvent(name string) *Decl {
	return d.Trigger(name)
}

// OnLoad appends the one-shot readiness trigger.
func (d *Decl) OnLoad() *Decl {
	return d.Trigger("load")
}

// Target sets the CSS selector of the node that receives the response.
func (d *Decl) Target(selector string) *Decl {
	d.target = selector
	return d
}

// Swap sets the swap strategy.
func (d *Decl) Swap(mode SwapMode) *Decl {
	d.swap = mode
	return d
}

// Include sets the selector whose form-control values are harvested into
// the request's query string.
func (d *Decl) Include(selector string) *Decl {
	d.include = selector
	return d
}

// Attrs renders the declaration as templ attributes. Unset pieces are
// omitted so the engine's defaults apply.
func (d *Decl) Attrs() templ.Attributes {
	attrs := templ.Attributes{attrGet: d.path}
	if len(d.triggers) > 0 {
		attrs[attrTrigger] = strings.Join(d.triggers, ", ")
	}
	if d.target != "" {
		attrs[attrTarget] = d.target
	}
	if d.swap != "" {
		attrs[attrSwap] = string(d.swap)
	}
	if d.include != "" {
		attrs[attrInclude] = d.include
	}
	return attrs
}
