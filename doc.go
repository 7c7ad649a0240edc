// Package hxwire is a headless hypermedia binding engine: it scans a parsed
// HTML tree for declarative request bindings and executes them without any
// imperative wiring per element.
//
// A binding is declared entirely in markup:
//
//	<div hx-get="/stock" hx-trigger="every 5s" hx-target="#ticker"></div>
//	<a href="/inbox" hx-get="/inbox/preview" hx-target="#panel">Inbox</a>
//
// The engine reads the htmx attribute vocabulary - hx-get, hx-trigger,
// hx-target, hx-swap, hx-include - from a golang.org/x/net/html document,
// and drives each binding through a fixed pipeline when a trigger fires:
// collect parameters, resolve the target, execute the request, swap the
// response into the tree.
//
// # Lifecycle
//
// Parse a document, build an engine, bind once, then feed it events:
//
//	doc, _ := html.Parse(strings.NewReader(page))
//	eng := hxwire.New(doc, hxwire.WithBaseURL(server.URL))
//	if err := eng.Bind(); err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	eng.Dispatch(ctx, "#refresh", "click")
//
// Bind walks the tree exactly once; declarations added to the tree later are
// not picked up (re-binding is not supported). Interval triggers are armed at
// bind time and run until Close tears them down. Load triggers fire once,
// immediately after binding.
//
// # Triggers
//
// The hx-trigger attribute is a comma-separated list of trigger tokens:
//
//   - an event name ("click", "change", "search:submitted")
//   - "every <n>[ms|s]" for a repeating timer
//   - "load" for a one-shot firing when the tree becomes interactive
//
// Absent or empty specs default to "click". Malformed interval tokens are
// dropped silently; a binding always ends up with at least one trigger.
//
// # Failure model
//
// No failure inside a firing ever propagates to the caller. A missing target
// makes the firing a no-op; a failed request renders an inline error block
// into the target using the binding's own swap strategy, so a broken partial
// is visible in place. Nothing is retried.
//
// # Concurrency
//
// Each firing runs in its own goroutine. Firings are never queued or
// cancelled: overlapping firings of the same element race, and the last
// response to complete wins. The document mutex protects tree integrity
// only, not ordering. The shared loading indicator is reference counted so
// overlapping firings cannot clear it while another is still in flight.
//
// # Observing completions
//
// Every firing, successful or not, emits a Notification{Verb, Path} after
// its indicator bookkeeping settles. Other components subscribe without the
// engine knowing about them:
//
//	cancel := eng.Subscribe(func(n hxwire.Notification) {
//	    log.Printf("partial refresh: %s %s", n.Verb, n.Path)
//	})
package hxwire
