package hxwire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/pthm/hxwire/lib/journal"
)

// Declaration attribute names consumed from markup.
const (
	attrGet       = "hx-get"
	attrTrigger   = "hx-trigger"
	attrTarget    = "hx-target"
	attrSwap      = "hx-swap"
	attrInclude   = "hx-include"
	attrIndicator = "hx-indicator"
)

// binding is one scanned declaration. Read-only after Bind.
type binding struct {
	el       *html.Node
	path     string
	triggers []Trigger
	target   string
	swap     SwapMode
	include  string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClient sets the HTTP client used for partial requests.
func WithClient(c *http.Client) Option {
	return func(e *Engine) { e.exec.Client = c }
}

// WithBaseURL sets the prefix for declaration paths, which are
// host-relative ("/stock", "/inbox/preview").
func WithBaseURL(base string) Option {
	return func(e *Engine) { e.exec.BaseURL = strings.TrimRight(base, "/") }
}

// WithLogger attaches a structured logger. Without one the engine is
// silent, in keeping with its lenient failure modes.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
		e.exec.Log = log
	}
}

// WithSanitizer applies a bluemonday policy to every successful response
// body before it is swapped into the tree. Synthesized error blocks are
// already escaped and bypass the policy.
func WithSanitizer(p *bluemonday.Policy) Option {
	return func(e *Engine) { e.sanitize = p }
}

// WithJournal subscribes a journal writer to the engine's notifications,
// recording every completed firing. Write failures are logged and otherwise
// ignored; journaling must never break a firing. When combined with
// WithNotifier, pass WithNotifier first - replacing the notifier drops
// earlier subscriptions.
func WithJournal(j *journal.Writer) Option {
	return func(e *Engine) {
		e.notifier.Subscribe(func(n Notification) {
			if err := j.Append(n.Verb, n.Path); err != nil && e.log != nil {
				e.log.Error("journal append failed", "path", n.Path, "err", err)
			}
		})
	}
}

// WithNotifier replaces the engine's notifier, letting several engines or
// other emitters share one broadcast surface.
func WithNotifier(n *Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
		e.exec.Notifier = n
	}
}

// Engine binds declarations found in a document and drives their firings.
//
// A firing is one end-to-end pipeline run for one activated trigger:
// collect parameters, resolve the target, execute the request, swap the
// response (or a synthesized error block) into the target. Firings run
// concurrently and are never queued, debounced, or cancelled; overlapping
// firings into one target race and the last response to complete wins.
type Engine struct {
	mu  sync.Mutex // guards the document tree and indicator refs
	doc *html.Node

	exec     *Executor
	notifier *Notifier
	sanitize *bluemonday.Policy
	log      *slog.Logger

	bindings []*binding
	tickers  []*time.Ticker
	bound    bool

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates an engine over a parsed document. Nothing is scanned or
// armed until Bind.
func New(doc *html.Node, opts ...Option) *Engine {
	e := &Engine{
		doc:      doc,
		notifier: NewNotifier(),
		done:     make(chan struct{}),
	}
	e.exec = &Executor{Notifier: e.notifier}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Bind scans the tree once for elements carrying an hx-get declaration and
// wires each one: event triggers become dispatchable, interval triggers are
// armed immediately, and load triggers fire once right away (a parsed tree
// is already interactive).
//
// Bind may be called once per engine; declarations are read-only after the
// scan and re-scanning is not supported.
func (e *Engine) Bind() error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if e.closed() {
		return ErrClosed
	}
	if e.bound {
		return ErrAlreadyBound
	}
	e.bound = true

	// The body-level hx-indicator attribute names the shared
	// loading-indicator element.
	if body := Query(e.doc, "body"); body != nil {
		if sel, ok := Attr(body, attrIndicator); ok {
			e.exec.Indicator = NewIndicator(&e.mu, Query(e.doc, sel))
		}
	}

	for _, el := range QueryAll(e.doc, "[hx-get]") {
		path, _ := Attr(el, attrGet)
		if path == "" {
			continue
		}
		rawTrigger, _ := Attr(el, attrTrigger)
		target, _ := Attr(el, attrTarget)
		swap, _ := Attr(el, attrSwap)
		include, _ := Attr(el, attrInclude)

		b := &binding{
			el:       el,
			path:     path,
			triggers: ParseTriggers(rawTrigger),
			target:   target,
			swap:     SwapMode(swap),
			include:  include,
		}
		e.bindings = append(e.bindings, b)

		for _, tr := range b.triggers {
			switch tr.Kind {
			case TriggerEvery:
				e.armInterval(b, tr.Every)
			case TriggerLoad:
				e.fire(context.Background(), b)
			}
		}
	}

	if e.log != nil {
		e.log.Info("document bound", "bindings", len(e.bindings))
	}
	return nil
}

// Dispatch delivers a named interaction to the first element matching
// selector. It reports whether a binding consumed the event; for
// anchor-like navigational elements a true return means default navigation
// has been suppressed and the caller must not follow the href.
//
// Dispatching to an unbound element, a missing element, or a bound element
// without a matching event trigger returns false and does nothing.
func (e *Engine) Dispatch(ctx context.Context, selector, event string) bool {
	if e.closed() {
		return false
	}

	e.mu.Lock()
	el := Query(e.doc, selector)
	e.mu.Unlock()
	if el == nil {
		return false
	}

	for _, b := range e.bindings {
		if b.el != el {
			continue
		}
		for _, tr := range b.triggers {
			if tr.Kind == TriggerEvent && tr.Event == event {
				e.fire(ctx, b)
				return true
			}
		}
	}
	return false
}

// Subscribe registers an observer for completion notifications and returns
// a cancel function.
func (e *Engine) Subscribe(fn func(Notification)) (cancel func()) {
	return e.notifier.Subscribe(fn)
}

// Wait blocks until every in-flight firing has completed its finalizer.
// Armed interval triggers keep producing new firings until Close, so Wait
// is typically called after Close or between dispatches.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// Close tears down every armed interval trigger and stops accepting
// dispatches. Firings already in flight still run to completion; Close
// does not wait for them (see Wait). Close is idempotent.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
		for _, t := range e.tickers {
			t.Stop()
		}
	})
}

// RenderDocument renders the current state of the tree.
func (e *Engine) RenderDocument() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return OuterHTML(e.doc)
}

// Document returns the underlying tree. Callers must not mutate or walk it
// while firings may be in flight; quiesce with Close and Wait first.
func (e *Engine) Document() *html.Node {
	return e.doc
}

func (e *Engine) closed() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// armInterval starts a ticker-driven trigger. The ticker runs until Close;
// the engine itself never tears a timer down mid-session.
func (e *Engine) armInterval(b *binding, every time.Duration) {
	t := time.NewTicker(every)
	e.tickers = append(e.tickers, t)
	go func() {
		for {
			select {
			case <-e.done:
				return
			case <-t.C:
				e.fire(context.Background(), b)
			}
		}
	}()
}

// fire runs one complete pipeline for b on its own goroutine.
//
// The recover boundary scopes any internal panic (selector surprises,
// pathological markup) to the one firing, so a single bad declaration
// cannot stop other bound elements from functioning. The document lock is
// held only around tree access, never across the network call, which is
// what lets firings overlap.
func (e *Engine) fire(ctx context.Context, b *binding) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() {
			if r := recover(); r != nil && e.log != nil {
				e.log.Error("firing panicked", "path", b.path, "panic", r)
			}
		}()

		e.mu.Lock()
		params := CollectParams(e.doc, b.include)
		target := ResolveTarget(e.doc, b.el, b.target)
		e.mu.Unlock()

		out := e.exec.Execute(ctx, b.path, params)

		markup := out.Body
		if out.OK {
			if e.sanitize != nil {
				markup = e.sanitize.Sanitize(markup)
			}
		} else {
			markup = errorBlock(out)
		}

		e.mu.Lock()
		err := ApplySwap(target, b.swap, markup)
		e.mu.Unlock()
		if err != nil && e.log != nil {
			e.log.Error("swap failed", "path", b.path, "err", err)
		}
	}()
}

// errorBlock synthesizes the inline rendering for a failed request. It is
// spliced with the binding's own swap strategy and target, so a failed
// partial is visible exactly where its content would have gone.
func errorBlock(out Outcome) string {
	if out.Status == "" {
		return fmt.Sprintf(`<div class="hxwire-error">request failed: %s</div>`,
			html.EscapeString(out.Body))
	}
	return fmt.Sprintf(`<div class="hxwire-error"><strong>%s</strong> %s</div>`,
		html.EscapeString(out.Status), html.EscapeString(out.Body))
}
