package hxwire

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// RequestHeader marks every engine-issued request so endpoints can
// distinguish a partial refresh from a full page navigation. The name and
// value follow the htmx convention.
const RequestHeader = "HX-Request"

// Outcome classifies one finished request. Exactly one of two failure
// shapes exists: a transport-level failure has an empty Status (no response
// was received), while a non-success response carries the status text. Body
// holds the response body on success, and the error text or error body
// otherwise.
type Outcome struct {
	OK     bool
	Status string
	Body   string
}

// Indicator is a reference-counted visibility flag over the shared
// loading-indicator node. The aria-busy attribute flips on only for the
// 0 to 1 transition and off only for the 1 to 0 transition, so overlapping
// firings cannot clear the indicator while another is still in flight.
//
// A nil Indicator, or one without a node, is inert.
type Indicator struct {
	mu   *sync.Mutex
	refs int
	node *html.Node
}

// NewIndicator wraps node in a ref-counted indicator. The mutex is shared
// with whatever else mutates the tree (the engine's document lock) so the
// attribute flip never interleaves with a swap.
func NewIndicator(mu *sync.Mutex, node *html.Node) *Indicator {
	return &Indicator{mu: mu, node: node}
}

// Acquire marks the indicator active.
func (in *Indicator) Acquire() {
	if in == nil || in.node == nil {
		return
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	in.refs++
	if in.refs == 1 {
		SetAttr(in.node, "aria-busy", "true")
	}
}

// Release undoes one Acquire, clearing the attribute when the last
// in-flight firing settles.
func (in *Indicator) Release() {
	if in == nil || in.node == nil {
		return
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.refs > 0 {
		in.refs--
	}
	if in.refs == 0 {
		RemoveAttr(in.node, "aria-busy")
	}
}

// Active reports whether any firing currently holds the indicator.
func (in *Indicator) Active() bool {
	if in == nil || in.node == nil {
		return false
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.refs > 0
}

// Executor issues the asynchronous request for one firing and owns the
// shared indicator and the completion notification.
type Executor struct {
	// Client defaults to http.DefaultClient when nil.
	Client *http.Client

	// BaseURL is prefixed onto declaration paths, which are host-relative.
	BaseURL string

	// Indicator, when non-nil, is acquired for the duration of every
	// request.
	Indicator *Indicator

	// Notifier, when non-nil, receives one completion notification per
	// request regardless of outcome.
	Notifier *Notifier

	// Log, when non-nil, records transport failures.
	Log *slog.Logger
}

// Execute performs one GET against path with params appended as a query
// string and classifies the result.
//
// The indicator release and the completion notification run in a deferred
// finalizer: they happen exactly once per call, on every outcome branch,
// after the outcome is known.
func (x *Executor) Execute(ctx context.Context, path string, params Params) Outcome {
	resolved := joinQuery(path, params.Encode())

	x.Indicator.Acquire()
	defer func() {
		x.Indicator.Release()
		if x.Notifier != nil {
			x.Notifier.Emit("get", resolved)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, x.BaseURL+resolved, nil)
	if err != nil {
		return Outcome{Body: err.Error()}
	}
	req.Header.Set(RequestHeader, "true")

	client := x.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		if x.Log != nil {
			x.Log.Error("partial request failed", "path", resolved, "err", err)
		}
		return Outcome{Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The response never fully arrived; classify as transport failure.
		return Outcome{Body: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Outcome{Status: resp.Status, Body: string(body)}
	}
	return Outcome{OK: true, Body: string(body)}
}

// joinQuery appends an encoded query to a path, respecting any query
// content the path already carries.
func joinQuery(path, query string) string {
	if query == "" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + query
	}
	return path + "?" + query
}
