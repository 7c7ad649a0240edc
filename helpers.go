package hxwire

import (
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response as a partial.
//
// Sets Content-Type to text/html and renders using the request's context.
// Endpoints serving engine-issued requests return markup fragments, not
// full pages:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxwire.Render(w, r, tickerFragment(prices))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsPartial reports whether the request was issued by the binding engine.
//
// Every engine request carries the HX-Request marker, letting an endpoint
// serve a fragment for partial refreshes and a full page otherwise:
//
//	if hxwire.IsPartial(r) {
//	    return fragment()
//	}
//	return fullPage()
func IsPartial(r *http.Request) bool {
	return r.Header.Get(RequestHeader) == "true"
}

// RequirePartial rejects requests that did not originate from the engine.
//
// Mount it on fragment-only routes so direct navigation to a partial path
// gets a clean 400 instead of a torn page:
//
//	r.With(hxwire.RequirePartial).Get("/stock", stockFragment)
func RequirePartial(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsPartial(r) {
			http.Error(w, "partial requests only", http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}
