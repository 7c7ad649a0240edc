// Command hxwire-demo runs a small partial server and drives a bound page
// against it headlessly, printing the document as it changes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/html"

	"github.com/pthm/hxwire"
)

const page = `<!DOCTYPE html>
<html>
<body hx-indicator="#spinner">
  <span id="spinner"></span>
  <div id="clock" hx-get="/clock" hx-trigger="load, every 1s"></div>
  <form id="search">
    <input type="text" name="q" value="hypermedia">
  </form>
  <button id="go" hx-get="/search" hx-include="#search input" hx-target="#results"></button>
  <div id="results"></div>
</body>
</html>`

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Error("listen failed", "err", err)
		os.Exit(1)
	}
	srv := &http.Server{Handler: router()}
	go srv.Serve(ln)
	defer srv.Close()

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		log.Error("parse page", "err", err)
		os.Exit(1)
	}

	eng := hxwire.New(doc,
		hxwire.WithBaseURL("http://"+ln.Addr().String()),
		hxwire.WithLogger(log),
	)
	cancel := eng.Subscribe(func(n hxwire.Notification) {
		log.Info("partial completed", "verb", n.Verb, "path", n.Path)
	})
	defer cancel()

	if err := eng.Bind(); err != nil {
		log.Error("bind failed", "err", err)
		os.Exit(1)
	}
	defer eng.Close()

	// Let the load trigger and a couple of ticks land, then click search.
	time.Sleep(2500 * time.Millisecond)
	eng.Dispatch(context.Background(), "#go", "click")

	eng.Close()
	eng.Wait()
	fmt.Println(eng.RenderDocument())
}

func router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.With(hxwire.RequirePartial).Get("/clock", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintf(w, "<time>%s</time>", time.Now().Format(time.TimeOnly))
	})
	r.With(hxwire.RequirePartial).Get("/search", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintf(w, "<ul><li>result for %s</li></ul>", html.EscapeString(req.URL.Query().Get("q")))
	})
	return r
}
