// Package router maps the navigation path of a request to the view that
// fills the layout's outlet.
package router

import (
	"net/http"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/felixbrock/qap/internal/components"
)

// View builds the routed content for a request.
type View func(r *http.Request) templ.Component

// Match is the outcome of resolving a request.
type Match struct {
	Path      string
	Pattern   string
	Code      int
	Title     string
	Component templ.Component
}

// Outlet exposes the matched view to the layout.
func (m Match) Outlet() components.Outlet {
	return components.StaticOutlet(m.Component)
}

// Found reports whether a registered route matched.
func (m Match) Found() bool {
	return m.Pattern != ""
}

type route struct {
	path  string
	title string
	view  View
}

// Router resolves paths to views. NotFound and MethodNotAllowed render the
// respective failures; left nil the outlet is empty.
type Router struct {
	NotFound         View
	MethodNotAllowed View

	mu     sync.RWMutex
	routes map[string]route
	order  []string
}

func New() *Router {
	return &Router{routes: make(map[string]route)}
}

// Handle registers view under path. Registering a path twice replaces the
// earlier view.
func (rt *Router) Handle(path, title string, view View) {
	path = normalize(path)

	rt.mu.Lock()
	defer rt.mu.Unlock()
	if _, ok := rt.routes[path]; !ok {
		rt.order = append(rt.order, path)
	}
	rt.routes[path] = route{path: path, title: title, view: view}
}

// Routes lists registered paths in registration order.
func (rt *Router) Routes() []string {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	out := make([]string, len(rt.order))
	copy(out, rt.order)
	return out
}

// Resolve picks the view for r. Only GET and HEAD navigate.
func (rt *Router) Resolve(r *http.Request) Match {
	path := normalize(r.URL.Path)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return Match{Path: path, Code: http.StatusMethodNotAllowed, Component: build(rt.MethodNotAllowed, r)}
	}

	rt.mu.RLock()
	rte, ok := rt.routes[path]
	rt.mu.RUnlock()
	if !ok {
		return Match{Path: path, Code: http.StatusNotFound, Component: build(rt.NotFound, r)}
	}

	return Match{
		Path:      path,
		Pattern:   rte.path,
		Code:      http.StatusOK,
		Title:     rte.title,
		Component: build(rte.view, r),
	}
}

func build(v View, r *http.Request) templ.Component {
	if v == nil {
		return nil
	}
	return v(r)
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
