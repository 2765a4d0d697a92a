package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/felixbrock/qap/internal/components"
	"github.com/felixbrock/qap/internal/pricing"
	"github.com/felixbrock/qap/internal/router"
)

// HXRequestHeader marks requests issued by htmx.
const HXRequestHeader = "HX-Request"

func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(HXRequestHeader), "true")
}

func (a *App) registerRoutes() {
	if a.Router == nil {
		a.Router = router.New()
	}
	a.Router.NotFound = a.errorView(get404())
	a.Router.MethodNotAllowed = a.errorView(get405())
	a.Router.Handle("/", "Home", func(*http.Request) templ.Component {
		return a.ComponentBuilder.Home()
	})
	a.Router.Handle(components.ClustersPath, "Clusters", a.clusters)
}

// clusters reads the solution file on every request so the reload button
// picks up a new optimizer run. A missing file is an empty state; a broken
// one fails the render.
func (a *App) clusters(r *http.Request) templ.Component {
	solutions, err := pricing.LoadSolutions(a.Config.SolutionsFile)
	switch {
	case errors.Is(err, pricing.ErrNoSolutions), errors.Is(err, fs.ErrNotExist):
		slog.Debug("no solutions", slog.String("path", a.Config.SolutionsFile), slog.String("request_id", RequestID(r.Context())))
		return a.ComponentBuilder.Clusters(components.ClustersProps{Missing: true})
	case err != nil:
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return err
		})
	}
	clusters, unassigned := pricing.Clusters(solutions)
	return a.ComponentBuilder.Clusters(components.ClustersProps{Clusters: clusters, Unassigned: unassigned})
}

func (a *App) errorView(ec components.ErrorContext) router.View {
	return func(*http.Request) templ.Component {
		return a.ComponentBuilder.Error(ec)
	}
}

func pageTitle(title string) string {
	if title == "" {
		return components.AppTitle
	}
	return title + " | " + components.AppTitle
}

// shell renders the routed view inside the layout. htmx navigations only
// need the view itself, which gets swapped into <main>.
func (a *App) shell(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	m := a.Router.Resolve(r)
	w.Header().Add("Vary", HXRequestHeader)
	if m.Code == http.StatusMethodNotAllowed {
		w.Header().Set("Allow", "GET, HEAD")
	}

	title := m.Title
	if !m.Found() {
		title = errCtxFor(m.Code).Title
	}

	if isHTMXRequest(r) {
		return &ComponentResponse{Component: m.Component, Code: m.Code, Message: title, ContentType: htmlContentType}
	}

	page := a.ComponentBuilder.Index(components.IndexProps{
		Title:       pageTitle(title),
		Lang:        a.Config.Lang,
		Stylesheets: components.LayoutStylesheets(),
	}, a.ComponentBuilder.Layout(m.Outlet()))

	return &ComponentResponse{Component: page, Code: m.Code, Message: title, ContentType: htmlContentType}
}

// errorPage renders ec in the full shell, or alone for htmx requests.
func (a *App) errorPage(r *http.Request, ec components.ErrorContext, err error) *ComponentResponse {
	view := a.ComponentBuilder.Error(ec)
	resp := &ComponentResponse{Code: ec.Code, Message: ec.Title, ContentType: htmlContentType, Error: err}
	if isHTMXRequest(r) {
		resp.Component = view
		return resp
	}
	resp.Component = a.ComponentBuilder.Index(components.IndexProps{
		Title:       pageTitle(ec.Title),
		Lang:        a.Config.Lang,
		Stylesheets: components.LayoutStylesheets(),
	}, a.ComponentBuilder.Layout(components.StaticOutlet(view)))
	return resp
}
