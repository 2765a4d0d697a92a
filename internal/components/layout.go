package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AppTitle is shown in the shell header on every page.
const AppTitle = "QAP"

// LayoutStylesheet is the stylesheet the shell is styled by. The document
// links it; the shell itself never loads anything.
const LayoutStylesheet = "/static/styles/layout.css"

// Outlet yields the view selected by the current navigation state.
type Outlet interface {
	Outlet(ctx context.Context) templ.Component
}

// OutletFunc adapts a function to Outlet.
type OutletFunc func(ctx context.Context) templ.Component

func (f OutletFunc) Outlet(ctx context.Context) templ.Component {
	if f == nil {
		return nil
	}
	return f(ctx)
}

// StaticOutlet always yields c.
func StaticOutlet(c templ.Component) Outlet {
	return OutletFunc(func(context.Context) templ.Component { return c })
}

// Layout renders the page frame shared by every route. The main region holds
// whatever outlet yields at render time, unchanged.
func Layout(outlet Outlet) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<div class="layout"><header><h1>`, AppTitle, `</h1></header><main>`); err != nil {
			return err
		}
		if outlet != nil {
			if err := render(ctx, w, outlet.Outlet(ctx)); err != nil {
				return err
			}
		}
		return writeAll(w, `</main></div>`)
	})
}

// LayoutStylesheets lists what the host should link for Layout.
func LayoutStylesheets() []string {
	return []string{LayoutStylesheet}
}
