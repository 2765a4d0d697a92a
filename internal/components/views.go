package components

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/felixbrock/qap/internal/pricing"
)

// ClustersPath is where the clusters view is mounted.
const ClustersPath = "/clusters"

// ReloadButton re-fetches path and swaps it into the shell's main region.
func ReloadButton(path string) templ.Component {
	icon := ReloadIcon(IconAttrs{
		Width:  "24",
		Height: "24",
		Extra:  templ.Attributes{"aria-hidden": "true", "focusable": "false"},
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := writeAll(w,
			`<button type="button" class="reload" aria-label="Reload" hx-get="`, templ.EscapeString(path),
			`" hx-target="main" hx-swap="innerHTML">`,
		)
		if err != nil {
			return err
		}
		if err := icon.Render(ctx, w); err != nil {
			return err
		}
		return writeAll(w, `</button>`)
	})
}

// Home is the landing view.
func Home() templ.Component {
	reload := ReloadButton("/")
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := writeAll(w,
			`<section class="home"><h2>Price optimization</h2>`,
			`<p>Select a <a href="`, ClustersPath, `" hx-get="`, ClustersPath, `" hx-target="main" hx-push-url="true">product cluster</a>`,
			` to review its optimized price points.</p>`,
		)
		if err != nil {
			return err
		}
		if err := reload.Render(ctx, w); err != nil {
			return err
		}
		return writeAll(w, `</section>`)
	})
}

type ErrorContext struct {
	Code  int
	Title string
	Msg   string
}

// Error renders an error view for ec.
func Error(ec ErrorContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			`<section class="error"><p class="error-code">`, strconv.Itoa(ec.Code), `</p>`,
			`<h2>`, templ.EscapeString(ec.Title), `</h2>`,
			`<p>`, templ.EscapeString(ec.Msg), `</p>`,
			`<a href="/">Go back home</a></section>`,
		)
	})
}

// ClustersProps is what the clusters view shows. Missing is set when no
// solution file could be read; the view then explains how to produce one.
type ClustersProps struct {
	Clusters   []pricing.Cluster
	Unassigned []pricing.Solution
	Missing    bool
}

// Clusters lists the optimized price points per product cluster.
func Clusters(props ClustersProps) templ.Component {
	reload := ReloadButton(ClustersPath)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<section class="clusters"><h2>Product clusters</h2>`); err != nil {
			return err
		}
		if err := reload.Render(ctx, w); err != nil {
			return err
		}

		if len(props.Clusters) == 0 && len(props.Unassigned) == 0 {
			msg := "No product has been optimized yet."
			if props.Missing {
				msg = "No solutions available. Run the optimizer and set QAP_SOLUTIONS_FILE to its output."
			}
			return writeAll(w, `<p class="empty">`, msg, `</p></section>`)
		}

		for _, c := range props.Clusters {
			if err := writeCluster(w, c); err != nil {
				return err
			}
		}
		if len(props.Unassigned) > 0 {
			ids := make([]string, len(props.Unassigned))
			for i, s := range props.Unassigned {
				ids[i] = strconv.Itoa(s.Product)
			}
			err := writeAll(w, `<p class="unassigned">Products without a solution: `, strings.Join(ids, ", "), `</p>`)
			if err != nil {
				return err
			}
		}
		return writeAll(w, `</section>`)
	})
}

func writeCluster(w io.Writer, c pricing.Cluster) error {
	err := writeAll(w,
		`<article class="cluster"><h3>`, templ.EscapeString(c.Name), `</h3>`,
		`<table><thead><tr><th>Product</th><th>Prices</th></tr></thead><tbody>`,
	)
	if err != nil {
		return err
	}
	for _, s := range c.Solutions {
		prices := "none"
		if len(s.Prices) > 0 {
			ps := make([]string, len(s.Prices))
			for i, p := range s.Prices {
				ps[i] = strconv.Itoa(p)
			}
			prices = strings.Join(ps, ", ")
		}
		if err := writeAll(w, `<tr><td>`, strconv.Itoa(s.Product), `</td><td>`, prices, `</td></tr>`); err != nil {
			return err
		}
	}
	return writeAll(w, `</tbody></table></article>`)
}
