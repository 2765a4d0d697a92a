package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const htmxScript = `<script src="https://unpkg.com/htmx.org@1.9.10" integrity="sha384-D1Kt99CQMDuVetoL1lrYwg5t+9QdHe7NLX/SoJYkXDFfX37iInKRy5xLSi8nO7UC" crossorigin="anonymous"></script>`

type IndexProps struct {
	Title       string
	Lang        string
	Stylesheets []string
}

// Index renders the HTML document around body.
func Index(props IndexProps, body templ.Component) templ.Component {
	title := props.Title
	if title == "" {
		title = AppTitle
	}
	lang := props.Lang
	if lang == "" {
		lang = "en"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := writeAll(w,
			`<!DOCTYPE html><html lang="`, templ.EscapeString(lang), `"><head>`,
			`<meta charset="UTF-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1.0">`,
			`<title>`, templ.EscapeString(title), `</title>`,
		)
		if err != nil {
			return err
		}
		for _, href := range props.Stylesheets {
			if err := writeAll(w, `<link rel="stylesheet" href="`, templ.EscapeString(href), `">`); err != nil {
				return err
			}
		}
		if err := writeAll(w, htmxScript, `</head><body>`); err != nil {
			return err
		}
		if err := render(ctx, w, body); err != nil {
			return err
		}
		return writeAll(w, `</body></html>`)
	})
}
