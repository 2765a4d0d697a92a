package components

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestLayoutShape(t *testing.T) {
	tests := []struct {
		name   string
		outlet Outlet
		main   string
	}{
		{name: "nil outlet", outlet: nil, main: ""},
		{name: "nil func", outlet: OutletFunc(nil), main: ""},
		{name: "nil component", outlet: StaticOutlet(nil), main: ""},
		{name: "empty component", outlet: StaticOutlet(templ.NopComponent), main: ""},
		{name: "markup verbatim", outlet: StaticOutlet(raw(`<p class="x">hi <b>there</b></p>`)), main: `<p class="x">hi <b>there</b></p>`},
		{name: "nested header", outlet: StaticOutlet(raw(`<header>inner</header>`)), main: `<header>inner</header>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderString(t, Layout(tt.outlet))
			want := `<div class="layout"><header><h1>QAP</h1></header><main>` + tt.main + `</main></div>`
			assert.Equal(t, want, got)
			assert.Equal(t, 1, strings.Count(got, "<main>"))
		})
	}
}

func TestLayoutResolvesOutletAtRenderTime(t *testing.T) {
	current := "first"
	l := Layout(OutletFunc(func(context.Context) templ.Component { return raw(current) }))

	assert.Contains(t, renderString(t, l), "<main>first</main>")
	current = "second"
	assert.Contains(t, renderString(t, l), "<main>second</main>")
}

func TestLayoutPassesContextToOutlet(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "from-ctx")
	l := Layout(OutletFunc(func(ctx context.Context) templ.Component {
		return raw(ctx.Value(key{}).(string))
	}))

	var b strings.Builder
	require.NoError(t, l.Render(ctx, &b))
	assert.Contains(t, b.String(), "<main>from-ctx</main>")
}

func TestLayoutPropagatesContentErrors(t *testing.T) {
	boom := errors.New("boom")
	l := Layout(StaticOutlet(templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })))

	var b strings.Builder
	err := l.Render(context.Background(), &b)
	assert.ErrorIs(t, err, boom)
}

func TestLayoutStylesheets(t *testing.T) {
	assert.Equal(t, []string{"/static/styles/layout.css"}, LayoutStylesheets())
}

func TestIndexWrapsBody(t *testing.T) {
	got := renderString(t, Index(IndexProps{
		Title:       "Home | QAP",
		Lang:        "de",
		Stylesheets: LayoutStylesheets(),
	}, Layout(StaticOutlet(Home()))))

	assert.True(t, strings.HasPrefix(got, `<!DOCTYPE html><html lang="de"><head>`))
	assert.Contains(t, got, `<title>Home | QAP</title>`)
	assert.Contains(t, got, `<link rel="stylesheet" href="/static/styles/layout.css">`)
	assert.Contains(t, got, `htmx.org`)
	assert.Contains(t, got, `<body><div class="layout"><header><h1>QAP</h1></header><main><section class="home">`)
	assert.True(t, strings.HasSuffix(got, `</main></div></body></html>`))
}

func TestIndexDefaultsAndEscaping(t *testing.T) {
	got := renderString(t, Index(IndexProps{Stylesheets: []string{`/a.css"><script>`}}, nil))

	assert.Contains(t, got, `<html lang="en">`)
	assert.Contains(t, got, `<title>QAP</title>`)
	assert.Contains(t, got, `href="/a.css&#34;&gt;&lt;script&gt;"`)
	assert.Contains(t, got, `<body></body>`)
}

func TestHomeEmbedsReloadButton(t *testing.T) {
	got := renderString(t, Home())

	assert.Contains(t, got, `<button type="button" class="reload" aria-label="Reload" hx-get="/" hx-target="main" hx-swap="innerHTML">`)
	assert.Contains(t, got, `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 16 16" aria-hidden="true" focusable="false">`)
	assert.Contains(t, got, wantPath)
}

func TestErrorView(t *testing.T) {
	got := renderString(t, Error(ErrorContext{Code: 404, Title: "Not found", Msg: "No <page> here."}))

	assert.Contains(t, got, `<p class="error-code">404</p>`)
	assert.Contains(t, got, `<h2>Not found</h2>`)
	assert.Contains(t, got, `<p>No &lt;page&gt; here.</p>`)
}
