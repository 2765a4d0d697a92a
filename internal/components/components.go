// Package components holds the server-rendered building blocks of the QAP
// frontend. Every constructor returns a templ.Component and is a pure
// function of its arguments.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component is anything that can render itself into a writer. It matches
// templ.Component so handlers don't need to import templ.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

var _ Component = templ.NopComponent

// render writes c when it is non-nil.
func render(ctx context.Context, w io.Writer, c templ.Component) error {
	if c == nil {
		return nil
	}
	return c.Render(ctx, w)
}

// writeAll writes each string in turn and stops at the first error.
func writeAll(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
