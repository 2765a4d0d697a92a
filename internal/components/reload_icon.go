package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"

	// ReloadIconSize is the default width and height, relative to the
	// containing box.
	ReloadIconSize = "50%"
	// ReloadIconViewBox is the icon's coordinate system.
	ReloadIconViewBox = "0 0 16 16"
	// ReloadIconPath is the circular arrow with its arrowhead.
	ReloadIconPath = "M13.1 12c-1.2 1.5-3 2.5-5.1 2.5c-3.6 0-6.5-2.9-6.5-6.5S4.4 1.5 8 1.5c2.2 0 4.1 1.1 5.3 2.7m.2-3.2v3c0 .3-.2.5-.5.5h-3"
)

// reloadIconPathTag is fixed. Caller attributes only ever reach the <svg>.
const reloadIconPathTag = `<path fill="none" stroke="#fff" stroke-width="2" d="` + ReloadIconPath + `"></path>`

// IconAttrs are the caller overrides for an icon's root element.
//
// Precedence, lowest first: built-in defaults, the typed fields, Extra.
// Extra is merged last, so Extra["width"] beats Width. Names match without
// regard to ASCII case. An overridden attribute keeps its default position;
// new Extra keys follow in key order. Values render the way templ renders
// spread attributes: strings, *string, bool, *bool, numbers and templ.KV.
type IconAttrs struct {
	Width   string
	Height  string
	ViewBox string
	// Extra is passed through untouched: aria-*, data-*, class, hx-*.
	Extra templ.Attributes
}

func (a IconAttrs) root() templ.OrderedAttributes {
	attrs := templ.OrderedAttributes{
		{Key: "xmlns", Value: svgNamespace},
		{Key: "width", Value: ReloadIconSize},
		{Key: "height", Value: ReloadIconSize},
		{Key: "viewBox", Value: ReloadIconViewBox},
	}
	if a.Width != "" {
		attrs = setAttr(attrs, "width", a.Width)
	}
	if a.Height != "" {
		attrs = setAttr(attrs, "height", a.Height)
	}
	if a.ViewBox != "" {
		attrs = setAttr(attrs, "viewBox", a.ViewBox)
	}
	return mergeAttrs(attrs, a.Extra)
}

// ReloadIcon renders the 16x16 reload glyph.
func ReloadIcon(attrs IconAttrs) templ.Component {
	root := attrs.root()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, "<svg"); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, root); err != nil {
			return err
		}
		return writeAll(w, ">", reloadIconPathTag, "</svg>")
	})
}
