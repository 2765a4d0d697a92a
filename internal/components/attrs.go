package components

import (
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// setAttr replaces the value of name in place, so an overridden default keeps
// its position. Names compare without regard to ASCII case, as HTML does.
func setAttr(attrs templ.OrderedAttributes, name string, value any) templ.OrderedAttributes {
	for i := range attrs {
		if strings.EqualFold(attrs[i].Key, name) {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, templ.KV(name, value))
}

// mergeAttrs applies extra on top of attrs in ascending key order. Names that
// cannot appear in a start tag are skipped.
func mergeAttrs(attrs templ.OrderedAttributes, extra templ.Attributes) templ.OrderedAttributes {
	if len(extra) == 0 {
		return attrs
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		if validAttrName(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = setAttr(attrs, k, extra[k])
	}
	return attrs
}

// validAttrName rejects names that cannot be written into a start tag.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\f', '\r', '"', '\'', '>', '<', '/', '=':
			return true
		}
		return r < 0x20 || r == 0x7f
	})
}
