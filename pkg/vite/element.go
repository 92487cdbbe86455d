package vite

import (
	"fmt"
	"path"
	"strings"
)

// Kind distinguishes script tags from stylesheet tags.
type Kind string

const (
	// KindScript is a <script> element.
	KindScript Kind = "script"
	// KindStyle is a <link rel="stylesheet"> element.
	KindStyle Kind = "style"
)

// styleExtensions lists the extensions served as stylesheets.
var styleExtensions = map[string]bool{
	".css":     true,
	".less":    true,
	".sass":    true,
	".scss":    true,
	".styl":    true,
	".stylus":  true,
	".pcss":    true,
	".postcss": true,
}

// IsStylePath reports whether asset is a stylesheet.
func IsStylePath(asset string) bool {
	return styleExtensions[path.Ext(asset)]
}

// Element describes an HTML tag for an asset. The rendering layer embeds
// String() verbatim.
type Element struct {
	Tag        string     `json:"tag"`
	Attributes Attributes `json:"attributes"`
	Children   []string   `json:"children,omitempty"`
}

// Kind reports whether the element is a script or a stylesheet.
func (e Element) Kind() Kind {
	if e.Tag == "link" {
		return KindStyle
	}
	return KindScript
}

// selfClosing reports whether the tag is written as <tag/>.
func (e Element) selfClosing() bool {
	return e.Tag == "link"
}

// String serializes the element as HTML.
func (e Element) String() string {
	attrs := e.Attributes.String()
	if e.selfClosing() {
		return fmt.Sprintf("<%s %s/>", e.Tag, attrs)
	}
	return fmt.Sprintf("<%s %s>%s</%s>", e.Tag, attrs, strings.Join(e.Children, "\n"), e.Tag)
}
