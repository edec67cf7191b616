package polaris

import (
	"html/template"
	"reflect"
	"strings"
)

// LinkProps carries everything a renderer needs to produce one outbound
// navigation element.
type LinkProps struct {
	URL      string
	ID       string
	Class    string
	External bool
	Download bool

	// Content is the already-rendered inner markup of the link.
	Content template.HTML
}

// LinkRenderer produces the markup for a single link.
type LinkRenderer func(props LinkProps) template.HTML

// Link wraps the renderer used for all outbound navigation across an
// assembled context's lifetime.
type Link struct {
	renderer  LinkRenderer
	isDefault bool
}

// NewLink builds a link capability around the supplied renderer, or the
// built-in anchor renderer when none is supplied. Capabilities built
// from the same renderer value are equal across calls.
func NewLink(renderer LinkRenderer) Link {
	if renderer == nil {
		return Link{renderer: defaultLinkRenderer, isDefault: true}
	}

	return Link{renderer: renderer}
}

// Render produces markup for the given props through the wrapped
// renderer.
func (l Link) Render(props LinkProps) template.HTML {
	return l.renderer(props)
}

// IsDefault reports whether the capability wraps the built-in anchor
// renderer.
func (l Link) IsDefault() bool {
	return l.isDefault
}

// Equal compares two capabilities by renderer identity.
func (l Link) Equal(other Link) bool {
	if l.renderer == nil || other.renderer == nil {
		return (l.renderer == nil) == (other.renderer == nil)
	}
	return reflect.ValueOf(l.renderer).Pointer() == reflect.ValueOf(other.renderer).Pointer()
}

var anchorTemplate = template.Must(template.New("anchor").Parse(
	`<a href="{{.URL}}"{{if .ID}} id="{{.ID}}"{{end}}{{if .Class}} class="{{.Class}}"{{end}}` +
		`{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}` +
		`{{if .Download}} download{{end}}>{{.Content}}</a>`))

func defaultLinkRenderer(props LinkProps) template.HTML {
	var b strings.Builder
	if err := anchorTemplate.Execute(&b, props); err != nil {
		return ""
	}

	return template.HTML(b.String())
}
