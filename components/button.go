// Package components holds thin declarative consumers of the assembled
// polaris context. Each component is a pure function of its props and
// the context read from ctx; bundles are treated as immutable snapshots
// for the render they feed.
package components

import (
	"context"
	"html/template"
	"strings"

	"github.com/polarisui/polaris"
)

// ButtonProps declares everything a button render needs.
type ButtonProps struct {
	ID                 string
	Content            string
	URL                string
	External           bool
	Primary            bool
	Destructive        bool
	Disabled           bool
	Loading            bool
	AccessibilityLabel string
}

var buttonTemplate = template.Must(template.New("button").Parse(
	`<button type="button"{{if .ID}} id="{{.ID}}"{{end}} class="{{.Class}}"` +
		`{{if .Disabled}} disabled{{end}}` +
		`{{if .AccessibilityLabel}} aria-label="{{.AccessibilityLabel}}"{{end}}>` +
		`{{if .SpinnerLabel}}<span class="Polaris-Button__Spinner" aria-label="{{.SpinnerLabel}}"></span>{{end}}` +
		`<span class="Polaris-Button__Content">{{.Content}}</span></button>`))

type buttonTemplateData struct {
	ID                 string
	Class              string
	Disabled           bool
	AccessibilityLabel string
	SpinnerLabel       string
	Content            string
}

// Button renders a button, or a link through the context's link
// capability when a URL is supplied.
func Button(ctx context.Context, props ButtonProps) template.HTML {
	pc := polaris.CurrentContext(ctx)

	class := buttonClass(props)

	if props.URL != "" {
		var content strings.Builder
		template.HTMLEscape(&content, []byte(props.Content))

		return pc.Polaris.Link.Render(polaris.LinkProps{
			URL:      props.URL,
			ID:       props.ID,
			Class:    class,
			External: props.External,
			Content:  template.HTML(content.String()),
		})
	}

	data := buttonTemplateData{
		ID:                 props.ID,
		Class:              class,
		Disabled:           props.Disabled || props.Loading,
		AccessibilityLabel: props.AccessibilityLabel,
		Content:            props.Content,
	}

	if props.Loading {
		data.SpinnerLabel = pc.Polaris.Intl.Translate(ctx, "Polaris.Button.spinnerAccessibilityLabel")
	}

	var b strings.Builder
	if err := buttonTemplate.Execute(&b, data); err != nil {
		return ""
	}

	return template.HTML(b.String())
}

func buttonClass(props ButtonProps) string {
	classes := []string{"Polaris-Button"}

	if props.Primary {
		classes = append(classes, "Polaris-Button--primary")
	}
	if props.Destructive {
		classes = append(classes, "Polaris-Button--destructive")
	}
	if props.Disabled {
		classes = append(classes, "Polaris-Button--disabled")
	}
	if props.Loading {
		classes = append(classes, "Polaris-Button--loading")
	}

	return strings.Join(classes, " ")
}
