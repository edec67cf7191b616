package components

import (
	"context"
	"html/template"
	"strings"

	"github.com/polarisui/polaris"
)

// PopoverProps declares a popover shell around an activator element.
type PopoverProps struct {
	ID        string
	Active    bool
	FullWidth bool
	Activator template.HTML
	Content   template.HTML

	// Sticky pins the open popover to the top of its scroll container.
	Sticky       bool
	StickyOffset int
}

var popoverTemplate = template.Must(template.New("popover").Parse(
	`<div{{if .ID}} id="{{.ID}}"{{end}} class="{{.Class}}">{{.Activator}}` +
		`{{if .Active}}<div class="Polaris-Popover__Content" role="dialog">` +
		`<button type="button" class="Polaris-Popover__Dismiss" aria-label="{{.DismissLabel}}"></button>` +
		`{{.Content}}</div>{{end}}</div>`))

type popoverTemplateData struct {
	ID           string
	Class        string
	Active       bool
	DismissLabel string
	Activator    template.HTML
	Content      template.HTML
}

// Popover renders the popover shell. An active sticky popover registers
// itself with the context's sticky manager and returns the markup; the
// registration lives until the caller unregisters the returned ID.
func Popover(ctx context.Context, props PopoverProps) (template.HTML, string) {
	pc := polaris.CurrentContext(ctx)

	classes := []string{"Polaris-Popover"}
	if props.FullWidth {
		classes = append(classes, "Polaris-Popover--fullWidth")
	}
	if props.Active {
		classes = append(classes, "Polaris-Popover--active")
	}

	data := popoverTemplateData{
		ID:        props.ID,
		Class:     strings.Join(classes, " "),
		Active:    props.Active,
		Activator: props.Activator,
		Content:   props.Content,
	}

	if props.Active {
		data.DismissLabel = pc.Polaris.Intl.Translate(ctx, "Polaris.Popover.dismissLabel")
	}

	var registration string
	if props.Active && props.Sticky {
		registration = pc.Polaris.StickyManager.Register(polaris.StickyItem{
			ID:     props.ID,
			Offset: props.StickyOffset,
		})
	}

	var b strings.Builder
	if err := popoverTemplate.Execute(&b, data); err != nil {
		return "", registration
	}

	return template.HTML(b.String()), registration
}
