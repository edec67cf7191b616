package polaris

import (
	"github.com/polarisui/polaris/intl"
)

// Settings is a loosely typed, partial configuration input. A single
// value may carry any subset of the known fields; which bundle a field
// feeds is decided by shape classification, not by the position the
// value was passed in.
type Settings struct {
	// Application-shaped fields.
	I18n          intl.Dictionary
	LinkComponent LinkRenderer
	StickyManager *StickyManager

	// Theme-shaped fields.
	Logo        *Logo
	Subscribe   ThemeCallback
	Unsubscribe ThemeCallback
}

func (s *Settings) hasAppSettings() bool {
	return s.I18n != nil || s.LinkComponent != nil || s.StickyManager != nil
}

func (s *Settings) hasThemeSettings() bool {
	return s.Logo != nil || s.Subscribe != nil || s.Unsubscribe != nil
}

// classifySettings assigns each input a role by key presence. An input
// carrying fields of both namespaces serves both roles. When two inputs
// claim the same role the later one wins, last option takes precedence.
func classifySettings(inputs ...*Settings) (app, theme *Settings) {
	for _, in := range inputs {
		if in == nil {
			continue
		}

		if in.hasAppSettings() {
			app = in
		}

		if in.hasThemeSettings() {
			theme = in
		}
	}

	return app, theme
}
