// Package polaris assembles the shared services every component in a
// design-system tree depends on: translation lookup, link rendering,
// sticky positioning, scroll locking and theme subscription. Two loosely
// typed settings inputs are classified by shape and merged into a single
// canonical pair of bundles that descendants read through context.
package polaris

import (
	"github.com/polarisui/polaris/intl"
)

// ServiceBundle is the fixed-shape record of cross-cutting capabilities
// handed to every component below a provider. Instances are snapshots;
// components must never mutate them.
type ServiceBundle struct {
	Intl              *intl.Intl
	Link              Link
	StickyManager     *StickyManager
	ScrollLockManager *ScrollLockManager

	// Subscribe and Unsubscribe are reserved for a future cross-cutting
	// notification channel. They are always the shared no-op, theme
	// callbacks never populate them.
	Subscribe   ThemeCallback
	Unsubscribe ThemeCallback

	// AppBridge is an optional external application handle. This
	// construction path never sets it.
	AppBridge any
}

// ThemeBundle carries visual-identity subscription state, kept separate
// from the general service bundle.
type ThemeBundle struct {
	Logo        *Logo
	Subscribe   ThemeCallback
	Unsubscribe ThemeCallback
}

// Context is the assembled pair of bundles distributed to a component
// subtree.
type Context struct {
	Polaris      *ServiceBundle
	PolarisTheme *ThemeBundle
}

// CreateContext merges up to two settings inputs into a fresh Context.
// Inputs are positionally unordered: each is classified by which fields
// it carries, so the application-shaped input always feeds the service
// bundle and the theme-shaped input always feeds the theme bundle
// regardless of argument order. Absent fields fall back to defaults and
// unrecognized content is ignored.
//
// Every call allocates fresh bundles. A caller-supplied sticky manager
// is adopted by reference; the scroll-lock manager is always a fresh
// default.
func CreateContext(first, second *Settings) *Context {
	app, theme := classifySettings(first, second)

	var dictionary intl.Dictionary
	var renderer LinkRenderer
	var sticky *StickyManager

	if app != nil {
		dictionary = app.I18n
		renderer = app.LinkComponent
		sticky = app.StickyManager
	}

	if sticky == nil {
		sticky = NewStickyManager()
	}

	bundle := &ServiceBundle{
		Intl:              intl.New(dictionary),
		Link:              NewLink(renderer),
		StickyManager:     sticky,
		ScrollLockManager: NewScrollLockManager(),
		Subscribe:         NoopCallback,
		Unsubscribe:       NoopCallback,
	}

	themeBundle := &ThemeBundle{
		Subscribe:   NoopCallback,
		Unsubscribe: NoopCallback,
	}

	if theme != nil {
		themeBundle.Logo = theme.Logo
		if theme.Subscribe != nil {
			themeBundle.Subscribe = theme.Subscribe
		}
		if theme.Unsubscribe != nil {
			themeBundle.Unsubscribe = theme.Unsubscribe
		}
	}

	return &Context{Polaris: bundle, PolarisTheme: themeBundle}
}

// Equal reports observable equality between two assembled contexts.
// Stateful managers compare by adopted identity or by registry content,
// so two independently assembled contexts from the same settings are
// equal even though their default managers are distinct instances.
func (c *Context) Equal(other *Context) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Polaris.equal(other.Polaris) && c.PolarisTheme.equal(other.PolarisTheme)
}

func (b *ServiceBundle) equal(other *ServiceBundle) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Intl.Equal(other.Intl) &&
		b.Link.Equal(other.Link) &&
		b.StickyManager.Equal(other.StickyManager) &&
		b.ScrollLockManager.Equal(other.ScrollLockManager) &&
		callbackEqual(b.Subscribe, other.Subscribe) &&
		callbackEqual(b.Unsubscribe, other.Unsubscribe) &&
		b.AppBridge == other.AppBridge
}

func (t *ThemeBundle) equal(other *ThemeBundle) bool {
	if t == nil || other == nil {
		return t == other
	}
	if (t.Logo == nil) != (other.Logo == nil) {
		return false
	}
	if t.Logo != nil && *t.Logo != *other.Logo {
		return false
	}
	return callbackEqual(t.Subscribe, other.Subscribe) &&
		callbackEqual(t.Unsubscribe, other.Unsubscribe)
}
