package polaris

import (
	"reflect"
	"sync"
)

// Logo describes the visual identity asset carried by the theme bundle.
type Logo struct {
	Source             string
	URL                string
	Alt                string
	Width              int
	AccessibilityLabel string
}

// ThemeListener is invoked whenever the theme a component tree renders
// under changes.
type ThemeListener func()

// ThemeCallback registers or removes a listener with whatever theme
// engine backs the current tree.
type ThemeCallback func(ThemeListener)

// NoopCallback is the canonical safe default for absent subscription
// hooks. It is a single shared value so equality-based assertions stay
// simple.
func NoopCallback(ThemeListener) {}

func callbackEqual(a, b ThemeCallback) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// ThemeNotifier is a minimal theme-change registry. Its Subscribe and
// Unsubscribe methods satisfy ThemeCallback, so a theme engine can hand
// them to CreateContext via the theme-shaped settings input.
type ThemeNotifier struct {
	mu        sync.Mutex
	listeners map[uintptr]ThemeListener
}

func NewThemeNotifier() *ThemeNotifier {
	return &ThemeNotifier{listeners: make(map[uintptr]ThemeListener)}
}

// Subscribe registers a listener. Registering the same function value
// twice keeps a single registration.
func (n *ThemeNotifier) Subscribe(l ThemeListener) {
	if l == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners[reflect.ValueOf(l).Pointer()] = l
}

// Unsubscribe removes a previously registered listener. Unknown
// listeners are ignored.
func (n *ThemeNotifier) Unsubscribe(l ThemeListener) {
	if l == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.listeners, reflect.ValueOf(l).Pointer())
}

// Notify invokes every registered listener.
func (n *ThemeNotifier) Notify() {
	n.mu.Lock()
	listeners := make([]ThemeListener, 0, len(n.listeners))
	for _, l := range n.listeners {
		listeners = append(listeners, l)
	}
	n.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}
