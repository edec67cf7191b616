package polaris

import (
	"reflect"
	"sync"

	"github.com/rs/xid"
)

// StickyItem describes one element registered for sticky positioning.
type StickyItem struct {
	// ID uniquely identifies the registration. Assigned on Register
	// when left empty.
	ID string

	// Offset is the distance in pixels the element keeps from the top
	// of its scroll container while stuck.
	Offset int

	// BoundingElement optionally names the scroll container the item is
	// confined to. Empty means the document.
	BoundingElement string
}

// StickyManager keeps the registry of sticky-positioned elements for one
// component tree. The zero construction establishes an empty registry
// and nothing else; any listener attachment is deferred until items are
// consumed.
type StickyManager struct {
	mu    sync.Mutex
	items []StickyItem
}

func NewStickyManager() *StickyManager {
	return &StickyManager{}
}

// Register adds an item to the registry and returns its ID, generating
// one when the item carries none. Registration order is preserved.
func (m *StickyManager) Register(item StickyItem) string {
	if item.ID == "" {
		item.ID = xid.New().String()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)

	return item.ID
}

// Unregister removes the item with the given ID. Unknown IDs are
// ignored.
func (m *StickyManager) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return
		}
	}
}

// Items returns a snapshot of the registry in registration order.
func (m *StickyManager) Items() []StickyItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make([]StickyItem, len(m.items))
	copy(snapshot, m.items)

	return snapshot
}

// Equal reports whether two managers are the same instance or hold
// equal registries.
func (m *StickyManager) Equal(other *StickyManager) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}

	return reflect.DeepEqual(m.Items(), other.Items())
}
