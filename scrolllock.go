package polaris

import "sync"

// ScrollLockManager tracks how many components currently require the
// page scroll to be locked. Locks nest: the page stays locked until
// every holder has released.
type ScrollLockManager struct {
	mu    sync.Mutex
	depth int
}

func NewScrollLockManager() *ScrollLockManager {
	return &ScrollLockManager{}
}

// Lock records one additional scroll-lock holder.
func (m *ScrollLockManager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.depth++
}

// Unlock releases one holder. Releasing below zero is ignored.
func (m *ScrollLockManager) Unlock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.depth > 0 {
		m.depth--
	}
}

// IsLocked reports whether any holder currently requires the lock.
func (m *ScrollLockManager) IsLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.depth > 0
}

// Equal reports whether two managers are the same instance or hold the
// same lock depth.
func (m *ScrollLockManager) Equal(other *ScrollLockManager) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}

	m.mu.Lock()
	depth := m.depth
	m.mu.Unlock()

	other.mu.Lock()
	otherDepth := other.depth
	other.mu.Unlock()

	return depth == otherDepth
}
