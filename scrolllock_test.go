package polaris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarisui/polaris"
)

func TestScrollLockManagerNesting(t *testing.T) {
	manager := polaris.NewScrollLockManager()

	assert.False(t, manager.IsLocked())

	manager.Lock()
	manager.Lock()
	assert.True(t, manager.IsLocked())

	manager.Unlock()
	assert.True(t, manager.IsLocked())

	manager.Unlock()
	assert.False(t, manager.IsLocked())

	// Releasing below zero is ignored.
	manager.Unlock()
	assert.False(t, manager.IsLocked())
}

func TestScrollLockManagerEqual(t *testing.T) {
	manager := polaris.NewScrollLockManager()

	assert.True(t, manager.Equal(manager))
	assert.True(t, manager.Equal(polaris.NewScrollLockManager()))

	manager.Lock()
	assert.False(t, manager.Equal(polaris.NewScrollLockManager()))
	assert.False(t, manager.Equal(nil))
}
