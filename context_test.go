package polaris_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarisui/polaris"
)

func TestContextRoundTrip(t *testing.T) {
	assembled := polaris.CreateContext(nil, nil)

	ctx := assembled.ToContext(context.Background())

	require.Same(t, assembled, polaris.FromContext(ctx))
	require.Same(t, assembled, polaris.CurrentContext(ctx))
}

func TestCurrentContextFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, polaris.FromContext(ctx))

	got := polaris.CurrentContext(ctx)
	require.NotNil(t, got)
	assert.True(t, got.Polaris.Link.IsDefault())
}
