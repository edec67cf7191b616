package polaris

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return "polaris/" + string(c)
}

const ctxKeyContext = contextKey("contextKey")

// ToContext adds the assembled context to the supplied context so
// descendant components can read it.
func (c *Context) ToContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyContext, c)
}

// FromContext extracts the assembled context if any exists.
func FromContext(ctx context.Context) *Context {
	c, ok := ctx.Value(ctxKeyContext).(*Context)
	if !ok {
		return nil
	}

	return c
}

// CurrentContext extracts the assembled context, falling back to a
// fresh all-defaults assembly when none was distributed. Components use
// this so they render sensibly outside a provider.
func CurrentContext(ctx context.Context) *Context {
	if c := FromContext(ctx); c != nil {
		return c
	}

	return CreateContext(nil, nil)
}
