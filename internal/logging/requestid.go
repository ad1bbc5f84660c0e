package logging

import (
	"context"

	"github.com/google/uuid"
)

// NewRequestID returns a fresh random request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// WithNewRequestID attaches a fresh request ID to ctx unless one is present.
func WithNewRequestID(ctx context.Context) context.Context {
	if GetRequestID(ctx) != "" {
		return ctx
	}
	return WithRequestID(ctx, NewRequestID())
}
