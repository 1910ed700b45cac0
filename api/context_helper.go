package api

import (
	"context"
	"time"
)

// QueryTimeout bounds a single inflow history query
const QueryTimeout = 10 * time.Second

// WithQueryTimeout derives a context for one database query
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}
