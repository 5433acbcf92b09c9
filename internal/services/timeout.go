package services

import (
	"context"
	"time"
)

// withTimeout bounds ctx by d. A non-positive d means no service-level deadline.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
