package driven

import "context"

// AllowList decides which accounts may use the application.
type AllowList interface {
	// IsAllowed reports whether email may sign in.
	// Matching is case-insensitive.
	IsAllowed(ctx context.Context, email string) (bool, error)
}
