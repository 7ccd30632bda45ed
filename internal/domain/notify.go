package domain

import "context"

// RevalidationTrigger asks the rendering frontend to mark cached renderings of
// a path stale. Failures are logged, never propagated to the write path.
type RevalidationTrigger interface {
	Revalidate(ctx context.Context, path string) error
}

// AnalyticsTracker records a fire-and-forget usage event.
type AnalyticsTracker interface {
	Track(ctx context.Context, event string, properties map[string]any) error
}
