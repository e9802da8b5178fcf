// Package settings holds application-level toggles stored alongside the
// domain collections.
package settings

import "context"

// Repository reads and writes the auto-coaching toggle document.
type Repository interface {
	AutoCoachingEnabled(ctx context.Context) (bool, error)
	SetAutoCoachingEnabled(ctx context.Context, enabled bool) error
}
