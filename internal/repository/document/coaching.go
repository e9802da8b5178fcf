package document

import (
	"context"
	"fmt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/coaching"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
)

const (
	coachingLogsPath = "coaching-logs"
	pendingPath      = "pending-auto-coaching"
	ignoredPath      = "ignored-coaching-incidents"
)

type coachingRepository struct {
	store docstore.Store
}

func NewCoachingRepository(store docstore.Store) coaching.Repository {
	return &coachingRepository{store: store}
}

// Logs implements coaching.Repository.
func (r *coachingRepository) Logs(ctx context.Context) ([]coaching.Log, error) {
	var logs []coaching.Log
	found, err := r.store.Get(ctx, coachingLogsPath, &logs)
	if err != nil {
		return nil, fmt.Errorf("failed to load coaching logs: %w", err)
	}
	if !found || logs == nil {
		logs = []coaching.Log{}
	}
	return logs, nil
}

// ReplaceLogs implements coaching.Repository.
func (r *coachingRepository) ReplaceLogs(ctx context.Context, logs []coaching.Log) error {
	if err := r.store.Set(ctx, coachingLogsPath, logs); err != nil {
		return fmt.Errorf("failed to save coaching logs: %w", err)
	}
	return nil
}

// Pending implements coaching.Repository.
func (r *coachingRepository) Pending(ctx context.Context) ([]coaching.Pending, error) {
	var pending []coaching.Pending
	found, err := r.store.Get(ctx, pendingPath, &pending)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending coaching: %w", err)
	}
	if !found || pending == nil {
		pending = []coaching.Pending{}
	}
	return pending, nil
}

// ReplacePending implements coaching.Repository.
func (r *coachingRepository) ReplacePending(ctx context.Context, pending []coaching.Pending) error {
	if err := r.store.Set(ctx, pendingPath, pending); err != nil {
		return fmt.Errorf("failed to save pending coaching: %w", err)
	}
	return nil
}

// Ignored implements coaching.Repository.
func (r *coachingRepository) Ignored(ctx context.Context) (coaching.IgnoredCollection, error) {
	var ignored coaching.IgnoredCollection
	found, err := r.store.Get(ctx, ignoredPath, &ignored)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignored incidents: %w", err)
	}
	if !found || ignored == nil {
		ignored = coaching.IgnoredCollection{}
	}
	return ignored, nil
}

// ReplaceIgnored implements coaching.Repository.
func (r *coachingRepository) ReplaceIgnored(ctx context.Context, ignored coaching.IgnoredCollection) error {
	if err := r.store.Set(ctx, ignoredPath, ignored); err != nil {
		return fmt.Errorf("failed to save ignored incidents: %w", err)
	}
	return nil
}
