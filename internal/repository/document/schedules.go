package document

import (
	"context"
	"fmt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
)

const schedulesPath = "schedules"

type scheduleRepository struct {
	store docstore.Store
}

func NewScheduleRepository(store docstore.Store) schedule.Repository {
	return &scheduleRepository{store: store}
}

// All implements schedule.Repository.
func (r *scheduleRepository) All(ctx context.Context) (schedule.Collection, error) {
	var schedules schedule.Collection
	found, err := r.store.Get(ctx, schedulesPath, &schedules)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}
	if !found || schedules == nil {
		schedules = schedule.Collection{}
	}
	return schedules, nil
}

// Replace implements schedule.Repository.
func (r *scheduleRepository) Replace(ctx context.Context, schedules schedule.Collection) error {
	if err := r.store.Set(ctx, schedulesPath, schedules); err != nil {
		return fmt.Errorf("failed to save schedules: %w", err)
	}
	return nil
}
