package document

import (
	"context"
	"fmt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
)

const attendancePath = "attendance"

type attendanceRepository struct {
	store docstore.Store
}

func NewAttendanceRepository(store docstore.Store) attendance.Repository {
	return &attendanceRepository{store: store}
}

// All implements attendance.Repository. A never-written path defaults to an
// empty collection so callers can iterate without nil checks.
func (r *attendanceRepository) All(ctx context.Context) (attendance.Collection, error) {
	var records attendance.Collection
	found, err := r.store.Get(ctx, attendancePath, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	if !found || records == nil {
		records = attendance.Collection{}
	}
	return records, nil
}

// Replace implements attendance.Repository.
func (r *attendanceRepository) Replace(ctx context.Context, records attendance.Collection) error {
	if err := r.store.Set(ctx, attendancePath, records); err != nil {
		return fmt.Errorf("failed to save attendance: %w", err)
	}
	return nil
}
