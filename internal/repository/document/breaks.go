package document

import (
	"context"
	"fmt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/breaks"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
)

const breaksPath = "breaks"

type breakRepository struct {
	store docstore.Store
}

func NewBreakRepository(store docstore.Store) breaks.Repository {
	return &breakRepository{store: store}
}

// All implements breaks.Repository.
func (r *breakRepository) All(ctx context.Context) (breaks.Collection, error) {
	var records breaks.Collection
	found, err := r.store.Get(ctx, breaksPath, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to load breaks: %w", err)
	}
	if !found || records == nil {
		records = breaks.Collection{}
	}
	return records, nil
}

// Replace implements breaks.Repository.
func (r *breakRepository) Replace(ctx context.Context, records breaks.Collection) error {
	if err := r.store.Set(ctx, breaksPath, records); err != nil {
		return fmt.Errorf("failed to save breaks: %w", err)
	}
	return nil
}
