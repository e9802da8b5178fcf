package document

import (
	"context"
	"fmt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/infraction"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
)

const infractionsPath = "infractions"

type infractionRepository struct {
	store docstore.Store
}

func NewInfractionRepository(store docstore.Store) infraction.Repository {
	return &infractionRepository{store: store}
}

// All implements infraction.Repository.
func (r *infractionRepository) All(ctx context.Context) ([]infraction.Infraction, error) {
	var infractions []infraction.Infraction
	found, err := r.store.Get(ctx, infractionsPath, &infractions)
	if err != nil {
		return nil, fmt.Errorf("failed to load infractions: %w", err)
	}
	if !found || infractions == nil {
		infractions = []infraction.Infraction{}
	}
	return infractions, nil
}

// Replace implements infraction.Repository.
func (r *infractionRepository) Replace(ctx context.Context, infractions []infraction.Infraction) error {
	if err := r.store.Set(ctx, infractionsPath, infractions); err != nil {
		return fmt.Errorf("failed to save infractions: %w", err)
	}
	return nil
}
