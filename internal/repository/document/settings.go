package document

import (
	"context"
	"fmt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/settings"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
)

const autoCoachingEnabledPath = "settings/auto-coaching-enabled"

type settingsRepository struct {
	store docstore.Store
}

func NewSettingsRepository(store docstore.Store) settings.Repository {
	return &settingsRepository{store: store}
}

// AutoCoachingEnabled implements settings.Repository. An unset toggle reads
// as disabled.
func (r *settingsRepository) AutoCoachingEnabled(ctx context.Context) (bool, error) {
	var enabled bool
	found, err := r.store.Get(ctx, autoCoachingEnabledPath, &enabled)
	if err != nil {
		return false, fmt.Errorf("failed to load auto-coaching setting: %w", err)
	}
	if !found {
		return false, nil
	}
	return enabled, nil
}

// SetAutoCoachingEnabled implements settings.Repository.
func (r *settingsRepository) SetAutoCoachingEnabled(ctx context.Context, enabled bool) error {
	if err := r.store.Set(ctx, autoCoachingEnabledPath, enabled); err != nil {
		return fmt.Errorf("failed to save auto-coaching setting: %w", err)
	}
	return nil
}
