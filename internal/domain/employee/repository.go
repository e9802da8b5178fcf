package employee

import "context"

// Repository reads and replaces the employees document wholesale, mirroring
// the store's get/set contract.
type Repository interface {
	All(ctx context.Context) (Collection, error)
	Replace(ctx context.Context, employees Collection) error
}
