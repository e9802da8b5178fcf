package attendance

import "context"

type Repository interface {
	All(ctx context.Context) (Collection, error)
	Replace(ctx context.Context, records Collection) error
}
