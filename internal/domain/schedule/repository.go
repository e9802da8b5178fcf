package schedule

import "context"

type Repository interface {
	All(ctx context.Context) (Collection, error)
	Replace(ctx context.Context, schedules Collection) error
}
