package infraction

import "context"

type Repository interface {
	All(ctx context.Context) ([]Infraction, error)
	Replace(ctx context.Context, infractions []Infraction) error
}
