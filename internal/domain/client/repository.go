package client

import "context"

type Repository interface {
	All(ctx context.Context) (Collection, error)
	Replace(ctx context.Context, clients Collection) error

	Assignments(ctx context.Context) (Assignments, error)
	ReplaceAssignments(ctx context.Context, assignments Assignments) error
}
