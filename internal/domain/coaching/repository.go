package coaching

import "context"

// Repository reads and replaces the three coaching documents wholesale.
type Repository interface {
	Logs(ctx context.Context) ([]Log, error)
	ReplaceLogs(ctx context.Context, logs []Log) error

	Pending(ctx context.Context) ([]Pending, error)
	ReplacePending(ctx context.Context, pending []Pending) error

	Ignored(ctx context.Context) (IgnoredCollection, error)
	ReplaceIgnored(ctx context.Context, ignored IgnoredCollection) error
}
