// Package docstore exposes the tree-structured document store the
// application reads and writes. Every collection lives at a fixed path and is
// fetched and replaced wholesale; there is no partial merge and no
// compare-and-swap, so concurrent writers race under last-write-wins.
package docstore

import (
	"context"
	"errors"
)

var ErrMalformedDocument = errors.New("malformed document at path")

// Store is the full external contract of the persistence layer: two
// operations over opaque JSON values keyed by path.
type Store interface {
	// Get unmarshals the value stored at path into out. It returns false
	// when the path has never been set; callers default to empty collections.
	Get(ctx context.Context, path string, out any) (bool, error)

	// Set replaces the value at path wholesale.
	Set(ctx context.Context, path string, value any) error
}
