package document

import (
	"context"
	"fmt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/client"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
)

const (
	clientsPath     = "clients"
	assignmentsPath = "client-assignments"
)

type clientRepository struct {
	store docstore.Store
}

func NewClientRepository(store docstore.Store) client.Repository {
	return &clientRepository{store: store}
}

// All implements client.Repository.
func (r *clientRepository) All(ctx context.Context) (client.Collection, error) {
	var clients client.Collection
	found, err := r.store.Get(ctx, clientsPath, &clients)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	if !found || clients == nil {
		clients = client.Collection{}
	}
	return clients, nil
}

// Replace implements client.Repository.
func (r *clientRepository) Replace(ctx context.Context, clients client.Collection) error {
	if err := r.store.Set(ctx, clientsPath, clients); err != nil {
		return fmt.Errorf("failed to save clients: %w", err)
	}
	return nil
}

// Assignments implements client.Repository.
func (r *clientRepository) Assignments(ctx context.Context) (client.Assignments, error) {
	var assignments client.Assignments
	found, err := r.store.Get(ctx, assignmentsPath, &assignments)
	if err != nil {
		return nil, fmt.Errorf("failed to load client assignments: %w", err)
	}
	if !found || assignments == nil {
		assignments = client.Assignments{}
	}
	return assignments, nil
}

// ReplaceAssignments implements client.Repository.
func (r *clientRepository) ReplaceAssignments(ctx context.Context, assignments client.Assignments) error {
	if err := r.store.Set(ctx, assignmentsPath, assignments); err != nil {
		return fmt.Errorf("failed to save client assignments: %w", err)
	}
	return nil
}
