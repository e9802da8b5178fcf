package client

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/shiftwise/workforce-backend-go/internal/domain/client"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
)

type ClientServiceImpl struct {
	clientRepo   client.Repository
	employeeRepo employee.Repository
}

func NewClientService(clientRepo client.Repository, employeeRepo employee.Repository) client.Service {
	return &ClientServiceImpl{
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements client.Service.
func (s *ClientServiceImpl) Create(ctx context.Context, req client.CreateRequest) (client.Client, error) {
	if err := req.Validate(); err != nil {
		return client.Client{}, err
	}

	clients, err := s.clientRepo.All(ctx)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to load clients: %w", err)
	}

	for _, c := range clients {
		if strings.EqualFold(c.Name, req.Name) {
			return client.Client{}, client.ErrClientExists
		}
	}

	if clients == nil {
		clients = make(client.Collection)
	}
	c := client.Client{
		ID:            uuid.NewString(),
		Name:          req.Name,
		BusinessHours: req.BusinessHours,
	}
	clients[c.ID] = c

	if err := s.clientRepo.Replace(ctx, clients); err != nil {
		return client.Client{}, fmt.Errorf("failed to save clients: %w", err)
	}
	return c, nil
}

// Get implements client.Service.
func (s *ClientServiceImpl) Get(ctx context.Context, clientID string) (client.Client, error) {
	clients, err := s.clientRepo.All(ctx)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to load clients: %w", err)
	}

	c, ok := clients[clientID]
	if !ok {
		return client.Client{}, client.ErrClientNotFound
	}
	return c, nil
}

// List implements client.Service.
func (s *ClientServiceImpl) List(ctx context.Context) (client.ListResponse, error) {
	clients, err := s.clientRepo.All(ctx)
	if err != nil {
		return client.ListResponse{}, fmt.Errorf("failed to load clients: %w", err)
	}

	list := make([]client.Client, 0, len(clients))
	for _, c := range clients {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	return client.ListResponse{
		TotalCount: len(list),
		Clients:    list,
	}, nil
}

// Update implements client.Service. Business hours are replaced wholesale.
func (s *ClientServiceImpl) Update(ctx context.Context, clientID string, req client.UpdateRequest) (client.Client, error) {
	if err := req.Validate(); err != nil {
		return client.Client{}, err
	}

	clients, err := s.clientRepo.All(ctx)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to load clients: %w", err)
	}

	c, ok := clients[clientID]
	if !ok {
		return client.Client{}, client.ErrClientNotFound
	}

	for id, existing := range clients {
		if id != clientID && strings.EqualFold(existing.Name, req.Name) {
			return client.Client{}, client.ErrClientExists
		}
	}

	c.Name = req.Name
	c.BusinessHours = req.BusinessHours
	clients[clientID] = c

	if err := s.clientRepo.Replace(ctx, clients); err != nil {
		return client.Client{}, fmt.Errorf("failed to save clients: %w", err)
	}
	return c, nil
}

// Delete implements client.Service. Assignments for the client are dropped
// with it.
func (s *ClientServiceImpl) Delete(ctx context.Context, clientID string) error {
	clients, err := s.clientRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	if _, ok := clients[clientID]; !ok {
		return client.ErrClientNotFound
	}

	delete(clients, clientID)
	if err := s.clientRepo.Replace(ctx, clients); err != nil {
		return fmt.Errorf("failed to save clients: %w", err)
	}

	assignments, err := s.clientRepo.Assignments(ctx)
	if err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}
	if _, ok := assignments[clientID]; ok {
		delete(assignments, clientID)
		if err := s.clientRepo.ReplaceAssignments(ctx, assignments); err != nil {
			return fmt.Errorf("failed to save assignments: %w", err)
		}
	}
	return nil
}

// Assign implements client.Service.
func (s *ClientServiceImpl) Assign(ctx context.Context, clientID string, employeeID string) error {
	clients, err := s.clientRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	if _, ok := clients[clientID]; !ok {
		return client.ErrClientNotFound
	}

	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	if _, ok := employees[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}

	assignments, err := s.clientRepo.Assignments(ctx)
	if err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}

	for _, id := range assignments[clientID] {
		if id == employeeID {
			return client.ErrAlreadyAssigned
		}
	}

	if assignments == nil {
		assignments = make(client.Assignments)
	}
	assignments[clientID] = append(assignments[clientID], employeeID)

	if err := s.clientRepo.ReplaceAssignments(ctx, assignments); err != nil {
		return fmt.Errorf("failed to save assignments: %w", err)
	}
	return nil
}

// Unassign implements client.Service.
func (s *ClientServiceImpl) Unassign(ctx context.Context, clientID string, employeeID string) error {
	clients, err := s.clientRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	if _, ok := clients[clientID]; !ok {
		return client.ErrClientNotFound
	}

	assignments, err := s.clientRepo.Assignments(ctx)
	if err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}

	list := assignments[clientID]
	for i, id := range list {
		if id != employeeID {
			continue
		}
		assignments[clientID] = append(list[:i], list[i+1:]...)
		if err := s.clientRepo.ReplaceAssignments(ctx, assignments); err != nil {
			return fmt.Errorf("failed to save assignments: %w", err)
		}
		return nil
	}

	return client.ErrNotAssigned
}

// Assigned implements client.Service.
func (s *ClientServiceImpl) Assigned(ctx context.Context, clientID string) ([]string, error) {
	clients, err := s.clientRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	if _, ok := clients[clientID]; !ok {
		return nil, client.ErrClientNotFound
	}

	assignments, err := s.clientRepo.Assignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	assigned := append([]string(nil), assignments[clientID]...)
	sort.Strings(assigned)
	return assigned, nil
}
