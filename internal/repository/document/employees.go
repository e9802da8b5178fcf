package document

import (
	"context"
	"fmt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
)

const employeesPath = "employees"

type employeeRepository struct {
	store docstore.Store
}

func NewEmployeeRepository(store docstore.Store) employee.Repository {
	return &employeeRepository{store: store}
}

// All implements employee.Repository.
func (r *employeeRepository) All(ctx context.Context) (employee.Collection, error) {
	var employees employee.Collection
	found, err := r.store.Get(ctx, employeesPath, &employees)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if !found || employees == nil {
		employees = employee.Collection{}
	}
	return employees, nil
}

// Replace implements employee.Repository.
func (r *employeeRepository) Replace(ctx context.Context, employees employee.Collection) error {
	if err := r.store.Set(ctx, employeesPath, employees); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}
	return nil
}
