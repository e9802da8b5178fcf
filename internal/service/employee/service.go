package employee

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Register implements employee.Service.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return employee.Response{}, fmt.Errorf("failed to load employees: %w", err)
	}
	if _, ok := employees[req.EmployeeID]; ok {
		return employee.Response{}, employee.ErrEmployeeExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Response{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if employees == nil {
		employees = make(employee.Collection)
	}
	emp := employee.Employee{
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		Email:        req.Email,
		Role:         employee.Role(req.Role),
		PasswordHash: string(hash),
	}
	employees[emp.EmployeeID] = emp

	if err := s.employeeRepo.Replace(ctx, employees); err != nil {
		return employee.Response{}, fmt.Errorf("failed to save employees: %w", err)
	}

	return toResponse(emp), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (employee.Response, error) {
	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return employee.Response{}, fmt.Errorf("failed to load employees: %w", err)
	}

	emp, ok := employees[employeeID]
	if !ok {
		return employee.Response{}, employee.ErrEmployeeNotFound
	}
	return toResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListResponse, error) {
	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return employee.ListResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	list := make([]employee.Response, 0, len(employees))
	for _, emp := range employees {
		list = append(list, toResponse(emp))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].EmployeeID < list[j].EmployeeID })

	return employee.ListResponse{
		TotalCount: len(list),
		Employees:  list,
	}, nil
}

// SetBlocked implements employee.Service.
func (s *EmployeeServiceImpl) SetBlocked(ctx context.Context, employeeID string, blocked bool) (employee.Response, error) {
	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return employee.Response{}, fmt.Errorf("failed to load employees: %w", err)
	}

	emp, ok := employees[employeeID]
	if !ok {
		return employee.Response{}, employee.ErrEmployeeNotFound
	}

	emp.Blocked = blocked
	employees[employeeID] = emp

	if err := s.employeeRepo.Replace(ctx, employees); err != nil {
		return employee.Response{}, fmt.Errorf("failed to save employees: %w", err)
	}
	return toResponse(emp), nil
}

// Delete implements employee.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	if _, ok := employees[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}

	delete(employees, employeeID)
	if err := s.employeeRepo.Replace(ctx, employees); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}
	return nil
}

func toResponse(emp employee.Employee) employee.Response {
	return employee.Response{
		EmployeeID:   emp.EmployeeID,
		Name:         emp.Name,
		Email:        emp.Email,
		Role:         emp.Role,
		Blocked:      emp.Blocked,
		LoginHistory: emp.LoginHistory,
	}
}
