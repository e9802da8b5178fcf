package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee ID already registered")
	ErrEmployeeBlocked  = errors.New("employee account is blocked")
	ErrInvalidRole      = errors.New("role must be admin or employee")
)
