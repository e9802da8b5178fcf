package employee

import (
	"github.com/shiftwise/workforce-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "must be 2-50 characters (letters, digits, . _ -)"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be admin or employee"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Response is the employee shape returned to clients; the password hash never
// leaves the service layer.
type Response struct {
	EmployeeID   string       `json:"employeeId"`
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty"`
	Role         Role         `json:"role"`
	Blocked      bool         `json:"blocked"`
	LoginHistory []LoginEvent `json:"loginHistory,omitempty"`
}

type ListResponse struct {
	TotalCount int        `json:"totalCount"`
	Employees  []Response `json:"employees"`
}
