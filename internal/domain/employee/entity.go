package employee

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleEmployee),
}

type Employee struct {
	EmployeeID   string       `json:"employeeId"`
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty"`
	Role         Role         `json:"role"`
	Blocked      bool         `json:"blocked"`
	PasswordHash string       `json:"passwordHash,omitempty"`
	LoginHistory []LoginEvent `json:"loginHistory,omitempty"`
}

type LoginEvent struct {
	Time      time.Time `json:"time"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}

// Collection is the full employees document, keyed by employee ID.
type Collection map[string]Employee
