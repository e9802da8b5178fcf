package client

import (
	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/dateutil"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Name          string                       `json:"name"`
	BusinessHours map[string]schedule.DayHours `json:"businessHours"`
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	errs = append(errs, validateBusinessHours(r.BusinessHours)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	Name          string                       `json:"name"`
	BusinessHours map[string]schedule.DayHours `json:"businessHours"`
}

func (r UpdateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	errs = append(errs, validateBusinessHours(r.BusinessHours)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateBusinessHours(hours map[string]schedule.DayHours) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for day, h := range hours {
		if !dateutil.IsValidDayName(day) {
			errs = append(errs, validator.ValidationError{Field: "businessHours." + day, Message: "unknown day name"})
			continue
		}
		if h.IsZero() {
			continue
		}
		if !validator.IsValidClockTime(h.Start) || !validator.IsValidClockTime(h.End) {
			errs = append(errs, validator.ValidationError{Field: "businessHours." + day, Message: "start and end must be HH:MM"})
		}
	}
	return errs
}

type AssignRequest struct {
	EmployeeID string `json:"employeeId"`
}

type ListResponse struct {
	TotalCount int      `json:"totalCount"`
	Clients    []Client `json:"clients"`
}
