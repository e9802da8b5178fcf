package infraction

import (
	"github.com/shiftwise/workforce-backend-go/internal/pkg/validator"
)

type PostRequest struct {
	EmployeeID      string `json:"employeeId"`
	RuleCode        string `json:"ruleCode"`
	AdditionalNotes string `json:"additionalNotes"`
}

func (r PostRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.RuleCode) {
		errs = append(errs, validator.ValidationError{Field: "ruleCode", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AcknowledgeRequest struct {
	Signature string `json:"signature"`
	Comment   string `json:"comment"`
}

type ListResponse struct {
	TotalCount  int          `json:"totalCount"`
	Infractions []Infraction `json:"infractions"`
}
