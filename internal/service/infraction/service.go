package infraction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/domain/infraction"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/validator"
)

type InfractionServiceImpl struct {
	infractionRepo infraction.Repository
	employeeRepo   employee.Repository
}

func NewInfractionService(infractionRepo infraction.Repository, employeeRepo employee.Repository) infraction.Service {
	return &InfractionServiceImpl{
		infractionRepo: infractionRepo,
		employeeRepo:   employeeRepo,
	}
}

// Post implements infraction.Service. The occurrence count is fixed at
// creation; later deletions of earlier records do not renumber it.
func (s *InfractionServiceImpl) Post(ctx context.Context, req infraction.PostRequest) (infraction.Infraction, error) {
	if err := req.Validate(); err != nil {
		return infraction.Infraction{}, err
	}

	rule, ok := infraction.LookupRule(req.RuleCode)
	if !ok {
		return infraction.Infraction{}, fmt.Errorf("%w: %q", infraction.ErrInvalidRule, req.RuleCode)
	}

	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return infraction.Infraction{}, fmt.Errorf("failed to load employees: %w", err)
	}
	if _, ok := employees[req.EmployeeID]; !ok {
		return infraction.Infraction{}, employee.ErrEmployeeNotFound
	}

	infractions, err := s.infractionRepo.All(ctx)
	if err != nil {
		return infraction.Infraction{}, fmt.Errorf("failed to load infractions: %w", err)
	}

	occurrence := 1
	for _, inf := range infractions {
		if inf.EmployeeID == req.EmployeeID && inf.RuleCode == req.RuleCode {
			occurrence++
		}
	}

	record := infraction.Infraction{
		ID:              uuid.NewString(),
		EmployeeID:      req.EmployeeID,
		RuleCode:        req.RuleCode,
		Rule:            rule.Rule,
		Section:         rule.Section,
		Description:     rule.Description,
		Level:           rule.Level,
		AdditionalNotes: req.AdditionalNotes,
		OccurrenceCount: occurrence,
		Date:            time.Now().Format("2006-01-02"),
	}

	infractions = append(infractions, record)
	if err := s.infractionRepo.Replace(ctx, infractions); err != nil {
		return infraction.Infraction{}, fmt.Errorf("failed to save infractions: %w", err)
	}

	return record, nil
}

// List implements infraction.Service.
func (s *InfractionServiceImpl) List(ctx context.Context, employeeID string) (infraction.ListResponse, error) {
	infractions, err := s.infractionRepo.All(ctx)
	if err != nil {
		return infraction.ListResponse{}, fmt.Errorf("failed to load infractions: %w", err)
	}

	if employeeID != "" {
		filtered := make([]infraction.Infraction, 0, len(infractions))
		for _, inf := range infractions {
			if inf.EmployeeID == employeeID {
				filtered = append(filtered, inf)
			}
		}
		infractions = filtered
	}

	return infraction.ListResponse{
		TotalCount:  len(infractions),
		Infractions: infractions,
	}, nil
}

// Acknowledge implements infraction.Service.
func (s *InfractionServiceImpl) Acknowledge(ctx context.Context, id string, req infraction.AcknowledgeRequest) (infraction.Infraction, error) {
	if validator.IsEmpty(req.Signature) {
		return infraction.Infraction{}, validator.ValidationErrors{
			{Field: "signature", Message: "signature is required"},
		}
	}

	infractions, err := s.infractionRepo.All(ctx)
	if err != nil {
		return infraction.Infraction{}, fmt.Errorf("failed to load infractions: %w", err)
	}

	for i, inf := range infractions {
		if inf.ID != id {
			continue
		}
		if inf.Acknowledged {
			return infraction.Infraction{}, infraction.ErrAlreadyAcknowledged
		}

		signature := req.Signature
		infractions[i].Acknowledged = true
		infractions[i].Signature = &signature
		infractions[i].Comment = req.Comment

		if err := s.infractionRepo.Replace(ctx, infractions); err != nil {
			return infraction.Infraction{}, fmt.Errorf("failed to save infractions: %w", err)
		}
		return infractions[i], nil
	}

	return infraction.Infraction{}, infraction.ErrInfractionNotFound
}
