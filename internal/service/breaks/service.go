package breaks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shiftwise/workforce-backend-go/internal/domain/breaks"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/dateutil"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/validator"
)

type BreakServiceImpl struct {
	breakRepo    breaks.Repository
	employeeRepo employee.Repository
}

func NewBreakService(breakRepo breaks.Repository, employeeRepo employee.Repository) breaks.Service {
	return &BreakServiceImpl{
		breakRepo:    breakRepo,
		employeeRepo: employeeRepo,
	}
}

// Start implements breaks.Service. Only one break may be open at a time.
func (s *BreakServiceImpl) Start(ctx context.Context, req breaks.StartRequest) (breaks.Response, error) {
	if !validator.IsInSlice(req.Type, breaks.TypeValues) {
		return breaks.Response{}, fmt.Errorf("%w: %q", breaks.ErrInvalidBreakType, req.Type)
	}

	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return breaks.Response{}, fmt.Errorf("failed to load employees: %w", err)
	}
	if _, ok := employees[req.EmployeeID]; !ok {
		return breaks.Response{}, employee.ErrEmployeeNotFound
	}

	entries, err := s.breakRepo.All(ctx)
	if err != nil {
		return breaks.Response{}, fmt.Errorf("failed to load breaks: %w", err)
	}

	now := time.Now()
	date := now.Format(dateutil.DayFormat)

	for _, entry := range entries[date][req.EmployeeID] {
		if entry.End == nil {
			return breaks.Response{}, breaks.ErrBreakInProgress
		}
	}

	if entries == nil {
		entries = make(breaks.Collection)
	}
	if entries[date] == nil {
		entries[date] = make(breaks.DayEntries)
	}
	entries[date][req.EmployeeID] = append(entries[date][req.EmployeeID], breaks.Entry{
		Type:  breaks.BreakType(req.Type),
		Start: now,
	})

	if err := s.breakRepo.Replace(ctx, entries); err != nil {
		return breaks.Response{}, fmt.Errorf("failed to save breaks: %w", err)
	}

	index := len(entries[date][req.EmployeeID]) - 1
	return toResponse(date, req.EmployeeID, index, entries[date][req.EmployeeID][index]), nil
}

// End implements breaks.Service.
func (s *BreakServiceImpl) End(ctx context.Context, employeeID string) (breaks.Response, error) {
	entries, err := s.breakRepo.All(ctx)
	if err != nil {
		return breaks.Response{}, fmt.Errorf("failed to load breaks: %w", err)
	}

	now := time.Now()
	date := now.Format(dateutil.DayFormat)

	day := entries[date][employeeID]
	for i := len(day) - 1; i >= 0; i-- {
		if day[i].End != nil {
			continue
		}
		end := now
		day[i].End = &end
		entries[date][employeeID] = day

		if err := s.breakRepo.Replace(ctx, entries); err != nil {
			return breaks.Response{}, fmt.Errorf("failed to save breaks: %w", err)
		}
		return toResponse(date, employeeID, i, day[i]), nil
	}

	return breaks.Response{}, breaks.ErrNoOpenBreak
}

// Approve implements breaks.Service.
func (s *BreakServiceImpl) Approve(ctx context.Context, date string, employeeID string, index int) (breaks.Response, error) {
	if _, err := dateutil.ParseDay(date); err != nil {
		return breaks.Response{}, err
	}

	entries, err := s.breakRepo.All(ctx)
	if err != nil {
		return breaks.Response{}, fmt.Errorf("failed to load breaks: %w", err)
	}

	day := entries[date][employeeID]
	if index < 0 || index >= len(day) {
		return breaks.Response{}, breaks.ErrBreakNotFound
	}

	day[index].Approved = true
	entries[date][employeeID] = day

	if err := s.breakRepo.Replace(ctx, entries); err != nil {
		return breaks.Response{}, fmt.Errorf("failed to save breaks: %w", err)
	}

	return toResponse(date, employeeID, index, day[index]), nil
}

// ListByDate implements breaks.Service.
func (s *BreakServiceImpl) ListByDate(ctx context.Context, date string) (breaks.ListResponse, error) {
	if _, err := dateutil.ParseDay(date); err != nil {
		return breaks.ListResponse{}, err
	}

	entries, err := s.breakRepo.All(ctx)
	if err != nil {
		return breaks.ListResponse{}, fmt.Errorf("failed to load breaks: %w", err)
	}

	day := entries[date]
	ids := make([]string, 0, len(day))
	for id := range day {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	resp := breaks.ListResponse{
		Date:    date,
		Entries: make([]breaks.Response, 0),
	}
	for _, id := range ids {
		for i, entry := range day[id] {
			resp.Entries = append(resp.Entries, toResponse(date, id, i, entry))
		}
	}
	return resp, nil
}

func toResponse(date string, employeeID string, index int, entry breaks.Entry) breaks.Response {
	resp := breaks.Response{
		Date:       date,
		EmployeeID: employeeID,
		Index:      index,
		Type:       string(entry.Type),
		Start:      entry.Start.Format(time.RFC3339),
		Approved:   entry.Approved,
	}
	if entry.End != nil {
		end := entry.End.Format(time.RFC3339)
		resp.End = &end
	}
	return resp
}
