package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shiftwise/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository, employeeRepo employee.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// MarkPresent implements attendance.Service.
func (s *AttendanceServiceImpl) MarkPresent(ctx context.Context, req attendance.MarkPresentRequest) (attendance.Response, error) {
	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to load employees: %w", err)
	}
	emp, ok := employees[req.EmployeeID]
	if !ok {
		return attendance.Response{}, employee.ErrEmployeeNotFound
	}

	records, err := s.attendanceRepo.All(ctx)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	now := time.Now()
	date := now.Format(dateutil.DayFormat)

	if _, ok := records[date][req.EmployeeID]; ok {
		return attendance.Response{}, attendance.ErrAlreadyMarkedPresent
	}

	if records == nil {
		records = make(attendance.Collection)
	}
	if records[date] == nil {
		records[date] = make(attendance.DayRecords)
	}
	records[date][req.EmployeeID] = attendance.Record{
		Status:   attendance.StatusPresent,
		Time:     now,
		Approved: false,
		Username: req.Username,
		Name:     emp.Name,
	}

	if err := s.attendanceRepo.Replace(ctx, records); err != nil {
		return attendance.Response{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	return toResponse(date, req.EmployeeID, records[date][req.EmployeeID]), nil
}

// Approve implements attendance.Service.
func (s *AttendanceServiceImpl) Approve(ctx context.Context, date string, employeeID string) (attendance.Response, error) {
	if _, err := dateutil.ParseDay(date); err != nil {
		return attendance.Response{}, err
	}

	records, err := s.attendanceRepo.All(ctx)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	rec, ok := records[date][employeeID]
	if !ok {
		return attendance.Response{}, attendance.ErrAttendanceNotFound
	}
	if rec.Approved {
		return attendance.Response{}, attendance.ErrAlreadyApproved
	}

	rec.Approved = true
	records[date][employeeID] = rec

	if err := s.attendanceRepo.Replace(ctx, records); err != nil {
		return attendance.Response{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	return toResponse(date, employeeID, rec), nil
}

// ListByDate implements attendance.Service.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) (attendance.ListResponse, error) {
	if _, err := dateutil.ParseDay(date); err != nil {
		return attendance.ListResponse{}, err
	}

	records, err := s.attendanceRepo.All(ctx)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	day := records[date]
	ids := make([]string, 0, len(day))
	for id := range day {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	resp := attendance.ListResponse{
		Date:    date,
		Records: make([]attendance.Response, 0, len(ids)),
	}
	for _, id := range ids {
		resp.Records = append(resp.Records, toResponse(date, id, day[id]))
	}
	return resp, nil
}

func toResponse(date string, employeeID string, rec attendance.Record) attendance.Response {
	return attendance.Response{
		Date:       date,
		EmployeeID: employeeID,
		Status:     rec.Status,
		Time:       rec.Time.Format(time.RFC3339),
		Approved:   rec.Approved,
		Username:   rec.Username,
		Name:       rec.Name,
	}
}
