package detector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shiftwise/workforce-backend-go/internal/config"
	"github.com/shiftwise/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftwise/workforce-backend-go/internal/domain/breaks"
	"github.com/shiftwise/workforce-backend-go/internal/domain/coaching"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/dateutil"
)

type DetectorServiceImpl struct {
	attendanceRepo attendance.Repository
	breakRepo      breaks.Repository
	scheduleRepo   schedule.Repository
	employeeRepo   employee.Repository
	coachingRepo   coaching.Repository

	cutoff            time.Time
	lookbackDays      int
	defaultStartMin   int
	defaultStartClock string
}

func NewDetectorService(
	attendanceRepo attendance.Repository,
	breakRepo breaks.Repository,
	scheduleRepo schedule.Repository,
	employeeRepo employee.Repository,
	coachingRepo coaching.Repository,
	cfg config.CoachingConfig,
) violation.DetectorService {
	cutoff, err := dateutil.ParseDay(cfg.CutoffDate)
	if err != nil {
		cutoff = time.Time{}
	}
	startMin, err := dateutil.MinuteOfDay(cfg.DefaultShiftStart)
	if err != nil {
		startMin = 9 * 60
	}

	return &DetectorServiceImpl{
		attendanceRepo:    attendanceRepo,
		breakRepo:         breakRepo,
		scheduleRepo:      scheduleRepo,
		employeeRepo:      employeeRepo,
		coachingRepo:      coachingRepo,
		cutoff:            cutoff,
		lookbackDays:      cfg.LookbackDays,
		defaultStartMin:   startMin,
		defaultStartClock: cfg.DefaultShiftStart,
	}
}

// window returns the detection range ending today, floored at the cutoff.
func (s *DetectorServiceImpl) window() Window {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return Window{
		Start: dateutil.LookbackStart(today, s.lookbackDays, s.cutoff),
		End:   today,
	}
}

// Detect implements violation.DetectorService.
func (s *DetectorServiceImpl) Detect(ctx context.Context, category violation.Category, employeeID string) (*violation.Violation, error) {
	ignored, err := s.coachingRepo.Ignored(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load suppression list: %w", err)
	}

	return s.detect(ctx, category, employeeID, s.window(), ignored.IsSuppressed)
}

func (s *DetectorServiceImpl) detect(
	ctx context.Context,
	category violation.Category,
	employeeID string,
	w Window,
	suppressed violation.SuppressionFunc,
) (*violation.Violation, error) {
	switch category {
	case violation.CategoryTardiness:
		att, err := s.attendanceRepo.All(ctx)
		if err != nil {
			return nil, err
		}
		schedules, err := s.scheduleRepo.All(ctx)
		if err != nil {
			return nil, err
		}
		return DetectTardiness(employeeID, att, schedules, w, s.defaultStartMin, s.defaultStartClock, suppressed), nil

	case violation.CategoryOverBreak:
		brk, err := s.breakRepo.All(ctx)
		if err != nil {
			return nil, err
		}
		return DetectOverBreak(employeeID, brk, w, suppressed), nil

	case violation.CategoryAbsence:
		att, err := s.attendanceRepo.All(ctx)
		if err != nil {
			return nil, err
		}
		schedules, err := s.scheduleRepo.All(ctx)
		if err != nil {
			return nil, err
		}
		return DetectAbsence(employeeID, att, schedules, w, suppressed), nil

	default:
		return nil, fmt.Errorf("%w: %q", violation.ErrUnknownCategory, category)
	}
}

// ScanAll implements violation.DetectorService. The detector itself is
// oblivious to the pending list; the scan cross-references it here so a
// violation already awaiting review is not proposed twice.
func (s *DetectorServiceImpl) ScanAll(ctx context.Context, detectedBy string) (violation.ScanSummary, error) {
	var summary violation.ScanSummary

	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load employees: %w", err)
	}
	att, err := s.attendanceRepo.All(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load attendance: %w", err)
	}
	brk, err := s.breakRepo.All(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load breaks: %w", err)
	}
	schedules, err := s.scheduleRepo.All(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load schedules: %w", err)
	}
	ignored, err := s.coachingRepo.Ignored(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load suppression list: %w", err)
	}
	pending, err := s.coachingRepo.Pending(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load pending coaching: %w", err)
	}

	alreadyPending := make(map[string]bool, len(pending))
	for _, p := range pending {
		alreadyPending[p.EmployeeID+"/"+string(p.Category)] = true
	}

	ids := make([]string, 0, len(employees))
	for id, emp := range employees {
		if emp.Role == employee.RoleAdmin {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	w := s.window()
	now := time.Now()
	created := 0

	for _, id := range ids {
		summary.EmployeesScanned++

		for _, category := range violation.Categories {
			var v *violation.Violation
			switch category {
			case violation.CategoryTardiness:
				v = DetectTardiness(id, att, schedules, w, s.defaultStartMin, s.defaultStartClock, ignored.IsSuppressed)
			case violation.CategoryOverBreak:
				v = DetectOverBreak(id, brk, w, ignored.IsSuppressed)
			case violation.CategoryAbsence:
				v = DetectAbsence(id, att, schedules, w, ignored.IsSuppressed)
			}
			if v == nil {
				continue
			}
			summary.ViolationsFound++

			if alreadyPending[id+"/"+string(category)] {
				continue
			}

			notice := coaching.BuildNotice(v, employees[id].Name)
			pending = append(pending, coaching.Pending{
				ID:            uuid.NewString(),
				EmployeeID:    id,
				EmployeeName:  employees[id].Name,
				Content:       notice.Content,
				Category:      category,
				IncidentDates: notice.IncidentDates,
				ViolationData: v,
				DetectedAt:    now.Format(time.RFC3339),
				DetectedBy:    detectedBy,
			})
			alreadyPending[id+"/"+string(category)] = true
			created++
		}
	}

	if created > 0 {
		if err := s.coachingRepo.ReplacePending(ctx, pending); err != nil {
			return summary, fmt.Errorf("failed to save pending coaching: %w", err)
		}
	}
	summary.ProposalsCreated = created

	return summary, nil
}
