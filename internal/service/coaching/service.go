package coaching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shiftwise/workforce-backend-go/internal/domain/coaching"
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
)

type CoachingServiceImpl struct {
	coachingRepo coaching.Repository
}

func NewCoachingService(coachingRepo coaching.Repository) coaching.Service {
	return &CoachingServiceImpl{coachingRepo: coachingRepo}
}

// ListLogs implements coaching.Service.
func (s *CoachingServiceImpl) ListLogs(ctx context.Context, employeeID string) (coaching.ListLogsResponse, error) {
	logs, err := s.coachingRepo.Logs(ctx)
	if err != nil {
		return coaching.ListLogsResponse{}, fmt.Errorf("failed to load coaching logs: %w", err)
	}

	if employeeID != "" {
		filtered := make([]coaching.Log, 0, len(logs))
		for _, l := range logs {
			if l.EmployeeID == employeeID {
				filtered = append(filtered, l)
			}
		}
		logs = filtered
	}

	return coaching.ListLogsResponse{
		TotalCount: len(logs),
		Logs:       logs,
	}, nil
}

// Acknowledge implements coaching.Service. The flag only flips one way; a
// second acknowledgement is rejected rather than silently overwritten.
func (s *CoachingServiceImpl) Acknowledge(ctx context.Context, logID string, req coaching.AcknowledgeRequest) (coaching.Log, error) {
	if strings.TrimSpace(req.Signature) == "" {
		return coaching.Log{}, coaching.ErrSignatureRequired
	}

	logs, err := s.coachingRepo.Logs(ctx)
	if err != nil {
		return coaching.Log{}, fmt.Errorf("failed to load coaching logs: %w", err)
	}

	for i, l := range logs {
		if l.ID != logID {
			continue
		}
		if l.Acknowledged {
			return coaching.Log{}, coaching.ErrAlreadyAcknowledged
		}

		signature := req.Signature
		logs[i].Acknowledged = true
		logs[i].Signature = &signature
		logs[i].Comment = req.Comment

		if err := s.coachingRepo.ReplaceLogs(ctx, logs); err != nil {
			return coaching.Log{}, fmt.Errorf("failed to save coaching logs: %w", err)
		}
		return logs[i], nil
	}

	return coaching.Log{}, coaching.ErrLogNotFound
}

// ListPending implements coaching.Service.
func (s *CoachingServiceImpl) ListPending(ctx context.Context) (coaching.ListPendingResponse, error) {
	pending, err := s.coachingRepo.Pending(ctx)
	if err != nil {
		return coaching.ListPendingResponse{}, fmt.Errorf("failed to load pending coaching: %w", err)
	}

	return coaching.ListPendingResponse{
		TotalCount: len(pending),
		Pending:    pending,
	}, nil
}

// Approve implements coaching.Service. The incident dates and violation data
// ride along into the permanent log so deletion can suppress them later.
func (s *CoachingServiceImpl) Approve(ctx context.Context, pendingID string, issuedBy string) (coaching.Log, error) {
	pending, err := s.coachingRepo.Pending(ctx)
	if err != nil {
		return coaching.Log{}, fmt.Errorf("failed to load pending coaching: %w", err)
	}

	idx := -1
	for i, p := range pending {
		if p.ID == pendingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return coaching.Log{}, coaching.ErrPendingNotFound
	}
	item := pending[idx]

	logs, err := s.coachingRepo.Logs(ctx)
	if err != nil {
		return coaching.Log{}, fmt.Errorf("failed to load coaching logs: %w", err)
	}

	log := coaching.Log{
		ID:            uuid.NewString(),
		EmployeeID:    item.EmployeeID,
		Content:       item.Content,
		Category:      item.Category,
		Date:          time.Now().Format("2006-01-02"),
		Acknowledged:  false,
		Signature:     nil,
		IssuedBy:      issuedBy,
		IncidentDates: item.IncidentDates,
		ViolationData: item.ViolationData,
	}
	logs = append(logs, log)

	if err := s.coachingRepo.ReplaceLogs(ctx, logs); err != nil {
		return coaching.Log{}, fmt.Errorf("failed to save coaching logs: %w", err)
	}

	pending = append(pending[:idx], pending[idx+1:]...)
	if err := s.coachingRepo.ReplacePending(ctx, pending); err != nil {
		return coaching.Log{}, fmt.Errorf("failed to save pending coaching: %w", err)
	}

	return log, nil
}

// Reject implements coaching.Service. Nothing is recorded, so the same
// incidents surface again on the next scan.
func (s *CoachingServiceImpl) Reject(ctx context.Context, pendingID string) error {
	pending, err := s.coachingRepo.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pending coaching: %w", err)
	}

	for i, p := range pending {
		if p.ID != pendingID {
			continue
		}
		pending = append(pending[:i], pending[i+1:]...)
		if err := s.coachingRepo.ReplacePending(ctx, pending); err != nil {
			return fmt.Errorf("failed to save pending coaching: %w", err)
		}
		return nil
	}

	return coaching.ErrPendingNotFound
}

// DeleteForever implements coaching.Service. The log's incident dates are
// merged into the ignored-incidents table before the log is removed, so the
// detector never re-proposes them.
func (s *CoachingServiceImpl) DeleteForever(ctx context.Context, logID string, deletedBy string) error {
	logs, err := s.coachingRepo.Logs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load coaching logs: %w", err)
	}

	idx := -1
	for i, l := range logs {
		if l.ID == logID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return coaching.ErrLogNotFound
	}
	log := logs[idx]

	dates := log.IncidentDates
	if len(dates) == 0 {
		dates = coaching.ExtractDates(log.Content)
	}

	if len(dates) > 0 {
		ignored, err := s.coachingRepo.Ignored(ctx)
		if err != nil {
			return fmt.Errorf("failed to load suppression list: %w", err)
		}
		if ignored == nil {
			ignored = make(coaching.IgnoredCollection)
		}
		if ignored[log.EmployeeID] == nil {
			ignored[log.EmployeeID] = make(map[violation.Category]coaching.IgnoredRecord)
		}

		record := ignored[log.EmployeeID][log.Category]
		record.Dates = mergeDates(record.Dates, dates)
		record.DeletedAt = time.Now().Format(time.RFC3339)
		record.DeletedBy = deletedBy
		ignored[log.EmployeeID][log.Category] = record

		if err := s.coachingRepo.ReplaceIgnored(ctx, ignored); err != nil {
			return fmt.Errorf("failed to save suppression list: %w", err)
		}
	}

	logs = append(logs[:idx], logs[idx+1:]...)
	if err := s.coachingRepo.ReplaceLogs(ctx, logs); err != nil {
		return fmt.Errorf("failed to save coaching logs: %w", err)
	}

	return nil
}

// ClearIgnored implements coaching.Service.
func (s *CoachingServiceImpl) ClearIgnored(ctx context.Context) error {
	if err := s.coachingRepo.ReplaceIgnored(ctx, coaching.IgnoredCollection{}); err != nil {
		return fmt.Errorf("failed to save suppression list: %w", err)
	}
	return nil
}

// mergeDates unions two date lists, preserving the existing order and
// appending only unseen dates.
func mergeDates(existing, added []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		seen[d] = struct{}{}
	}
	merged := existing
	for _, d := range added {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		merged = append(merged, d)
	}
	return merged
}
