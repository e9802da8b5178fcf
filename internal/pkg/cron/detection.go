package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/workforce-backend-go/internal/domain/settings"
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
)

// DetectionJobs runs the periodic auto-coaching sweep. The sweep is gated on
// the stored toggle so administrators can pause detection without redeploying.
type DetectionJobs struct {
	detector     violation.DetectorService
	settingsRepo settings.Repository
	interval     time.Duration
}

func NewDetectionJobs(detector violation.DetectorService, settingsRepo settings.Repository, interval time.Duration) *DetectionJobs {
	return &DetectionJobs{
		detector:     detector,
		settingsRepo: settingsRepo,
		interval:     interval,
	}
}

func (j *DetectionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_coaching_scan", j.interval, j.RunScan)
}

func (j *DetectionJobs) RunScan(ctx context.Context) error {
	enabled, err := j.settingsRepo.AutoCoachingEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to read auto-coaching setting: %w", err)
	}
	if !enabled {
		return nil
	}

	summary, err := j.detector.ScanAll(ctx, "auto-coaching")
	if err != nil {
		return fmt.Errorf("failed to run detection sweep: %w", err)
	}

	if summary.ProposalsCreated > 0 {
		slog.Info("Cron: detection sweep created proposals",
			"employees_scanned", summary.EmployeesScanned,
			"violations_found", summary.ViolationsFound,
			"proposals_created", summary.ProposalsCreated,
		)
	}
	return nil
}
