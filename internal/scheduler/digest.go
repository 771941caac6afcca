// Package scheduler runs the periodic jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"thecommons/internal/domain"
	"thecommons/internal/metrics"
)

// Scheduler owns the cron runner for the weekly digest.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDigestScheduler schedules svc.SendWeekly on spec (five-field cron syntax)
// evaluated in loc. A run that is still going when the next one fires is skipped.
func NewDigestScheduler(spec string, loc *time.Location, svc domain.DigestService, logger *slog.Logger, timeout time.Duration) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	job := digestJob(svc, logger, timeout, func() time.Time { return time.Now().In(loc) })
	if _, err := c.AddFunc(spec, job); err != nil {
		return nil, fmt.Errorf("schedule digest %q: %w", spec, err)
	}
	return &Scheduler{cron: c, logger: logger}, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.logger.Info("digest scheduler started", "next_run", s.Next())
	s.cron.Start()
}

// Stop stops scheduling and waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("digest job still running at shutdown")
	}
}

// Next returns the next scheduled run, or the zero time if nothing is scheduled.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now().In(s.cron.Location()))
}

// RunDigest performs one digest pass outside the schedule.
func RunDigest(ctx context.Context, svc domain.DigestService, logger *slog.Logger, now time.Time) error {
	report, err := svc.SendWeekly(ctx, now)
	if err != nil {
		logger.ErrorContext(ctx, "weekly digest run had failures", "err", err,
			"towns", report.Towns, "sent", report.Sent, "failed", report.Failed)
		return err
	}
	logger.InfoContext(ctx, "weekly digest run complete",
		"towns", report.Towns, "sent", report.Sent, "failed", report.Failed)
	return nil
}

func digestJob(svc domain.DigestService, logger *slog.Logger, timeout time.Duration, now func() time.Time) func() {
	return func() {
		// One pass covers every town and recipient.
		ctx, cancel := context.WithTimeout(context.Background(), 10*timeout)
		defer cancel()
		outcome := "ok"
		if err := RunDigest(ctx, svc, logger, now()); err != nil {
			outcome = "failed"
		}
		metrics.DigestRuns.WithLabelValues(outcome).Inc()
	}
}
