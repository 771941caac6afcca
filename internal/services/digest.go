package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"thecommons/internal/calendar"
	"thecommons/internal/domain"
	"thecommons/internal/metrics"
	"thecommons/internal/textutil"
)

// digestSummaryLength bounds the per-event summary in digest emails.
const digestSummaryLength = 160

type digestService struct {
	townRepo       domain.TownRepository
	eventRepo      domain.EventRepository
	subscriberRepo domain.SubscriberRepository
	emailService   domain.EmailService
	tags           domain.TagCatalog
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewDigestService returns a DigestService that mails each active town's
// this-week events to its weekly subscribers.
func NewDigestService(townRepo domain.TownRepository,
	eventRepo domain.EventRepository,
	subscriberRepo domain.SubscriberRepository,
	emailService domain.EmailService,
	tags domain.TagCatalog,
	logger *slog.Logger,
	timeout time.Duration,
) domain.DigestService {
	return &digestService{
		townRepo:       townRepo,
		eventRepo:      eventRepo,
		subscriberRepo: subscriberRepo,
		emailService:   emailService,
		tags:           tags,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// SendWeekly runs one digest pass. A failure for one town or recipient does not
// stop the others; town-level failures are joined into the returned error.
func (s *digestService) SendWeekly(ctx context.Context, now time.Time) (domain.DigestReport, error) {
	var report domain.DigestReport

	listCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	towns, err := s.townRepo.ListByStatus(listCtx, domain.TownActive)
	cancel()
	if err != nil {
		return report, fmt.Errorf("list active towns: %w", err)
	}

	week := calendar.WeekOf(now)
	weekLabel := fmt.Sprintf("%s – %s", week.Start.Format("Jan 2"), week.LastDay().Format("Jan 2"))

	var errs []error
	for _, town := range towns {
		sent, failed, err := s.sendTown(ctx, town, now, weekLabel)
		report.Sent += sent
		report.Failed += failed
		if err != nil {
			errs = append(errs, fmt.Errorf("town %s: %w", town.Slug, err))
			continue
		}
		if sent+failed > 0 {
			report.Towns++
		}
	}
	s.logger.InfoContext(ctx, "weekly digest finished",
		"towns", report.Towns, "sent", report.Sent, "failed", report.Failed)
	return report, errors.Join(errs...)
}

func (s *digestService) sendTown(ctx context.Context, town *domain.Town, now time.Time, weekLabel string) (sent, failed int, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	subs, err := s.subscriberRepo.ListByTownID(ctx, town.ID, domain.EmailWeekly)
	if err != nil {
		return 0, 0, fmt.Errorf("list subscribers: %w", err)
	}
	if len(subs) == 0 {
		return 0, 0, nil
	}
	events, err := s.eventRepo.ListByTownID(ctx, town.ID)
	if err != nil {
		return 0, 0, fmt.Errorf("list events: %w", err)
	}
	thisWeek := calendar.Bucketize(now, calendar.SortByStart(validEvents(ctx, s.logger, events))).ThisWeek
	if len(thisWeek) == 0 {
		s.logger.InfoContext(ctx, "no events this week, skipping digest", "town", town.Slug)
		return 0, 0, nil
	}

	lines := make([]domain.DigestEvent, 0, len(thisWeek))
	for _, e := range thisWeek {
		labels := make([]string, 0, len(e.Tags))
		for _, t := range e.Tags {
			labels = append(labels, s.tags.Label(t))
		}
		lines = append(lines, domain.DigestEvent{
			Title:    e.Title,
			When:     e.StartTime.In(now.Location()).Format("Mon Jan 2, 3:04 PM"),
			Location: e.Location,
			Summary:  textutil.Truncate(e.Summary(), digestSummaryLength),
			Tags:     labels,
			URL:      e.CTAURL,
		})
	}

	for _, sub := range subs {
		data := &domain.WeeklyDigestEmailData{
			Email:    sub.Email,
			Name:     sub.Name,
			TownName: town.Name,
			Week:     weekLabel,
			Events:   lines,
		}
		if err := s.emailService.SendWeeklyDigest(ctx, data); err != nil {
			failed++
			metrics.DigestEmails.WithLabelValues("failed").Inc()
			s.logger.ErrorContext(ctx, "weekly digest failed", "town", town.Slug, "to", sub.Email, "err", err)
			continue
		}
		sent++
		metrics.DigestEmails.WithLabelValues("sent").Inc()
	}
	return sent, failed, nil
}
