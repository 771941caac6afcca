package services

import (
	"context"
	"fmt"
	"log/slog"

	"thecommons/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendWeeklyDigest sends the weekly digest using the "weekly_digest" template and the given data.
func (s *emailService) SendWeeklyDigest(ctx context.Context, data *domain.WeeklyDigestEmailData) error {
	if data == nil {
		return fmt.Errorf("weekly digest data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("weekly_digest", data)
	if err != nil {
		return fmt.Errorf("failed to render weekly_digest template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send weekly digest: %w", err)
	}
	s.logger.DebugContext(ctx, "weekly digest sent", "to", data.Email, "town", data.TownName)
	return nil
}
