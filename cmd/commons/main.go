// Command commons serves The Commons API: towns, events, bulletin boards and
// business directories, plus the weekly email digest.
//
// @title The Commons API
// @version 1.0
// @description Community events, bulletin boards and business directories for small towns.
// @BasePath /
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"thecommons/config"
	_ "thecommons/docs"
	"thecommons/internal/adapters/email"
	"thecommons/internal/adapters/tags"
	httpdelivery "thecommons/internal/delivery/http"
	"thecommons/internal/delivery/http/controllers"
	"thecommons/internal/metrics"
	"thecommons/internal/repository/postgres"
	"thecommons/internal/scheduler"
	"thecommons/internal/services"
)

func main() {
	digestOnce := flag.Bool("digest-once", false, "Send the weekly digest once and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger, *digestOnce); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, digestOnce bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBDriver, cfg.DBUrl, cfg.RequestTimeout)
	if err != nil {
		return err
	}
	defer db.Close()

	catalog, err := tags.Load(cfg.TagsFile)
	if err != nil {
		return err
	}

	// Repositories
	regionRepo := postgres.NewRegionRepository(db)
	townRepo := postgres.NewTownRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	bulletinRepo := postgres.NewBulletinRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)
	subscriberRepo := postgres.NewSubscriberRepository(db)

	// Services
	timeout := cfg.RequestTimeout
	townService := services.NewTownService(regionRepo, townRepo, timeout)
	eventService := services.NewEventService(regionRepo, townRepo, eventRepo, bulletinRepo, businessRepo, logger, timeout)
	bulletinService := services.NewBulletinService(townRepo, bulletinRepo, timeout)
	businessService := services.NewBusinessService(townRepo, businessRepo, timeout)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	digestService := services.NewDigestService(townRepo, eventRepo, subscriberRepo, emailService, catalog, logger, timeout)

	if digestOnce {
		return scheduler.RunDigest(ctx, digestService, logger, time.Now().In(cfg.Location))
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(reg)

	clock := controllers.LocalClock(cfg.Location)
	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Towns:      controllers.NewTownController(logger, townService, eventService, clock),
		Events:     controllers.NewEventController(logger, eventService, clock),
		Bulletin:   controllers.NewBulletinController(logger, bulletinService),
		Businesses: controllers.NewBusinessController(logger, businessService),
		Tags:       controllers.NewTagController(catalog),
		Health:     controllers.NewHealthController(logger, db),
	}, metrics.Handler(reg))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.NewHandler(mux, logger, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var digest *scheduler.Scheduler
	if cfg.DigestCron != "" {
		digest, err = scheduler.NewDigestScheduler(cfg.DigestCron, cfg.Location, digestService, logger, timeout)
		if err != nil {
			return err
		}
		digest.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "driver", cfg.DBDriver, "timezone", cfg.Location.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if digest != nil {
		digest.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
