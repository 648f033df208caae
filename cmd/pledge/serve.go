package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/certificate"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/clock"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/config"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/directory"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/ledger"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/pipeline"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/server"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pledge HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cfg)
	ctx := context.Background()

	employeeStore, err := buildStore(ctx, cfg, cfg.EmployeesBucket)
	if err != nil {
		return fmt.Errorf("failed to create employee store: %w", err)
	}
	certStore, err := buildStore(ctx, cfg, cfg.CertBucket)
	if err != nil {
		return fmt.Errorf("failed to create certificate store: %w", err)
	}

	led, err := ledger.Connect(ctx, cfg.DatabaseURL, cfg.PledgesTable)
	if err != nil {
		return fmt.Errorf("failed to connect to ledger: %w", err)
	}
	defer led.Close()
	if err := led.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate ledger: %w", err)
	}

	cache := directory.NewCache(employeeStore, cfg.EmployeesFile, cfg.CacheTTL, clock.System{}, logger)
	renderer := buildRenderer(cfg, certStore)
	submitter := pipeline.NewSubmitter(cache, renderer, certStore, led, clock.System{}, logger)

	srv := server.New(cfg.ServerPort, submitter, led, logger)
	return srv.Start()
}

// buildStore selects the object storage backend for a bucket.
func buildStore(ctx context.Context, cfg *config.Config, bucket string) (storage.ObjectStore, error) {
	switch cfg.StorageBackend {
	case config.StorageFS:
		return storage.NewFSStore(cfg.FSRoot)
	default:
		return storage.NewS3Store(ctx, bucket)
	}
}

// buildRenderer selects the configured certificate rendering mode.
func buildRenderer(cfg *config.Config, certStore storage.ObjectStore) certificate.Renderer {
	if cfg.RenderMode == config.RenderComposite {
		return certificate.NewCompositeRenderer(certStore, certificate.CompositeConfig{
			TemplateKey: cfg.CertTemplateKey,
			FontPath:    cfg.CertFontPath,
			NameX:       cfg.CertNameX,
			NameY:       cfg.CertNameY,
		})
	}
	return certificate.NewVectorRenderer()
}

// newLogger configures logrus from the service config.
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
