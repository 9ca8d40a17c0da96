// Command worker runs the asynq task worker: product repricing after gold
// rate changes and invoice email delivery.
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/config"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/email/noop"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/email/ses"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/jobs"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/repository/postgres"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	lg := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	var sender port.EmailSender
	if cfg.Email.Provider == "ses" {
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize email sender: %w", err)
		}
	} else {
		sender = noop.NewNoopSender(lg)
	}

	notificationRepo := postgres.NewNotificationRepo(db)
	notificationSvc := service.NewNotificationService(service.NotificationDeps{
		Repo:      notificationRepo,
		Users:     postgres.NewUserRepo(db),
		Sales:     postgres.NewSaleRepo(db),
		Customers: postgres.NewCustomerRepo(db),
		Tenants:   postgres.NewTenantRepo(db),
		Sender:    sender,
		Log:       lg,
	}, service.NotificationConfig{
		MaxAttempts: cfg.Queue.MaxAttempts,
		BatchSize:   cfg.Queue.BatchSize,
	})
	inventorySvc := service.NewInventoryService(service.InventoryDeps{
		Tx:            postgres.NewTxManager(db),
		Categories:    postgres.NewCategoryRepo(db),
		Products:      postgres.NewProductRepo(db),
		Movements:     postgres.NewStockMovementRepo(db),
		Notifications: notificationSvc,
		Log:           lg,
	})

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		Queue:       cfg.Jobs.Queue,
		Concurrency: cfg.Jobs.Concurrency,
		Handlers:    jobs.NewHandlers(inventorySvc, notificationSvc, lg),
		Logger:      lg,
	})
	if err != nil {
		return fmt.Errorf("failed to build worker: %w", err)
	}
	return worker.Run(ctx)
}
