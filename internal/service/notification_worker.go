package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// NotificationWorkerConfig holds settings for the email delivery worker.
type NotificationWorkerConfig struct {
	PollInterval time.Duration
	MaxAttempts  int
	Concurrency  int
}

// NotificationWorker polls for pending email notifications and delivers them.
type NotificationWorker struct {
	repo     port.NotificationRepository
	notifier NotificationService
	cfg      NotificationWorkerConfig
	log      logrus.FieldLogger
	wg       sync.WaitGroup
}

// NewNotificationWorker creates a new NotificationWorker.
func NewNotificationWorker(repo port.NotificationRepository, notifier NotificationService, cfg NotificationWorkerConfig, log logrus.FieldLogger) *NotificationWorker {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	return &NotificationWorker{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		log:      log.WithField("worker", "notifications"),
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight deliveries have finished.
func (w *NotificationWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	w.log.WithFields(logrus.Fields{
		"poll":         w.cfg.PollInterval,
		"concurrency":  w.cfg.Concurrency,
		"max_attempts": w.cfg.MaxAttempts,
	}).Info("started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info("shutting down, waiting for in-flight deliveries")
			w.wg.Wait()
			w.log.Info("shutdown complete")
			return
		case <-ticker.C:
			w.poll(ctx, sem)
		}
	}
}

func (w *NotificationWorker) poll(ctx context.Context, sem chan struct{}) {
	available := w.cfg.Concurrency - len(sem)
	if available <= 0 {
		return
	}

	batch, err := w.repo.ClaimPending(ctx, available, w.cfg.MaxAttempts)
	if err != nil {
		if ctx.Err() == nil {
			w.log.WithError(err).Error("ClaimPending failed")
		}
		return
	}

	for i := range batch {
		n := batch[i]
		sem <- struct{}{}
		w.wg.Add(1)
		go func(n domain.Notification) {
			defer w.wg.Done()
			defer func() { <-sem }()

			// Deliveries finish even while the poll context is shutting down.
			sendCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := w.notifier.Deliver(sendCtx, &n); err != nil {
				w.log.WithFields(logrus.Fields{
					"notification_id": n.ID,
					"attempt":         n.Attempts,
				}).WithError(err).Debug("delivery attempt failed")
			}
		}(n)
	}
}
