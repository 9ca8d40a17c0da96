package jobs

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

// WorkerConfig collects what the asynq worker needs.
type WorkerConfig struct {
	RedisOpts   asynq.RedisClientOpt
	Queue       string
	Concurrency int
	Handlers    *Handlers
	Logger      logrus.FieldLogger
}

// Worker wraps an asynq server and its mux.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	log    logrus.FieldLogger
}

// NewWorker constructs a Worker.
func NewWorker(cfg WorkerConfig) (*Worker, error) {
	if cfg.Handlers == nil {
		return nil, errors.New("jobs: handlers are required")
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	srv := asynq.NewServer(cfg.RedisOpts, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{queueOrDefault(cfg.Queue): 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, t *asynq.Task, err error) {
			log.WithFields(logrus.Fields{"worker": "asynq", "task": t.Type()}).WithError(err).Error("task failed")
		}),
	})
	mux := asynq.NewServeMux()
	cfg.Handlers.Register(mux)
	return &Worker{server: srv, mux: mux, log: log}, nil
}

// Run processes tasks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	if w == nil {
		return errors.New("jobs: worker not configured")
	}
	if err := w.server.Start(w.mux); err != nil {
		return err
	}
	w.log.WithField("worker", "asynq").Info("task worker started")
	<-ctx.Done()
	w.server.Shutdown()
	return nil
}
