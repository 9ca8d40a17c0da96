// Package jobs runs background work on asynq: repricing products after a gold
// rate change and delivering queued invoice emails.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

const (
	// QueueDefault is the queue used when none is configured.
	QueueDefault = "default"
	// TaskReprice re-derives product prices from a set of gold rates.
	TaskReprice = "pricing:reprice"
	// TaskInvoiceEmail delivers a queued invoice notification.
	TaskInvoiceEmail = "notification:invoice_email"
)

// NewRepriceTask constructs a repricing task.
func NewRepriceTask(p port.RepricePayload, queue string) (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReprice, body, asynq.Queue(queueOrDefault(queue)), asynq.MaxRetry(3)), nil
}

// NewInvoiceEmailTask constructs an invoice email task.
func NewInvoiceEmailTask(p port.InvoiceEmailPayload, queue string) (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInvoiceEmail, body, asynq.Queue(queueOrDefault(queue)), asynq.MaxRetry(5)), nil
}

func queueOrDefault(q string) string {
	if q == "" {
		return QueueDefault
	}
	return q
}
