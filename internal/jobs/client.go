package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// Queue submits tasks to asynq. It implements port.TaskQueue.
type Queue struct {
	client *asynq.Client
	queue  string
}

// NewQueue constructs a Queue on top of an asynq client.
func NewQueue(client *asynq.Client, queue string) *Queue {
	return &Queue{client: client, queue: queueOrDefault(queue)}
}

// EnqueueReprice enqueues a repricing task and returns its id.
func (q *Queue) EnqueueReprice(ctx context.Context, p port.RepricePayload) (string, error) {
	task, err := NewRepriceTask(p, q.queue)
	if err != nil {
		return "", fmt.Errorf("jobs.EnqueueReprice: %w", err)
	}
	info, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		return "", fmt.Errorf("jobs.EnqueueReprice: %w", err)
	}
	return info.ID, nil
}

// EnqueueInvoiceEmail enqueues an invoice email task and returns its id.
func (q *Queue) EnqueueInvoiceEmail(ctx context.Context, p port.InvoiceEmailPayload) (string, error) {
	task, err := NewInvoiceEmailTask(p, q.queue)
	if err != nil {
		return "", fmt.Errorf("jobs.EnqueueInvoiceEmail: %w", err)
	}
	info, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		return "", fmt.Errorf("jobs.EnqueueInvoiceEmail: %w", err)
	}
	return info.ID, nil
}

// Close releases the underlying client.
func (q *Queue) Close() error {
	return q.client.Close()
}
