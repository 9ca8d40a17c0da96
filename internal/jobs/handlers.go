package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// RepriceResult is what a repricing run reports back.
type RepriceResult struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// Repricer applies gold rates to a tenant's products.
type Repricer interface {
	ApplyRates(ctx context.Context, tenantID uuid.UUID, rates map[string]float64) (updated, failed int, err error)
}

// Deliverer sends claimed pending email notifications.
type Deliverer interface {
	DeliverPending(ctx context.Context) (sent int, err error)
}

// Handlers processes the tasks defined in this package.
type Handlers struct {
	repricer  Repricer
	deliverer Deliverer
	log       logrus.FieldLogger
}

// NewHandlers wires task handlers to their services.
func NewHandlers(repricer Repricer, deliverer Deliverer, log logrus.FieldLogger) *Handlers {
	return &Handlers{repricer: repricer, deliverer: deliverer, log: log.WithField("worker", "asynq")}
}

// HandleReprice processes TaskReprice tasks.
func (h *Handlers) HandleReprice(ctx context.Context, t *asynq.Task) error {
	var p port.RepricePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil || p.TenantID == uuid.Nil || len(p.Rates) == 0 {
		h.log.WithField("task", TaskReprice).Warn("dropping malformed payload")
		return fmt.Errorf("jobs.HandleReprice: bad payload: %w", asynq.SkipRetry)
	}

	updated, failed, err := h.repricer.ApplyRates(ctx, p.TenantID, p.Rates)
	if err != nil {
		return fmt.Errorf("jobs.HandleReprice: %w", err)
	}
	h.log.WithFields(logrus.Fields{
		"tenant_id": p.TenantID,
		"updated":   updated,
		"failed":    failed,
	}).Info("products repriced")

	if w := t.ResultWriter(); w != nil {
		body, _ := json.Marshal(RepriceResult{Updated: updated, Failed: failed})
		if _, err := w.Write(body); err != nil {
			h.log.WithError(err).Warn("failed to write reprice result")
		}
	}
	return nil
}

// HandleInvoiceEmail processes TaskInvoiceEmail tasks. Delivery goes through
// the same claim step as the poll worker, so a notification picked up by
// either path is sent once.
func (h *Handlers) HandleInvoiceEmail(ctx context.Context, t *asynq.Task) error {
	var p port.InvoiceEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil || p.NotificationID == uuid.Nil {
		h.log.WithField("task", TaskInvoiceEmail).Warn("dropping malformed payload")
		return fmt.Errorf("jobs.HandleInvoiceEmail: bad payload: %w", asynq.SkipRetry)
	}

	sent, err := h.deliverer.DeliverPending(ctx)
	if err != nil {
		return fmt.Errorf("jobs.HandleInvoiceEmail: %w", err)
	}
	h.log.WithFields(logrus.Fields{
		"notification_id": p.NotificationID,
		"sent":            sent,
	}).Debug("invoice email batch delivered")
	return nil
}

// Register attaches every handler to mux.
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskReprice, h.HandleReprice)
	mux.HandleFunc(TaskInvoiceEmail, h.HandleInvoiceEmail)
}
