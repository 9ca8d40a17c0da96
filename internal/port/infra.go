package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReportCache memoises GST report results per tenant. Bumping a tenant's
// version invalidates every cached report of that tenant.
type ReportCache interface {
	FetchJSON(ctx context.Context, tenantID uuid.UUID, key string, dest any, loader func(ctx context.Context) (any, error)) error
	Bump(ctx context.Context, tenantID uuid.UUID) error
}

// Locker obtains short-lived distributed locks.
type Locker interface {
	// Obtain returns a release func, or domain.ErrLockHeld if another holder
	// owns the key.
	Obtain(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

// RepricePayload asks the worker to re-derive product prices from rates.
type RepricePayload struct {
	TenantID uuid.UUID          `json:"tenant_id"`
	Rates    map[string]float64 `json:"rates"`
}

// InvoiceEmailPayload asks the worker to deliver a queued invoice notification.
type InvoiceEmailPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
}

// TaskQueue enqueues background tasks.
type TaskQueue interface {
	EnqueueReprice(ctx context.Context, p RepricePayload) (taskID string, err error)
	EnqueueInvoiceEmail(ctx context.Context, p InvoiceEmailPayload) (taskID string, err error)
}

// Event is a realtime message pushed to a tenant's connected clients.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Broadcaster fans events out to a tenant's websocket clients.
type Broadcaster interface {
	Publish(tenantID uuid.UUID, ev Event)
}
