package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// NotificationRepository persists outbound notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Notification, int, error)
	Stats(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (*domain.NotificationStats, error)
	// ClaimPending locks up to limit pending email notifications with fewer
	// than maxAttempts attempts, increments their attempt count and returns
	// them. Rows locked by another worker are skipped.
	ClaimPending(ctx context.Context, limit, maxAttempts int) ([]domain.Notification, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	// MarkFailed records the error; final moves the row to failed, otherwise
	// it stays pending for another attempt.
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, final bool) error
}
