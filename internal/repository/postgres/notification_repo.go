package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

type notificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new PostgreSQL-backed NotificationRepository.
func NewNotificationRepo(db *sqlx.DB) port.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now().UTC()
	if n.Status == "" {
		n.Status = domain.NotificationPending
	}

	_, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO notifications (id, tenant_id, type, channel, recipient_id, recipient_email, subject,
			message, status, attempts, last_error, sent_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		n.ID, n.TenantID, n.Type, n.Channel, n.RecipientID, n.RecipientEmail, n.Subject,
		n.Message, n.Status, n.Attempts, n.LastError, n.SentAt, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("notificationRepo.Create: %w", err)
	}
	return nil
}

func (r *notificationRepo) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Notification, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM notifications WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("notificationRepo.List count: %w", err)
	}

	var out []domain.Notification
	err = r.db.SelectContext(ctx, &out,
		"SELECT * FROM notifications WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("notificationRepo.List: %w", err)
	}
	return out, total, nil
}

func (r *notificationRepo) Stats(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (*domain.NotificationStats, error) {
	var counts struct {
		TotalSent    int `db:"total_sent"`
		SentToday    int `db:"sent_today"`
		FailedCount  int `db:"failed_count"`
		PendingCount int `db:"pending_count"`
	}
	err := r.db.GetContext(ctx, &counts,
		`SELECT COUNT(*) FILTER (WHERE status = 'sent') AS total_sent,
			COUNT(*) FILTER (WHERE status = 'sent' AND sent_at >= $2) AS sent_today,
			COUNT(*) FILTER (WHERE status = 'failed') AS failed_count,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending_count
		 FROM notifications WHERE tenant_id = $1`, tenantID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("notificationRepo.Stats: %w", err)
	}

	var byType []struct {
		Type  string `db:"type"`
		Count int    `db:"count"`
	}
	err = r.db.SelectContext(ctx, &byType,
		"SELECT type, COUNT(*) AS count FROM notifications WHERE tenant_id = $1 GROUP BY type", tenantID)
	if err != nil {
		return nil, fmt.Errorf("notificationRepo.Stats by type: %w", err)
	}

	stats := &domain.NotificationStats{
		TotalSent:    counts.TotalSent,
		SentToday:    counts.SentToday,
		FailedCount:  counts.FailedCount,
		PendingCount: counts.PendingCount,
		ByType:       make(map[string]int, len(byType)),
	}
	for _, t := range byType {
		stats.ByType[t.Type] = t.Count
	}
	return stats, nil
}

// ClaimPending claims rows in a single statement so no two workers can take
// the same notification.
func (r *notificationRepo) ClaimPending(ctx context.Context, limit, maxAttempts int) ([]domain.Notification, error) {
	var out []domain.Notification
	err := r.db.SelectContext(ctx, &out,
		`UPDATE notifications SET attempts = attempts + 1
		 WHERE id IN (
			SELECT id FROM notifications
			WHERE status = $1 AND channel = $2 AND attempts < $3
			ORDER BY created_at
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		 )
		 RETURNING *`,
		domain.NotificationPending, domain.ChannelEmail, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("notificationRepo.ClaimPending: %w", err)
	}
	return out, nil
}

func (r *notificationRepo) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET status = $1, sent_at = $2, last_error = '' WHERE id = $3",
		domain.NotificationSent, at, id)
	if err != nil {
		return fmt.Errorf("notificationRepo.MarkSent: %w", err)
	}
	return nil
}

func (r *notificationRepo) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, final bool) error {
	status := domain.NotificationPending
	if final {
		status = domain.NotificationFailed
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET status = $1, last_error = $2 WHERE id = $3",
		status, lastErr, id)
	if err != nil {
		return fmt.Errorf("notificationRepo.MarkFailed: %w", err)
	}
	return nil
}
