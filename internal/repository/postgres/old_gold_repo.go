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

type oldGoldRepo struct {
	db *sqlx.DB
}

// NewOldGoldRepo creates a new PostgreSQL-backed OldGoldRepository.
func NewOldGoldRepo(db *sqlx.DB) port.OldGoldRepository {
	return &oldGoldRepo{db: db}
}

func (r *oldGoldRepo) Create(ctx context.Context, e *domain.OldGoldExchange) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO old_gold_exchanges (id, tenant_id, customer_id, customer_name, purity, weight,
			rate_per_gram, total_value, notes, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.TenantID, e.CustomerID, e.CustomerName, e.Purity, e.Weight,
		e.RatePerGram, e.TotalValue, e.Notes, e.CreatedBy, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("oldGoldRepo.Create: %w", err)
	}
	return nil
}

func (r *oldGoldRepo) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.OldGoldExchange, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM old_gold_exchanges WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("oldGoldRepo.List count: %w", err)
	}

	var items []domain.OldGoldExchange
	err = r.db.SelectContext(ctx, &items,
		"SELECT * FROM old_gold_exchanges WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("oldGoldRepo.List: %w", err)
	}
	return items, total, nil
}
