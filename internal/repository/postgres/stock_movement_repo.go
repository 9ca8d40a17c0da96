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

type stockMovementRepo struct {
	db *sqlx.DB
}

// NewStockMovementRepo creates a new PostgreSQL-backed StockMovementRepository.
func NewStockMovementRepo(db *sqlx.DB) port.StockMovementRepository {
	return &stockMovementRepo{db: db}
}

func (r *stockMovementRepo) Create(ctx context.Context, m *domain.StockMovement) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now().UTC()

	_, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO stock_movements (id, tenant_id, product_id, change, quantity_after, reason, reference, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.TenantID, m.ProductID, m.Change, m.QuantityAfter, m.Reason, m.Reference, m.CreatedBy, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("stockMovementRepo.Create: %w", err)
	}
	return nil
}

func (r *stockMovementRepo) ListByProduct(ctx context.Context, tenantID, productID uuid.UUID, offset, limit int) ([]domain.StockMovement, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM stock_movements WHERE tenant_id = $1 AND product_id = $2", tenantID, productID)
	if err != nil {
		return nil, 0, fmt.Errorf("stockMovementRepo.ListByProduct count: %w", err)
	}

	var moves []domain.StockMovement
	err = r.db.SelectContext(ctx, &moves,
		`SELECT * FROM stock_movements WHERE tenant_id = $1 AND product_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		tenantID, productID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("stockMovementRepo.ListByProduct: %w", err)
	}
	return moves, total, nil
}
