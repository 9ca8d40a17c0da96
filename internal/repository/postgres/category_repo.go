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

type categoryRepo struct {
	db *sqlx.DB
}

// NewCategoryRepo creates a new PostgreSQL-backed CategoryRepository.
func NewCategoryRepo(db *sqlx.DB) port.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *domain.Category) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, tenant_id, name, description, hsn_code, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.TenantID, c.Name, c.Description, c.HSNCode, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("categoryRepo.Create: %w", err)
	}
	return nil
}

func (r *categoryRepo) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Category, error) {
	var cats []domain.Category
	err := r.db.SelectContext(ctx, &cats,
		"SELECT * FROM categories WHERE tenant_id = $1 ORDER BY name", tenantID)
	if err != nil {
		return nil, fmt.Errorf("categoryRepo.List: %w", err)
	}
	return cats, nil
}
