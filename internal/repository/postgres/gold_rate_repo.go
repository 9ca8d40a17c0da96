package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

type goldRateRepo struct {
	db *sqlx.DB
}

// NewGoldRateRepo creates a new PostgreSQL-backed GoldRateRepository.
func NewGoldRateRepo(db *sqlx.DB) port.GoldRateRepository {
	return &goldRateRepo{db: db}
}

func (r *goldRateRepo) DeactivateDay(ctx context.Context, tenantID uuid.UUID, day time.Time) error {
	_, err := ext(ctx, r.db).ExecContext(ctx,
		"UPDATE gold_rates SET is_active = false WHERE tenant_id = $1 AND rate_date = $2::date AND is_active = true",
		tenantID, day.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("goldRateRepo.DeactivateDay: %w", err)
	}
	return nil
}

func (r *goldRateRepo) Create(ctx context.Context, rate *domain.GoldRate) error {
	rate.ID = uuid.New()
	rate.CreatedAt = time.Now().UTC()

	_, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO gold_rates (id, tenant_id, rate_date, purity, rate_per_gram, notes, is_active, created_by, created_at)
		 VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9)`,
		rate.ID, rate.TenantID, rate.RateDate.Format("2006-01-02"), rate.Purity, rate.RatePerGram,
		rate.Notes, rate.IsActive, rate.CreatedBy, rate.CreatedAt)
	if err != nil {
		return fmt.Errorf("goldRateRepo.Create: %w", err)
	}
	return nil
}

func (r *goldRateRepo) Current(ctx context.Context, tenantID uuid.UUID) ([]domain.GoldRate, error) {
	var rates []domain.GoldRate
	err := r.db.SelectContext(ctx, &rates,
		`SELECT * FROM gold_rates
		 WHERE tenant_id = $1 AND is_active = true
		   AND rate_date = (SELECT MAX(rate_date) FROM gold_rates WHERE tenant_id = $1 AND is_active = true)
		 ORDER BY purity DESC`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("goldRateRepo.Current: %w", err)
	}
	return rates, nil
}

func (r *goldRateRepo) History(ctx context.Context, tenantID uuid.UUID, purity string, since time.Time) ([]domain.GoldRate, error) {
	query := "SELECT * FROM gold_rates WHERE tenant_id = $1 AND is_active AND rate_date >= $2::date"
	args := []any{tenantID, since.Format("2006-01-02")}
	if purity != "" {
		query += " AND purity = $3"
		args = append(args, purity)
	}
	query += " ORDER BY purity, rate_date, created_at"

	var rates []domain.GoldRate
	if err := r.db.SelectContext(ctx, &rates, query, args...); err != nil {
		return nil, fmt.Errorf("goldRateRepo.History: %w", err)
	}
	return rates, nil
}

func (r *goldRateRepo) Latest(ctx context.Context, tenantID uuid.UUID, purity string) (*domain.GoldRate, error) {
	var rate domain.GoldRate
	err := r.db.GetContext(ctx, &rate,
		`SELECT * FROM gold_rates WHERE tenant_id = $1 AND purity = $2 AND is_active = true
		 ORDER BY rate_date DESC, created_at DESC LIMIT 1`, tenantID, purity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGoldRateNotFound
		}
		return nil, fmt.Errorf("goldRateRepo.Latest: %w", err)
	}
	return &rate, nil
}
