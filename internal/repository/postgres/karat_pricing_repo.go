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

type karatPricingRepo struct {
	db *sqlx.DB
}

// NewKaratPricingRepo creates a new PostgreSQL-backed KaratPricingRepository.
func NewKaratPricingRepo(db *sqlx.DB) port.KaratPricingRepository {
	return &karatPricingRepo{db: db}
}

// Upsert writes the row for (tenant, karat); the last writer wins. The stored
// id and created_at are read back into kp.
func (r *karatPricingRepo) Upsert(ctx context.Context, kp *domain.KaratPricing) error {
	now := time.Now().UTC()
	kp.UpdatedAt = now
	if kp.EffectiveDate.IsZero() {
		kp.EffectiveDate = now
	}

	var stored struct {
		ID        uuid.UUID `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &stored,
		`INSERT INTO karat_pricing (id, tenant_id, karat, purity_percentage, base_rate_per_gram,
			making_charge_per_gram, making_charge_percentage, wastage_percentage, gst_percentage,
			effective_date, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::date, $11, $12, $12)
		 ON CONFLICT (tenant_id, karat) DO UPDATE SET
			purity_percentage = EXCLUDED.purity_percentage,
			base_rate_per_gram = EXCLUDED.base_rate_per_gram,
			making_charge_per_gram = EXCLUDED.making_charge_per_gram,
			making_charge_percentage = EXCLUDED.making_charge_percentage,
			wastage_percentage = EXCLUDED.wastage_percentage,
			gst_percentage = EXCLUDED.gst_percentage,
			effective_date = EXCLUDED.effective_date,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
		 RETURNING id, created_at`,
		uuid.New(), kp.TenantID, kp.Karat, kp.PurityPercentage, kp.BaseRatePerGram,
		kp.MakingChargePerGram, kp.MakingChargePercentage, kp.WastagePercentage, kp.GSTPercentage,
		kp.EffectiveDate.Format("2006-01-02"), kp.Notes, now)
	if err != nil {
		return fmt.Errorf("karatPricingRepo.Upsert: %w", err)
	}
	kp.ID = stored.ID
	kp.CreatedAt = stored.CreatedAt
	return nil
}

func (r *karatPricingRepo) Get(ctx context.Context, tenantID uuid.UUID, karat string) (*domain.KaratPricing, error) {
	var kp domain.KaratPricing
	err := r.db.GetContext(ctx, &kp,
		"SELECT * FROM karat_pricing WHERE tenant_id = $1 AND karat = $2", tenantID, karat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("karatPricingRepo.Get: %w", err)
	}
	return &kp, nil
}

func (r *karatPricingRepo) List(ctx context.Context, tenantID uuid.UUID) ([]domain.KaratPricing, error) {
	var out []domain.KaratPricing
	err := r.db.SelectContext(ctx, &out,
		"SELECT * FROM karat_pricing WHERE tenant_id = $1 ORDER BY purity_percentage DESC", tenantID)
	if err != nil {
		return nil, fmt.Errorf("karatPricingRepo.List: %w", err)
	}
	return out, nil
}
