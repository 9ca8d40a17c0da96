package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// GoldRateRepository persists daily gold rates.
type GoldRateRepository interface {
	// DeactivateDay marks every active rate of the given day inactive.
	DeactivateDay(ctx context.Context, tenantID uuid.UUID, day time.Time) error
	Create(ctx context.Context, r *domain.GoldRate) error
	// Current returns the active rates of the most recent day that has any.
	Current(ctx context.Context, tenantID uuid.UUID) ([]domain.GoldRate, error)
	History(ctx context.Context, tenantID uuid.UUID, purity string, since time.Time) ([]domain.GoldRate, error)
	Latest(ctx context.Context, tenantID uuid.UUID, purity string) (*domain.GoldRate, error)
}

// KaratPricingRepository persists per-karat pricing terms.
type KaratPricingRepository interface {
	Upsert(ctx context.Context, kp *domain.KaratPricing) error
	Get(ctx context.Context, tenantID uuid.UUID, karat string) (*domain.KaratPricing, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.KaratPricing, error)
}
