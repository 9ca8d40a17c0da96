package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/pricing"
)

// UpsertKaratPricingInput is the DTO for creating or replacing a karat's terms.
type UpsertKaratPricingInput struct {
	Karat                  string   `json:"karat" binding:"required,karat"`
	BaseRatePerGram        float64  `json:"base_rate_per_gram" binding:"required,gt=0"`
	MakingChargePerGram    float64  `json:"making_charge_per_gram" binding:"gte=0"`
	MakingChargePercentage *float64 `json:"making_charge_percentage" binding:"omitempty,gte=0,lte=100"`
	WastagePercentage      float64  `json:"wastage_percentage" binding:"gte=0,lte=100"`
	GSTPercentage          *float64 `json:"gst_percentage" binding:"omitempty,gte=0,lte=28"`
	Notes                  string   `json:"notes"`
}

// PatchKaratPricingInput updates some terms of an existing karat.
type PatchKaratPricingInput struct {
	BaseRatePerGram        *float64 `json:"base_rate_per_gram" binding:"omitempty,gt=0"`
	MakingChargePerGram    *float64 `json:"making_charge_per_gram" binding:"omitempty,gte=0"`
	MakingChargePercentage *float64 `json:"making_charge_percentage" binding:"omitempty,gte=0,lte=100"`
	WastagePercentage      *float64 `json:"wastage_percentage" binding:"omitempty,gte=0,lte=100"`
	GSTPercentage          *float64 `json:"gst_percentage" binding:"omitempty,gte=0,lte=28"`
	Notes                  *string  `json:"notes"`
}

// KaratPricingService manages per-karat pricing terms and prices items.
type KaratPricingService interface {
	Upsert(ctx context.Context, tenantID uuid.UUID, input UpsertKaratPricingInput) (*domain.KaratPricing, error)
	Patch(ctx context.Context, tenantID uuid.UUID, karat string, input PatchKaratPricingInput) (*domain.KaratPricing, error)
	Get(ctx context.Context, tenantID uuid.UUID, karat string) (*domain.KaratPricing, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.KaratPricing, error)
	Calculate(ctx context.Context, tenantID uuid.UUID, input pricing.Input) (*pricing.Breakdown, error)
	InitializeDefaults(ctx context.Context, tenantID uuid.UUID) ([]domain.KaratPricing, error)
}

type karatPricingService struct {
	repo  port.KaratPricingRepository
	rates port.GoldRateRepository
}

// NewKaratPricingService creates a new KaratPricingService implementation.
func NewKaratPricingService(repo port.KaratPricingRepository, rates port.GoldRateRepository) KaratPricingService {
	return &karatPricingService{repo: repo, rates: rates}
}

func normalizeKarat(k string) (string, float64, error) {
	karat := pricing.NormalizeKarat(k)
	p, ok := pricing.Purity(karat)
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", domain.ErrInvalidKarat, k)
	}
	return karat, p, nil
}

func (s *karatPricingService) Upsert(ctx context.Context, tenantID uuid.UUID, input UpsertKaratPricingInput) (*domain.KaratPricing, error) {
	karat, purity, err := normalizeKarat(input.Karat)
	if err != nil {
		return nil, err
	}
	kp := &domain.KaratPricing{
		TenantID:               tenantID,
		Karat:                  karat,
		PurityPercentage:       purity,
		BaseRatePerGram:        input.BaseRatePerGram,
		MakingChargePerGram:    input.MakingChargePerGram,
		MakingChargePercentage: input.MakingChargePercentage,
		WastagePercentage:      input.WastagePercentage,
		GSTPercentage:          pricing.DefaultGSTPercentage,
		Notes:                  input.Notes,
	}
	setIf(&kp.GSTPercentage, input.GSTPercentage)
	if err := s.repo.Upsert(ctx, kp); err != nil {
		return nil, err
	}
	return kp, nil
}

func (s *karatPricingService) Patch(ctx context.Context, tenantID uuid.UUID, karat string, input PatchKaratPricingInput) (*domain.KaratPricing, error) {
	k, _, err := normalizeKarat(karat)
	if err != nil {
		return nil, err
	}
	kp, err := s.repo.Get(ctx, tenantID, k)
	if err != nil {
		return nil, err
	}
	setIf(&kp.BaseRatePerGram, input.BaseRatePerGram)
	setIf(&kp.MakingChargePerGram, input.MakingChargePerGram)
	setIf(&kp.WastagePercentage, input.WastagePercentage)
	setIf(&kp.GSTPercentage, input.GSTPercentage)
	setIf(&kp.Notes, input.Notes)
	if input.MakingChargePercentage != nil {
		kp.MakingChargePercentage = input.MakingChargePercentage
	}
	kp.EffectiveDate = time.Now().UTC()
	if err := s.repo.Upsert(ctx, kp); err != nil {
		return nil, err
	}
	return kp, nil
}

func (s *karatPricingService) Get(ctx context.Context, tenantID uuid.UUID, karat string) (*domain.KaratPricing, error) {
	k, _, err := normalizeKarat(karat)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, tenantID, k)
}

func (s *karatPricingService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.KaratPricing, error) {
	return s.repo.List(ctx, tenantID)
}

// Calculate prices an item from the karat's stored terms, falling back to
// terms derived from the latest 24K gold rate.
func (s *karatPricingService) Calculate(ctx context.Context, tenantID uuid.UUID, input pricing.Input) (*pricing.Breakdown, error) {
	karat, _, err := normalizeKarat(input.Karat)
	if err != nil {
		return nil, err
	}
	input.Karat = karat

	params, err := s.params(ctx, tenantID, karat)
	if err != nil {
		return nil, err
	}
	b, err := pricing.Calculate(params, input)
	if errors.Is(err, pricing.ErrUnknownKarat) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidKarat, karat)
	}
	return b, err
}

func (s *karatPricingService) params(ctx context.Context, tenantID uuid.UUID, karat string) (pricing.Params, error) {
	kp, err := s.repo.Get(ctx, tenantID, karat)
	if err == nil {
		return pricing.Params{
			BaseRatePerGram:        kp.BaseRatePerGram,
			MakingChargePerGram:    kp.MakingChargePerGram,
			MakingChargePercentage: kp.MakingChargePercentage,
			WastagePercentage:      kp.WastagePercentage,
			GSTPercentage:          kp.GSTPercentage,
		}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return pricing.Params{}, err
	}

	rate, err := s.rates.Latest(ctx, tenantID, "24K")
	if err != nil {
		if errors.Is(err, domain.ErrGoldRateNotFound) {
			return pricing.Params{}, fmt.Errorf("%w: no pricing for %s and no 24K gold rate", domain.ErrNotFound, karat)
		}
		return pricing.Params{}, err
	}
	return pricing.FallbackParams(karat, rate.RatePerGram)
}

// InitializeDefaults seeds the standard karats from the latest 24K rate, or
// pricing.DefaultBase24KRate when no rate has been published.
func (s *karatPricingService) InitializeDefaults(ctx context.Context, tenantID uuid.UUID) ([]domain.KaratPricing, error) {
	base := pricing.DefaultBase24KRate
	rate, err := s.rates.Latest(ctx, tenantID, "24K")
	switch {
	case err == nil:
		base = rate.RatePerGram
	case !errors.Is(err, domain.ErrGoldRateNotFound):
		return nil, err
	}

	out := make([]domain.KaratPricing, 0, len(pricing.Defaults))
	for _, d := range pricing.Defaults {
		p := pricing.DefaultParams(d, base)
		purity, _ := pricing.Purity(d.Karat)
		kp := domain.KaratPricing{
			TenantID:               tenantID,
			Karat:                  d.Karat,
			PurityPercentage:       purity,
			BaseRatePerGram:        p.BaseRatePerGram,
			MakingChargePerGram:    p.MakingChargePerGram,
			MakingChargePercentage: p.MakingChargePercentage,
			WastagePercentage:      p.WastagePercentage,
			GSTPercentage:          p.GSTPercentage,
			Notes:                  "initialized from defaults",
		}
		if err := s.repo.Upsert(ctx, &kp); err != nil {
			return nil, err
		}
		out = append(out, kp)
	}
	return out, nil
}
