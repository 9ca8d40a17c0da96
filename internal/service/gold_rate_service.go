package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/pricing"
)

// GoldRateEntry is one purity's rate in a SetRatesInput.
type GoldRateEntry struct {
	Purity      string  `json:"purity" binding:"required,karat"`
	RatePerGram float64 `json:"rate_per_gram" binding:"required,gt=0"`
	Notes       string  `json:"notes"`
}

// SetRatesInput is the DTO for publishing today's rates.
type SetRatesInput struct {
	Rates []GoldRateEntry `json:"rates" binding:"required,min=1,dive"`
}

// CurrentRates is the latest day that has active rates.
type CurrentRates struct {
	Date  string            `json:"date"`
	Rates []domain.GoldRate `json:"rates"`
}

// RateHistoryItem is one historical rate with its move against the previous
// entry of the same purity.
type RateHistoryItem struct {
	Date             string   `json:"date"`
	Purity           string   `json:"purity"`
	RatePerGram      float64  `json:"rate_per_gram"`
	Change           *float64 `json:"change"`
	ChangePercentage *float64 `json:"change_percentage"`
}

// ApplyRatesResult acknowledges a queued repricing run.
type ApplyRatesResult struct {
	TaskID string             `json:"task_id"`
	Rates  map[string]float64 `json:"rates"`
}

// GoldRateService publishes daily gold rates.
type GoldRateService interface {
	SetRates(ctx context.Context, tenantID, userID uuid.UUID, input SetRatesInput) (*CurrentRates, error)
	Current(ctx context.Context, tenantID uuid.UUID) (*CurrentRates, error)
	History(ctx context.Context, tenantID uuid.UUID, purity string, days int) ([]RateHistoryItem, error)
	Latest(ctx context.Context, tenantID uuid.UUID, purity string) (*domain.GoldRate, error)
	ApplyToProducts(ctx context.Context, tenantID uuid.UUID) (*ApplyRatesResult, error)
}

// GoldRateDeps groups the collaborators of GoldRateService.
type GoldRateDeps struct {
	Tx            port.TxManager
	Rates         port.GoldRateRepository
	Queue         port.TaskQueue
	Notifications NotificationService
	Log           logrus.FieldLogger
}

type goldRateService struct {
	GoldRateDeps
	now func() time.Time
}

// NewGoldRateService creates a new GoldRateService implementation.
func NewGoldRateService(d GoldRateDeps) GoldRateService {
	return &goldRateService{GoldRateDeps: d, now: time.Now}
}

func (s *goldRateService) SetRates(ctx context.Context, tenantID, userID uuid.UUID, input SetRatesInput) (*CurrentRates, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	rates := make([]domain.GoldRate, 0, len(input.Rates))

	err := s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		rates = rates[:0]
		if err := s.Rates.DeactivateDay(txCtx, tenantID, today); err != nil {
			return err
		}
		for _, e := range input.Rates {
			karat := pricing.NormalizeKarat(e.Purity)
			if _, ok := pricing.Purity(karat); !ok {
				return fmt.Errorf("%w: %s", domain.ErrInvalidKarat, e.Purity)
			}
			r := domain.GoldRate{
				TenantID:    tenantID,
				RateDate:    today,
				Purity:      karat,
				RatePerGram: money.Round(e.RatePerGram),
				Notes:       e.Notes,
				IsActive:    true,
				CreatedBy:   userID,
			}
			if err := s.Rates.Create(txCtx, &r); err != nil {
				return err
			}
			rates = append(rates, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Notifications != nil {
		if err := s.Notifications.NotifyRateUpdate(ctx, tenantID, rates); err != nil {
			logger.LogError(s.Log, "service", "SetRates", "rate update notification", tenantID, err)
		}
	}
	return &CurrentRates{Date: today.Format("2006-01-02"), Rates: rates}, nil
}

func (s *goldRateService) Current(ctx context.Context, tenantID uuid.UUID) (*CurrentRates, error) {
	rates, err := s.Rates.Current(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	cur := &CurrentRates{Rates: rates}
	if len(rates) > 0 {
		cur.Date = rates[0].RateDate.Format("2006-01-02")
	} else {
		cur.Rates = []domain.GoldRate{}
	}
	return cur, nil
}

func (s *goldRateService) History(ctx context.Context, tenantID uuid.UUID, purity string, days int) ([]RateHistoryItem, error) {
	if days < 1 || days > 365 {
		days = 30
	}
	if purity != "" {
		purity = pricing.NormalizeKarat(purity)
		if _, ok := pricing.Purity(purity); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidKarat, purity)
		}
	}
	since := s.now().UTC().AddDate(0, 0, -days)
	rates, err := s.Rates.History(ctx, tenantID, purity, since)
	if err != nil {
		return nil, err
	}
	return rateHistory(rates), nil
}

// rateHistory expects rates ordered by purity then date.
func rateHistory(rates []domain.GoldRate) []RateHistoryItem {
	out := make([]RateHistoryItem, 0, len(rates))
	prev := make(map[string]float64)
	for _, r := range rates {
		item := RateHistoryItem{
			Date:        r.RateDate.Format("2006-01-02"),
			Purity:      r.Purity,
			RatePerGram: r.RatePerGram,
		}
		if p, ok := prev[r.Purity]; ok && p > 0 {
			change := money.Round(money.Sum(r.RatePerGram, -p))
			pct := money.Round(money.Share(change, p) * 100)
			item.Change, item.ChangePercentage = &change, &pct
		}
		prev[r.Purity] = r.RatePerGram
		out = append(out, item)
	}
	return out
}

func (s *goldRateService) Latest(ctx context.Context, tenantID uuid.UUID, purity string) (*domain.GoldRate, error) {
	karat := pricing.NormalizeKarat(purity)
	if _, ok := pricing.Purity(karat); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidKarat, purity)
	}
	return s.Rates.Latest(ctx, tenantID, karat)
}

func (s *goldRateService) ApplyToProducts(ctx context.Context, tenantID uuid.UUID) (*ApplyRatesResult, error) {
	rates, err := s.Rates.Current(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: no active gold rates", domain.ErrGoldRateNotFound)
	}
	if s.Queue == nil {
		return nil, errors.New("goldRate.ApplyToProducts: task queue not configured")
	}

	rateMap := make(map[string]float64, len(rates))
	for _, r := range rates {
		rateMap[r.Purity] = r.RatePerGram
	}
	id, err := s.Queue.EnqueueReprice(ctx, port.RepricePayload{TenantID: tenantID, Rates: rateMap})
	if err != nil {
		return nil, err
	}
	return &ApplyRatesResult{TaskID: id, Rates: rateMap}, nil
}
