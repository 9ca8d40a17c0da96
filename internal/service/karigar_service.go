package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
)

// CreateKarigarInput is the DTO for registering a karigar.
type CreateKarigarInput struct {
	Name                 string               `json:"name" binding:"required"`
	Phone                string               `json:"phone" binding:"required"`
	Email                string               `json:"email" binding:"omitempty,email"`
	Address              string               `json:"address"`
	Specialization       string               `json:"specialization"`
	ExperienceYears      int                  `json:"experience_years" binding:"gte=0"`
	PerGramRate          float64              `json:"per_gram_rate" binding:"gte=0"`
	CommissionPercentage float64              `json:"commission_percentage" binding:"gte=0,lte=100"`
	Status               domain.KarigarStatus `json:"status" binding:"omitempty,oneof=active inactive on_leave"`
	Notes                string               `json:"notes"`
}

// UpdateKarigarInput is the DTO for updating a karigar.
type UpdateKarigarInput struct {
	Name                 *string               `json:"name"`
	Phone                *string               `json:"phone"`
	Email                *string               `json:"email" binding:"omitempty,email"`
	Address              *string               `json:"address"`
	Specialization       *string               `json:"specialization"`
	ExperienceYears      *int                  `json:"experience_years" binding:"omitempty,gte=0"`
	PerGramRate          *float64              `json:"per_gram_rate" binding:"omitempty,gte=0"`
	CommissionPercentage *float64              `json:"commission_percentage" binding:"omitempty,gte=0,lte=100"`
	Status               *domain.KarigarStatus `json:"status" binding:"omitempty,oneof=active inactive on_leave"`
	Notes                *string               `json:"notes"`
}

// CreateJobInput is the DTO for issuing gold to a karigar.
type CreateJobInput struct {
	KarigarID              uuid.UUID               `json:"karigar_id" binding:"required"`
	JobDescription         string                  `json:"job_description" binding:"required"`
	ProductType            string                  `json:"product_type" binding:"required"`
	GoldPurity             string                  `json:"gold_purity" binding:"omitempty,karat"`
	GoldWeightIssued       float64                 `json:"gold_weight_issued" binding:"required,gt=0"`
	ExpectedWeightReturn   float64                 `json:"expected_weight_return" binding:"gte=0"`
	MakingChargeType       domain.MakingChargeType `json:"making_charge_type" binding:"omitempty,oneof=per_gram fixed percentage"`
	MakingChargeRate       float64                 `json:"making_charge_rate" binding:"gte=0"`
	AdvancePaid            float64                 `json:"advance_paid" binding:"gte=0"`
	ExpectedCompletionDate *time.Time              `json:"expected_completion_date"`
	Notes                  string                  `json:"notes"`
}

// UpdateJobInput is the DTO for progressing a job.
type UpdateJobInput struct {
	Status             *domain.JobStatus `json:"status" binding:"omitempty,oneof=pending in_progress completed delivered cancelled"`
	ActualWeightReturn *float64          `json:"actual_weight_return" binding:"omitempty,gte=0"`
	Notes              *string           `json:"notes"`
}

// KarigarService manages karigars and their job cards.
type KarigarService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateKarigarInput) (*domain.Karigar, error)
	GetByID(ctx context.Context, tenantID, karigarID uuid.UUID) (*domain.Karigar, error)
	List(ctx context.Context, tenantID uuid.UUID, status domain.KarigarStatus, offset, limit int) ([]domain.Karigar, int, error)
	Update(ctx context.Context, tenantID, karigarID uuid.UUID, input UpdateKarigarInput) (*domain.Karigar, error)
	Summary(ctx context.Context, tenantID, karigarID uuid.UUID) (*domain.KarigarSummary, error)

	CreateJob(ctx context.Context, tenantID uuid.UUID, input CreateJobInput) (*domain.KarigarJob, error)
	GetJob(ctx context.Context, tenantID, jobID uuid.UUID) (*domain.KarigarJob, error)
	ListJobs(ctx context.Context, tenantID uuid.UUID, filter domain.JobFilter, offset, limit int) ([]domain.KarigarJob, int, error)
	UpdateJob(ctx context.Context, tenantID, jobID uuid.UUID, input UpdateJobInput) (*domain.KarigarJob, error)
}

// KarigarDeps groups the collaborators of KarigarService.
type KarigarDeps struct {
	Tx       port.TxManager
	Karigars port.KarigarRepository
	Jobs     port.KarigarJobRepository
	Numbers  DocumentNumberer
	Log      logrus.FieldLogger
}

type karigarService struct {
	KarigarDeps
	now func() time.Time
}

// NewKarigarService creates a new KarigarService implementation.
func NewKarigarService(d KarigarDeps) KarigarService {
	return &karigarService{KarigarDeps: d, now: time.Now}
}

func (s *karigarService) Create(ctx context.Context, tenantID uuid.UUID, input CreateKarigarInput) (*domain.Karigar, error) {
	k := &domain.Karigar{
		TenantID:             tenantID,
		Name:                 strings.TrimSpace(input.Name),
		Phone:                input.Phone,
		Email:                input.Email,
		Address:              input.Address,
		Specialization:       orDefault(input.Specialization, "gold"),
		ExperienceYears:      input.ExperienceYears,
		PerGramRate:          money.Round(input.PerGramRate),
		CommissionPercentage: input.CommissionPercentage,
		Status:               input.Status,
		Notes:                input.Notes,
	}
	if k.Status == "" {
		k.Status = domain.KarigarActive
	}
	if err := normalizeKarigarPhone(k); err != nil {
		return nil, err
	}
	if err := s.Karigars.Create(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *karigarService) GetByID(ctx context.Context, tenantID, karigarID uuid.UUID) (*domain.Karigar, error) {
	return s.Karigars.GetByID(ctx, tenantID, karigarID)
}

func (s *karigarService) List(ctx context.Context, tenantID uuid.UUID, status domain.KarigarStatus, offset, limit int) ([]domain.Karigar, int, error) {
	return s.Karigars.List(ctx, tenantID, status, offset, limit)
}

func (s *karigarService) Update(ctx context.Context, tenantID, karigarID uuid.UUID, input UpdateKarigarInput) (*domain.Karigar, error) {
	k, err := s.Karigars.GetByID(ctx, tenantID, karigarID)
	if err != nil {
		return nil, err
	}
	setIf(&k.Name, input.Name)
	setIf(&k.Phone, input.Phone)
	setIf(&k.Email, input.Email)
	setIf(&k.Address, input.Address)
	setIf(&k.Specialization, input.Specialization)
	setIf(&k.ExperienceYears, input.ExperienceYears)
	setIf(&k.PerGramRate, input.PerGramRate)
	setIf(&k.CommissionPercentage, input.CommissionPercentage)
	setIf(&k.Status, input.Status)
	setIf(&k.Notes, input.Notes)
	if err := normalizeKarigarPhone(k); err != nil {
		return nil, err
	}
	if err := s.Karigars.Update(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

func normalizeKarigarPhone(k *domain.Karigar) error {
	phone, err := validator.NormalizePhone(k.Phone)
	if err != nil {
		return err
	}
	k.Phone = phone
	return nil
}

// Summary aggregates the karigar's jobs. Weight and earnings figures count
// jobs that reached completion, delivered ones included.
func (s *karigarService) Summary(ctx context.Context, tenantID, karigarID uuid.UUID) (*domain.KarigarSummary, error) {
	k, err := s.Karigars.GetByID(ctx, tenantID, karigarID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.Jobs.ListByKarigar(ctx, tenantID, karigarID)
	if err != nil {
		return nil, err
	}

	sum := &domain.KarigarSummary{
		KarigarID:   k.ID,
		KarigarName: k.Name,
		TotalJobs:   len(jobs),
	}
	var issued, loss, earned, due []float64
	for i := range jobs {
		j := &jobs[i]
		switch j.Status {
		case domain.JobPending, domain.JobInProgress:
			sum.PendingJobs++
		case domain.JobCompleted, domain.JobDelivered:
			sum.CompletedJobs++
			issued = append(issued, j.GoldWeightIssued)
			if j.WeightLoss != nil {
				loss = append(loss, *j.WeightLoss)
			}
			if j.TotalMakingCharge != nil {
				earned = append(earned, *j.TotalMakingCharge)
			}
		}
		if j.Status != domain.JobCancelled && j.BalanceDue != nil {
			due = append(due, *j.BalanceDue)
		}
	}

	sum.TotalWeightIssued = money.RoundTo(money.Sum(issued...), 3)
	sum.TotalWeightLoss = money.RoundTo(money.Sum(loss...), 3)
	sum.TotalEarnings = money.Round(money.Sum(earned...))
	sum.TotalBalanceDue = money.Round(money.Sum(due...))
	if sum.TotalWeightIssued > 0 {
		sum.AverageLossPercent = money.Round(sum.TotalWeightLoss / sum.TotalWeightIssued * 100)
	}
	return sum, nil
}

func (s *karigarService) CreateJob(ctx context.Context, tenantID uuid.UUID, input CreateJobInput) (*domain.KarigarJob, error) {
	purity := orDefault(input.GoldPurity, "22K")
	karat, _, err := normalizeKarat(purity)
	if err != nil {
		return nil, err
	}
	chargeType := input.MakingChargeType
	if chargeType == "" {
		chargeType = domain.MakingChargePerGram
	}

	var job *domain.KarigarJob
	err = s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		k, err := s.Karigars.GetByID(txCtx, tenantID, input.KarigarID)
		if err != nil {
			return err
		}
		number, err := s.Numbers.Next(txCtx, tenantID, domain.CounterJob, "")
		if err != nil {
			return err
		}
		job = &domain.KarigarJob{
			TenantID:               tenantID,
			JobNumber:              number,
			KarigarID:              k.ID,
			KarigarName:            k.Name,
			JobDescription:         input.JobDescription,
			ProductType:            input.ProductType,
			GoldPurity:             karat,
			GoldWeightIssued:       money.RoundTo(input.GoldWeightIssued, 3),
			ExpectedWeightReturn:   money.RoundTo(input.ExpectedWeightReturn, 3),
			MakingChargeType:       chargeType,
			MakingChargeRate:       money.Round(input.MakingChargeRate),
			AdvancePaid:            money.Round(input.AdvancePaid),
			Status:                 domain.JobPending,
			ExpectedCompletionDate: input.ExpectedCompletionDate,
			Notes:                  input.Notes,
		}
		if err := s.Jobs.Create(txCtx, job); err != nil {
			return err
		}
		return s.Karigars.IncrementJobs(txCtx, tenantID, k.ID)
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *karigarService) GetJob(ctx context.Context, tenantID, jobID uuid.UUID) (*domain.KarigarJob, error) {
	return s.Jobs.GetByID(ctx, tenantID, jobID)
}

func (s *karigarService) ListJobs(ctx context.Context, tenantID uuid.UUID, filter domain.JobFilter, offset, limit int) ([]domain.KarigarJob, int, error) {
	return s.Jobs.List(ctx, tenantID, filter, offset, limit)
}

func (s *karigarService) UpdateJob(ctx context.Context, tenantID, jobID uuid.UUID, input UpdateJobInput) (*domain.KarigarJob, error) {
	var job *domain.KarigarJob
	err := s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if job, err = s.Jobs.GetByID(txCtx, tenantID, jobID); err != nil {
			return err
		}

		prev := job.Status
		if input.Status != nil {
			if !prev.CanTransitionTo(*input.Status) {
				return fmt.Errorf("%w: %s to %s", domain.ErrInvalidStatusTransition, prev, *input.Status)
			}
			job.Status = *input.Status
		}
		setIf(&job.Notes, input.Notes)
		if input.ActualWeightReturn != nil {
			settleReturn(job, *input.ActualWeightReturn)
		}

		completing := prev != domain.JobCompleted && job.Status == domain.JobCompleted
		if completing {
			now := s.now().UTC()
			job.ActualCompletionDate = &now
		}
		if err := s.Jobs.Update(txCtx, job); err != nil {
			return err
		}
		if completing && job.TotalMakingCharge != nil {
			return s.Karigars.AddEarnings(txCtx, tenantID, job.KarigarID, *job.TotalMakingCharge)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// settleReturn records the returned weight and the resulting charges.
// Percentage-based charges are settled outside the system and stay unset.
func settleReturn(job *domain.KarigarJob, returned float64) {
	returned = money.RoundTo(returned, 3)
	loss := money.RoundTo(money.Sum(job.GoldWeightIssued, -returned), 3)
	job.ActualWeightReturn = &returned
	job.WeightLoss = &loss

	var total *float64
	switch job.MakingChargeType {
	case domain.MakingChargePerGram:
		v := money.Mul(returned, job.MakingChargeRate)
		total = &v
	case domain.MakingChargeFixed:
		v := job.MakingChargeRate
		total = &v
	}
	job.TotalMakingCharge = total
	job.BalanceDue = nil
	if total != nil {
		due := money.Round(money.Sum(*total, -job.AdvancePaid))
		job.BalanceDue = &due
	}
}
