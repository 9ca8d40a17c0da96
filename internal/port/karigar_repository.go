package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// KarigarRepository defines the contract for karigar persistence.
type KarigarRepository interface {
	Create(ctx context.Context, k *domain.Karigar) error
	GetByID(ctx context.Context, tenantID, karigarID uuid.UUID) (*domain.Karigar, error)
	List(ctx context.Context, tenantID uuid.UUID, status domain.KarigarStatus, offset, limit int) ([]domain.Karigar, int, error)
	Update(ctx context.Context, k *domain.Karigar) error
	IncrementJobs(ctx context.Context, tenantID, karigarID uuid.UUID) error
	AddEarnings(ctx context.Context, tenantID, karigarID uuid.UUID, amount float64) error
}

// KarigarJobRepository defines the contract for karigar job persistence.
type KarigarJobRepository interface {
	Create(ctx context.Context, j *domain.KarigarJob) error
	GetByID(ctx context.Context, tenantID, jobID uuid.UUID) (*domain.KarigarJob, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.JobFilter, offset, limit int) ([]domain.KarigarJob, int, error)
	ListByKarigar(ctx context.Context, tenantID, karigarID uuid.UUID) ([]domain.KarigarJob, error)
	Update(ctx context.Context, j *domain.KarigarJob) error
}
