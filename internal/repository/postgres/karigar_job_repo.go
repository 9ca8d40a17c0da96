package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

type karigarJobRepo struct {
	db *sqlx.DB
}

// NewKarigarJobRepo creates a new PostgreSQL-backed KarigarJobRepository.
func NewKarigarJobRepo(db *sqlx.DB) port.KarigarJobRepository {
	return &karigarJobRepo{db: db}
}

func (r *karigarJobRepo) Create(ctx context.Context, j *domain.KarigarJob) error {
	j.ID = uuid.New()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now

	_, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO karigar_jobs (id, tenant_id, job_number, karigar_id, karigar_name, job_description,
			product_type, gold_purity, gold_weight_issued, expected_weight_return, actual_weight_return,
			weight_loss, making_charge_type, making_charge_rate, advance_paid, total_making_charge,
			balance_due, status, expected_completion_date, actual_completion_date, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23)`,
		j.ID, j.TenantID, j.JobNumber, j.KarigarID, j.KarigarName, j.JobDescription,
		j.ProductType, j.GoldPurity, j.GoldWeightIssued, j.ExpectedWeightReturn, j.ActualWeightReturn,
		j.WeightLoss, j.MakingChargeType, j.MakingChargeRate, j.AdvancePaid, j.TotalMakingCharge,
		j.BalanceDue, j.Status, j.ExpectedCompletionDate, j.ActualCompletionDate, j.Notes, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("karigarJobRepo.Create: %w", err)
	}
	return nil
}

func (r *karigarJobRepo) GetByID(ctx context.Context, tenantID, jobID uuid.UUID) (*domain.KarigarJob, error) {
	var j domain.KarigarJob
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &j,
		"SELECT * FROM karigar_jobs WHERE id = $1 AND tenant_id = $2", jobID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("karigarJobRepo.GetByID: %w", err)
	}
	return &j, nil
}

func (r *karigarJobRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.JobFilter, offset, limit int) ([]domain.KarigarJob, int, error) {
	where := []string{"tenant_id = $1"}
	args := []any{tenantID}
	if filter.KarigarID != nil {
		args = append(args, *filter.KarigarID)
		where = append(where, fmt.Sprintf("karigar_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM karigar_jobs WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("karigarJobRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM karigar_jobs WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		cond, len(args)+1, len(args)+2)
	var jobs []domain.KarigarJob
	if err := r.db.SelectContext(ctx, &jobs, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("karigarJobRepo.List: %w", err)
	}
	return jobs, total, nil
}

func (r *karigarJobRepo) ListByKarigar(ctx context.Context, tenantID, karigarID uuid.UUID) ([]domain.KarigarJob, error) {
	var jobs []domain.KarigarJob
	err := r.db.SelectContext(ctx, &jobs,
		"SELECT * FROM karigar_jobs WHERE tenant_id = $1 AND karigar_id = $2 ORDER BY created_at",
		tenantID, karigarID)
	if err != nil {
		return nil, fmt.Errorf("karigarJobRepo.ListByKarigar: %w", err)
	}
	return jobs, nil
}

func (r *karigarJobRepo) Update(ctx context.Context, j *domain.KarigarJob) error {
	j.UpdatedAt = time.Now().UTC()
	result, err := ext(ctx, r.db).ExecContext(ctx,
		`UPDATE karigar_jobs SET job_description = $1, actual_weight_return = $2, weight_loss = $3,
			total_making_charge = $4, balance_due = $5, status = $6, expected_completion_date = $7,
			actual_completion_date = $8, notes = $9, updated_at = $10
		 WHERE id = $11 AND tenant_id = $12`,
		j.JobDescription, j.ActualWeightReturn, j.WeightLoss,
		j.TotalMakingCharge, j.BalanceDue, j.Status, j.ExpectedCompletionDate,
		j.ActualCompletionDate, j.Notes, j.UpdatedAt,
		j.ID, j.TenantID)
	if err != nil {
		return fmt.Errorf("karigarJobRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
