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

type karigarRepo struct {
	db *sqlx.DB
}

// NewKarigarRepo creates a new PostgreSQL-backed KarigarRepository.
func NewKarigarRepo(db *sqlx.DB) port.KarigarRepository {
	return &karigarRepo{db: db}
}

func (r *karigarRepo) Create(ctx context.Context, k *domain.Karigar) error {
	k.ID = uuid.New()
	now := time.Now().UTC()
	k.CreatedAt = now
	k.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO karigars (id, tenant_id, name, phone, email, address, specialization, experience_years,
			per_gram_rate, commission_percentage, status, notes, total_jobs, total_earnings, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		k.ID, k.TenantID, k.Name, k.Phone, k.Email, k.Address, k.Specialization, k.ExperienceYears,
		k.PerGramRate, k.CommissionPercentage, k.Status, k.Notes, k.TotalJobs, k.TotalEarnings, k.CreatedAt, k.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePhone
		}
		return fmt.Errorf("karigarRepo.Create: %w", err)
	}
	return nil
}

func (r *karigarRepo) GetByID(ctx context.Context, tenantID, karigarID uuid.UUID) (*domain.Karigar, error) {
	var k domain.Karigar
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &k,
		"SELECT * FROM karigars WHERE id = $1 AND tenant_id = $2", karigarID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKarigarNotFound
		}
		return nil, fmt.Errorf("karigarRepo.GetByID: %w", err)
	}
	return &k, nil
}

func (r *karigarRepo) List(ctx context.Context, tenantID uuid.UUID, status domain.KarigarStatus, offset, limit int) ([]domain.Karigar, int, error) {
	cond := "tenant_id = $1"
	args := []any{tenantID}
	if status != "" {
		args = append(args, status)
		cond += " AND status = $2"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM karigars WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("karigarRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM karigars WHERE %s ORDER BY name LIMIT $%d OFFSET $%d",
		cond, len(args)+1, len(args)+2)
	var karigars []domain.Karigar
	if err := r.db.SelectContext(ctx, &karigars, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("karigarRepo.List: %w", err)
	}
	return karigars, total, nil
}

func (r *karigarRepo) Update(ctx context.Context, k *domain.Karigar) error {
	k.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE karigars SET name = $1, phone = $2, email = $3, address = $4, specialization = $5,
			experience_years = $6, per_gram_rate = $7, commission_percentage = $8, status = $9, notes = $10,
			updated_at = $11
		 WHERE id = $12 AND tenant_id = $13`,
		k.Name, k.Phone, k.Email, k.Address, k.Specialization,
		k.ExperienceYears, k.PerGramRate, k.CommissionPercentage, k.Status, k.Notes,
		k.UpdatedAt, k.ID, k.TenantID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePhone
		}
		return fmt.Errorf("karigarRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrKarigarNotFound
	}
	return nil
}

func (r *karigarRepo) IncrementJobs(ctx context.Context, tenantID, karigarID uuid.UUID) error {
	return r.bump(ctx, "karigarRepo.IncrementJobs",
		"UPDATE karigars SET total_jobs = total_jobs + 1, updated_at = $1 WHERE id = $2 AND tenant_id = $3",
		time.Now().UTC(), karigarID, tenantID)
}

func (r *karigarRepo) AddEarnings(ctx context.Context, tenantID, karigarID uuid.UUID, amount float64) error {
	return r.bump(ctx, "karigarRepo.AddEarnings",
		"UPDATE karigars SET total_earnings = total_earnings + $1, updated_at = $2 WHERE id = $3 AND tenant_id = $4",
		amount, time.Now().UTC(), karigarID, tenantID)
}

func (r *karigarRepo) bump(ctx context.Context, op, query string, args ...any) error {
	result, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrKarigarNotFound
	}
	return nil
}
