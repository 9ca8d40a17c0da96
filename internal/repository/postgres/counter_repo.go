package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

type counterRepo struct {
	db *sqlx.DB
}

// NewCounterRepo creates a new PostgreSQL-backed CounterRepository.
func NewCounterRepo(db *sqlx.DB) port.CounterRepository {
	return &counterRepo{db: db}
}

func (r *counterRepo) Bump(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, year int) (int, bool, error) {
	var seq int
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &seq,
		`UPDATE document_counters SET value = value + 1
		 WHERE tenant_id = $1 AND kind = $2 AND year = $3
		 RETURNING value`, tenantID, kind, year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("counterRepo.Bump: %w", err)
	}
	return seq, true, nil
}

func (r *counterRepo) Seed(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, year, seed int) (int, error) {
	var seq int
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &seq,
		`INSERT INTO document_counters (tenant_id, kind, year, value)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (tenant_id, kind, year) DO UPDATE SET value = document_counters.value + 1
		 RETURNING value`, tenantID, kind, year, seed+1)
	if err != nil {
		return 0, fmt.Errorf("counterRepo.Seed: %w", err)
	}
	return seq, nil
}

var lastNumberQueries = map[domain.CounterKind]string{
	domain.CounterInvoice: `SELECT invoice_number FROM sales WHERE tenant_id = $1 ORDER BY created_at DESC, invoice_number DESC LIMIT 1`,
	domain.CounterPO:      `SELECT po_number FROM purchase_orders WHERE tenant_id = $1 ORDER BY created_at DESC, po_number DESC LIMIT 1`,
	domain.CounterJob:     `SELECT job_number FROM karigar_jobs WHERE tenant_id = $1 ORDER BY created_at DESC, job_number DESC LIMIT 1`,
}

// LastDocumentNumber returns "" when the tenant has no document of kind yet.
func (r *counterRepo) LastDocumentNumber(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind) (string, error) {
	query, ok := lastNumberQueries[kind]
	if !ok {
		return "", fmt.Errorf("counterRepo.LastDocumentNumber: unknown kind %q", kind)
	}
	var last string
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &last, query, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("counterRepo.LastDocumentNumber: %w", err)
	}
	return last, nil
}
