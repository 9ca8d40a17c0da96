package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/numbering"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// DocumentNumberer hands out invoice, purchase order and job numbers. Calls
// made inside a transaction take the counter row lock until commit.
type DocumentNumberer interface {
	Next(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, prefix string) (string, error)
}

type documentNumberer struct {
	counters port.CounterRepository
	policy   numbering.Policy
	now      func() time.Time
}

// NewDocumentNumberer creates a counter-backed DocumentNumberer.
func NewDocumentNumberer(counters port.CounterRepository, policy numbering.Policy) DocumentNumberer {
	return &documentNumberer{counters: counters, policy: policy, now: time.Now}
}

func (n *documentNumberer) Next(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, prefix string) (string, error) {
	// Job numbers run on a single series with no year component.
	year := 0
	if kind != domain.CounterJob {
		year = n.now().Year()
	}

	seq, ok, err := n.counters.Bump(ctx, tenantID, kind, year)
	if err != nil {
		return "", fmt.Errorf("numbering.Next: %w", err)
	}
	if !ok {
		seed, err := n.seed(ctx, tenantID, kind, prefix, year)
		if err != nil {
			return "", err
		}
		if seq, err = n.counters.Seed(ctx, tenantID, kind, year, seed); err != nil {
			return "", fmt.Errorf("numbering.Next: %w", err)
		}
	}

	if kind == domain.CounterJob {
		return numbering.FormatJob(seq), nil
	}
	return numbering.Format(prefix, year, seq), nil
}

// seed finds where a new counter row should continue from, based on the
// most recently stored document of the same kind.
func (n *documentNumberer) seed(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, prefix string, year int) (int, error) {
	last, err := n.counters.LastDocumentNumber(ctx, tenantID, kind)
	if err != nil {
		return 0, fmt.Errorf("numbering.seed: %w", err)
	}
	if kind == domain.CounterJob {
		return numbering.LastJobSequence(last, n.policy)
	}
	return numbering.LastSequence(last, prefix, year, n.policy)
}
