package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	Search       string
	Category     string
	LowStockOnly bool
}

// SaleFilter narrows sale listings. From and To are inclusive bounds.
type SaleFilter struct {
	Status SaleStatus
	From   *time.Time
	To     *time.Time
}

// JobFilter narrows karigar job listings.
type JobFilter struct {
	KarigarID *uuid.UUID
	Status    JobStatus
}

// DateRange is a closed interval used by reporting queries.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses an inclusive YYYY-MM-DD window and extends To to the
// last instant of that day.
func ParseDateRange(from, to string) (DateRange, error) {
	f, err := time.Parse("2006-01-02", from)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	t, err := time.Parse("2006-01-02", to)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	if t.Before(f) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{From: f, To: t.Add(24*time.Hour - time.Nanosecond)}, nil
}
