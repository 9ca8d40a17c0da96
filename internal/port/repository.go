package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// TxManager runs fn inside a database transaction. Repositories called with
// the context passed to fn join that transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// TenantRepository defines the contract for tenant (business) persistence.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for user persistence.
// All query methods include tenantID to enforce tenant isolation at the data layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	ListByRoles(ctx context.Context, tenantID uuid.UUID, roles ...domain.UserRole) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, tenantID, userID uuid.UUID) error
}

// CounterRepository hands out document sequence numbers.
type CounterRepository interface {
	// Bump increments an existing counter. ok is false when the row does not
	// exist yet.
	Bump(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, year int) (seq int, ok bool, err error)
	// Seed creates the counter at seed+1, or increments it if a concurrent
	// caller created it first, and returns the resulting value.
	Seed(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, year, seed int) (int, error)
	// LastDocumentNumber returns the most recently stored number of kind.
	LastDocumentNumber(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind) (string, error)
}
