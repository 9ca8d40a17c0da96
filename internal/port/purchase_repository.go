package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// SupplierRepository defines the contract for supplier persistence.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, tenantID, supplierID uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Supplier, int, error)
	Update(ctx context.Context, s *domain.Supplier) error
	AddPurchases(ctx context.Context, tenantID, supplierID uuid.UUID, amount float64) error
	// States returns the current state of each supplier id found.
	States(ctx context.Context, tenantID uuid.UUID, supplierIDs []uuid.UUID) (map[uuid.UUID]string, error)
}

// PurchaseOrderRepository defines the contract for purchase order persistence.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *domain.PurchaseOrder) error
	GetByID(ctx context.Context, tenantID, poID uuid.UUID) (*domain.PurchaseOrder, error)
	List(ctx context.Context, tenantID uuid.UUID, status domain.POStatus, offset, limit int) ([]domain.PurchaseOrder, int, error)
	// MarkReceived moves an open order to received. It returns
	// domain.ErrPOAlreadyReceived when the order is already closed.
	MarkReceived(ctx context.Context, tenantID, poID uuid.UUID, at time.Time) error
	// ListReceived returns received orders whose order date is in the window.
	ListReceived(ctx context.Context, tenantID uuid.UUID, window domain.DateRange) ([]domain.PurchaseOrder, error)
	// ListForReconciliation returns orders to match GST returns against. A nil
	// window selects every order of the tenant.
	ListForReconciliation(ctx context.Context, tenantID uuid.UUID, window *domain.DateRange) ([]domain.PurchaseOrder, error)
}

// OldGoldRepository persists old gold exchanges.
type OldGoldRepository interface {
	Create(ctx context.Context, e *domain.OldGoldExchange) error
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.OldGoldExchange, int, error)
}
