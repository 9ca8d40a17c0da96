package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// CategoryRepository defines the contract for product category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.Category, error)
}

// ProductRepository defines the contract for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ProductFilter, offset, limit int) ([]domain.Product, int, error)
	ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]domain.Product, error)
	ListByPurities(ctx context.Context, tenantID uuid.UUID, purities []string) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	// UpdatePricing stores new base and selling prices.
	UpdatePricing(ctx context.Context, tenantID, productID uuid.UUID, basePrice, sellingPrice float64) error
	Delete(ctx context.Context, tenantID, productID uuid.UUID) error
	// AdjustStock atomically adds delta to the quantity and recomputes the
	// low-stock flag. A decrement that would go negative affects no row and
	// returns domain.ErrInsufficientStock.
	AdjustStock(ctx context.Context, tenantID, productID uuid.UUID, delta int) (*domain.StockChange, error)
}

// StockMovementRepository records quantity changes.
type StockMovementRepository interface {
	Create(ctx context.Context, m *domain.StockMovement) error
	ListByProduct(ctx context.Context, tenantID, productID uuid.UUID, offset, limit int) ([]domain.StockMovement, int, error)
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Customer, int, error)
	AddPurchases(ctx context.Context, tenantID, customerID uuid.UUID, amount float64) error
}
