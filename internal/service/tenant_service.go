package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
)

const (
	defaultInvoicePrefix = "INV"
	defaultPOPrefix      = "PO"
)

// CreateTenantInput is the DTO for creating a business.
type CreateTenantInput struct {
	Name          string `json:"name" binding:"required"`
	Slug          string `json:"slug" binding:"required"`
	GSTIN         string `json:"gstin" binding:"omitempty,gstin"`
	State         string `json:"state" binding:"required"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	InvoicePrefix string `json:"invoice_prefix"`
	POPrefix      string `json:"po_prefix"`
}

// UpdateTenantInput is the DTO for updating a business. Nil fields are left
// unchanged.
type UpdateTenantInput struct {
	Name          *string `json:"name"`
	Slug          *string `json:"slug"`
	GSTIN         *string `json:"gstin"`
	State         *string `json:"state"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	InvoicePrefix *string `json:"invoice_prefix"`
	POPrefix      *string `json:"po_prefix"`
	IsActive      *bool   `json:"is_active"`
}

// TenantService defines the business management contract.
type TenantService interface {
	Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tenantService struct {
	repo port.TenantRepository
}

// NewTenantService creates a new TenantService implementation.
func NewTenantService(repo port.TenantRepository) TenantService {
	return &tenantService{repo: repo}
}

func (s *tenantService) Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error) {
	tenant := &domain.Tenant{
		Name:          input.Name,
		Slug:          strings.ToLower(strings.TrimSpace(input.Slug)),
		Address:       input.Address,
		Phone:         input.Phone,
		Email:         input.Email,
		InvoicePrefix: orDefault(input.InvoicePrefix, defaultInvoicePrefix),
		POPrefix:      orDefault(input.POPrefix, defaultPOPrefix),
		IsActive:      true,
	}
	if err := applyGSTIdentity(tenant, input.GSTIN, input.State); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tenantService) List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *tenantService) Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error) {
	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setIf(&tenant.Name, input.Name)
	setIf(&tenant.Address, input.Address)
	setIf(&tenant.Phone, input.Phone)
	setIf(&tenant.Email, input.Email)
	setIf(&tenant.InvoicePrefix, input.InvoicePrefix)
	setIf(&tenant.POPrefix, input.POPrefix)
	if input.Slug != nil {
		tenant.Slug = strings.ToLower(strings.TrimSpace(*input.Slug))
	}
	if input.IsActive != nil {
		tenant.IsActive = *input.IsActive
	}
	if input.GSTIN != nil || input.State != nil {
		gstin, state := tenant.GSTIN, tenant.State
		setIf(&gstin, input.GSTIN)
		setIf(&state, input.State)
		if err := applyGSTIdentity(tenant, gstin, state); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// applyGSTIdentity validates the GSTIN and derives the state code. When a
// GSTIN is given its first two digits must agree with the state.
func applyGSTIdentity(t *domain.Tenant, gstin, state string) error {
	g, err := validator.NormalizeGSTIN(gstin)
	if err != nil {
		return err
	}
	state = strings.TrimSpace(state)
	code, ok := validator.StateCodeFor(state)
	if !ok {
		return fmt.Errorf("%w: unknown state %q", domain.ErrInvalidInput, state)
	}
	if g != "" && g[:2] != code {
		return fmt.Errorf("%w: GSTIN %s is not registered in %s", domain.ErrInvalidGSTIN, g, state)
	}
	t.GSTIN, t.State, t.StateCode = g, state, code
	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
