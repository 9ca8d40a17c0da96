package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
)

// CreateCustomerInput is the DTO for registering a customer.
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"required"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// CustomerService manages customers.
type CustomerService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Customer, int, error)
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, tenantID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error) {
	phone, err := validator.NormalizePhone(input.Phone)
	if err != nil {
		return nil, err
	}
	gstin, err := validator.NormalizeGSTIN(input.GSTIN)
	if err != nil {
		return nil, err
	}

	c := &domain.Customer{
		TenantID: tenantID,
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Phone:    phone,
		GSTIN:    gstin,
		Address:  input.Address,
		City:     input.City,
		State:    strings.TrimSpace(input.State),
		Pincode:  input.Pincode,
	}
	// A registered buyer's state follows from the GSTIN when not given.
	if c.State == "" && gstin != "" {
		c.State, _ = validator.StateName(gstin[:2])
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, tenantID, customerID)
}

func (s *customerService) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Customer, int, error) {
	return s.repo.List(ctx, tenantID, search, offset, limit)
}
