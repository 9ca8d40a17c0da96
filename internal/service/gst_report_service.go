package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/gstreport"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// GSTReportService builds the GST filing reports for a date window. Results
// are cached per tenant until the next sale or purchase receipt.
type GSTReportService interface {
	GSTR1(ctx context.Context, tenantID uuid.UUID, from, to string) (*gstreport.GSTR1, error)
	HSNSummary(ctx context.Context, tenantID uuid.UUID, from, to string) (*gstreport.HSNSummary, error)
	GSTR3B(ctx context.Context, tenantID uuid.UUID, from, to string) (*gstreport.GSTR3B, error)
	ITCReconciliation(ctx context.Context, tenantID uuid.UUID, from, to string) (*gstreport.ITCReconciliation, error)
}

// GSTReportDeps groups the collaborators of GSTReportService.
type GSTReportDeps struct {
	Tenants   port.TenantRepository
	Sales     port.SaleRepository
	Purchases port.PurchaseOrderRepository
	Suppliers port.SupplierRepository
	Cache     port.ReportCache
}

type gstReportService struct {
	GSTReportDeps
}

// NewGSTReportService creates a new GSTReportService implementation.
func NewGSTReportService(d GSTReportDeps) GSTReportService {
	return &gstReportService{GSTReportDeps: d}
}

func (s *gstReportService) GSTR1(ctx context.Context, tenantID uuid.UUID, from, to string) (*gstreport.GSTR1, error) {
	var out gstreport.GSTR1
	err := s.cached(ctx, tenantID, "gstr1", from, to, &out, func(ctx context.Context, p gstreport.Period, window domain.DateRange) (any, error) {
		sales, err := s.Sales.ListCompleted(ctx, tenantID, window)
		if err != nil {
			return nil, err
		}
		return gstreport.BuildGSTR1(p, sales), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *gstReportService) HSNSummary(ctx context.Context, tenantID uuid.UUID, from, to string) (*gstreport.HSNSummary, error) {
	var out gstreport.HSNSummary
	err := s.cached(ctx, tenantID, "hsn", from, to, &out, func(ctx context.Context, p gstreport.Period, window domain.DateRange) (any, error) {
		sales, err := s.Sales.ListCompleted(ctx, tenantID, window)
		if err != nil {
			return nil, err
		}
		return gstreport.BuildHSNSummary(p, sales), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *gstReportService) GSTR3B(ctx context.Context, tenantID uuid.UUID, from, to string) (*gstreport.GSTR3B, error) {
	var out gstreport.GSTR3B
	err := s.cached(ctx, tenantID, "gstr3b", from, to, &out, func(ctx context.Context, p gstreport.Period, window domain.DateRange) (any, error) {
		g, _, _, err := s.build3B(ctx, tenantID, p, window)
		return g, err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *gstReportService) ITCReconciliation(ctx context.Context, tenantID uuid.UUID, from, to string) (*gstreport.ITCReconciliation, error) {
	var out gstreport.ITCReconciliation
	err := s.cached(ctx, tenantID, "itc", from, to, &out, func(ctx context.Context, p gstreport.Period, window domain.DateRange) (any, error) {
		g, sales, purchases, err := s.build3B(ctx, tenantID, p, window)
		if err != nil {
			return nil, err
		}
		return gstreport.BuildITCReconciliation(g, sales, purchases), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *gstReportService) build3B(ctx context.Context, tenantID uuid.UUID, p gstreport.Period, window domain.DateRange) (*gstreport.GSTR3B, []domain.Sale, []domain.PurchaseOrder, error) {
	tenant, err := s.Tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, nil, nil, err
	}
	sales, err := s.Sales.ListCompleted(ctx, tenantID, window)
	if err != nil {
		return nil, nil, nil, err
	}
	purchases, err := s.Purchases.ListReceived(ctx, tenantID, window)
	if err != nil {
		return nil, nil, nil, err
	}

	// A supplier's current state wins over the one captured on the order.
	ids := make([]uuid.UUID, 0, len(purchases))
	seen := make(map[uuid.UUID]bool, len(purchases))
	for i := range purchases {
		if id := purchases[i].SupplierID; !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	var states map[uuid.UUID]string
	if len(ids) > 0 {
		if states, err = s.Suppliers.States(ctx, tenantID, ids); err != nil {
			return nil, nil, nil, err
		}
	}
	return gstreport.BuildGSTR3B(p, sales, purchases, states, tenant.State), sales, purchases, nil
}

type reportLoader func(ctx context.Context, p gstreport.Period, window domain.DateRange) (any, error)

func (s *gstReportService) cached(ctx context.Context, tenantID uuid.UUID, kind, from, to string, dest any, load reportLoader) error {
	window, err := domain.ParseDateRange(from, to)
	if err != nil {
		return err
	}
	p := gstreport.Period{From: from, To: to}
	loader := func(ctx context.Context) (any, error) {
		return load(ctx, p, window)
	}
	key := fmt.Sprintf("%s:%s:%s", kind, from, to)
	if err := s.Cache.FetchJSON(ctx, tenantID, key, dest, loader); err != nil {
		return fmt.Errorf("gstReportService.%s: %w", kind, err)
	}
	return nil
}
