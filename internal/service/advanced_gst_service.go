package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/config"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/reconcile"
)

const minCancelReasonLen = 10

// ImportReturnInput carries an uploaded GSTR-2A or GSTR-2B JSON file.
type ImportReturnInput struct {
	TenantID     uuid.UUID
	UserID       uuid.UUID
	Kind         domain.ReturnKind
	FilingPeriod string
	FileName     string
	Data         []byte
}

// ImportResult reports how many records an import stored.
type ImportResult struct {
	ImportID     uuid.UUID `json:"import_id"`
	Imported     int       `json:"imported"`
	FilingPeriod string    `json:"filing_period"`
	ObjectKey    string    `json:"object_key"`
}

// GenerateEInvoiceInput is the DTO for registering an e-invoice.
type GenerateEInvoiceInput struct {
	SaleID uuid.UUID `json:"sale_id" binding:"required"`
}

// CancelEInvoiceInput is the DTO for cancelling an e-invoice.
type CancelEInvoiceInput struct {
	Reason string `json:"reason" binding:"required"`
}

// AdvancedGSTService covers GST return imports, reconciliation and e-invoicing.
type AdvancedGSTService interface {
	Import(ctx context.Context, input ImportReturnInput) (*ImportResult, error)
	ListGSTR2A(ctx context.Context, tenantID uuid.UUID, period string, offset, limit int) ([]domain.GSTR2ARecord, int, error)
	ListGSTR2B(ctx context.Context, tenantID uuid.UUID, period string, offset, limit int) ([]domain.GSTR2BRecord, int, error)
	ListImports(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTReturnImport, error)
	Reconcile(ctx context.Context, tenantID uuid.UUID, period string) (*reconcile.Report, error)

	GenerateEInvoice(ctx context.Context, tenantID, userID uuid.UUID, input GenerateEInvoiceInput) (*domain.EInvoice, error)
	CancelEInvoice(ctx context.Context, tenantID, id uuid.UUID, input CancelEInvoiceInput) (*domain.EInvoice, error)
	GetEInvoiceBySale(ctx context.Context, tenantID, saleID uuid.UUID) (*domain.EInvoice, error)
}

// AdvancedGSTDeps groups the collaborators of AdvancedGSTService.
type AdvancedGSTDeps struct {
	Tx        port.TxManager
	Returns   port.GSTReturnRepository
	EInvoices port.EInvoiceRepository
	Purchases port.PurchaseOrderRepository
	Sales     port.SaleRepository
	Storage   port.ObjectStorage
	Locker    port.Locker
	S3        *config.S3Config
	GST       *config.GSTConfig
	Log       logrus.FieldLogger
}

type advancedGSTService struct {
	AdvancedGSTDeps
	now func() time.Time
}

// NewAdvancedGSTService creates a new AdvancedGSTService implementation.
func NewAdvancedGSTService(d AdvancedGSTDeps) AdvancedGSTService {
	return &advancedGSTService{AdvancedGSTDeps: d, now: time.Now}
}

// Import archives the raw file, then parses and stores its records in one
// transaction. The archived object is removed again if storing fails.
func (s *advancedGSTService) Import(ctx context.Context, input ImportReturnInput) (*ImportResult, error) {
	period, err := reconcile.ParseFilingPeriod(input.FilingPeriod)
	if err != nil {
		return nil, err
	}
	if limit := s.S3.MaxFileSizeMB * 1024 * 1024; limit > 0 && int64(len(input.Data)) > limit {
		return nil, fmt.Errorf("%w: file exceeds %d MB", domain.ErrInvalidImportFile, s.S3.MaxFileSizeMB)
	}

	var (
		r2a []domain.GSTR2ARecord
		r2b []domain.GSTR2BRecord
	)
	switch input.Kind {
	case domain.ReturnGSTR2A:
		r2a, err = reconcile.ParseGSTR2A(input.Data, period)
	case domain.ReturnGSTR2B:
		r2b, err = reconcile.ParseGSTR2B(input.Data, period)
	default:
		err = fmt.Errorf("%w: return kind %q", domain.ErrInvalidInput, input.Kind)
	}
	if err != nil {
		return nil, err
	}

	importID := uuid.New()
	key := fmt.Sprintf("gstr/%s/%s/%s-%s.json", input.TenantID, period, input.Kind, importID)
	if _, err := s.Storage.Upload(ctx, port.UploadInput{
		Bucket:      s.S3.Bucket,
		Key:         key,
		Body:        bytes.NewReader(input.Data),
		ContentType: "application/json",
		Size:        int64(len(input.Data)),
	}); err != nil {
		logger.LogError(s.Log, "service", "Import", "archive return file", key, err)
		return nil, domain.ErrUploadFailed
	}

	count := len(r2a) + len(r2b)
	err = s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		for i := range r2a {
			r2a[i].TenantID = input.TenantID
		}
		for i := range r2b {
			r2b[i].TenantID = input.TenantID
		}
		if len(r2a) > 0 {
			if err := s.Returns.InsertGSTR2A(txCtx, r2a); err != nil {
				return err
			}
		}
		if len(r2b) > 0 {
			if err := s.Returns.InsertGSTR2B(txCtx, r2b); err != nil {
				return err
			}
		}
		return s.Returns.CreateImport(txCtx, &domain.GSTReturnImport{
			ID:           importID,
			TenantID:     input.TenantID,
			Kind:         input.Kind,
			FilingPeriod: period.String(),
			ObjectKey:    key,
			FileName:     input.FileName,
			RecordCount:  count,
			ImportedBy:   input.UserID,
		})
	})
	if err != nil {
		if delErr := s.Storage.Delete(ctx, s.S3.Bucket, key); delErr != nil {
			logger.LogError(s.Log, "service", "Import", "remove orphaned archive", key, delErr)
		}
		return nil, err
	}

	return &ImportResult{
		ImportID:     importID,
		Imported:     count,
		FilingPeriod: period.String(),
		ObjectKey:    key,
	}, nil
}

func (s *advancedGSTService) ListGSTR2A(ctx context.Context, tenantID uuid.UUID, period string, offset, limit int) ([]domain.GSTR2ARecord, int, error) {
	p, err := reconcile.ParseFilingPeriod(period)
	if err != nil {
		return nil, 0, err
	}
	return s.Returns.ListGSTR2A(ctx, tenantID, p.String(), offset, limit)
}

func (s *advancedGSTService) ListGSTR2B(ctx context.Context, tenantID uuid.UUID, period string, offset, limit int) ([]domain.GSTR2BRecord, int, error) {
	p, err := reconcile.ParseFilingPeriod(period)
	if err != nil {
		return nil, 0, err
	}
	return s.Returns.ListGSTR2B(ctx, tenantID, p.String(), offset, limit)
}

// ListImports returns the period's imports with a download link to each
// archived file.
func (s *advancedGSTService) ListImports(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTReturnImport, error) {
	p, err := reconcile.ParseFilingPeriod(period)
	if err != nil {
		return nil, err
	}
	imports, err := s.Returns.ListImports(ctx, tenantID, p.String())
	if err != nil {
		return nil, err
	}
	for i := range imports {
		url, err := s.Storage.GetPresignedURL(ctx, s.S3.Bucket, imports[i].ObjectKey, s.S3.PresignExpiry)
		if err != nil {
			logger.LogError(s.Log, "service", "ListImports", "presign archive", imports[i].ObjectKey, err)
			continue
		}
		imports[i].DownloadURL = url
	}
	return imports, nil
}

// Reconcile matches the period's imported records against purchase orders and
// flags the matched 2A records. Runs for the same tenant and period are
// serialised by a distributed lock.
func (s *advancedGSTService) Reconcile(ctx context.Context, tenantID uuid.UUID, period string) (*reconcile.Report, error) {
	p, err := reconcile.ParseFilingPeriod(period)
	if err != nil {
		return nil, err
	}

	release, err := s.Locker.Obtain(ctx, fmt.Sprintf("reconcile:%s:%s", tenantID, p), s.GST.ReconcileLockTTL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.LogError(s.Log, "service", "Reconcile", "release lock", p.String(), err)
		}
	}()

	r2a, err := s.Returns.AllGSTR2A(ctx, tenantID, p.String())
	if err != nil {
		return nil, err
	}
	r2b, err := s.Returns.AllGSTR2B(ctx, tenantID, p.String())
	if err != nil {
		return nil, err
	}

	scope := reconcile.PurchaseScope(s.GST.ReconcilePurchaseScope)
	var window *domain.DateRange
	if scope == reconcile.ScopePeriod {
		from, to := p.Bounds()
		window = &domain.DateRange{From: from, To: to.Add(-time.Nanosecond)}
	}
	purchases, err := s.Purchases.ListForReconciliation(ctx, tenantID, window)
	if err != nil {
		return nil, err
	}

	rep := reconcile.Match(p, r2a, r2b, purchases, reconcile.Options{
		Scope:            scope,
		DiscrepancyLimit: s.GST.DiscrepancyLimit,
	})
	if len(rep.MatchedIDs) > 0 {
		if err := s.Returns.MarkMatched(ctx, tenantID, rep.MatchedIDs); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

// GenerateEInvoice registers a simulated IRN for a sale. The IRN is "IRN"
// followed by 32 upper-case hex characters.
func (s *advancedGSTService) GenerateEInvoice(ctx context.Context, tenantID, userID uuid.UUID, input GenerateEInvoiceInput) (*domain.EInvoice, error) {
	sale, err := s.Sales.GetByID(ctx, tenantID, input.SaleID)
	if err != nil {
		return nil, err
	}

	irn, err := newIRN()
	if err != nil {
		return nil, err
	}
	ack, err := newAckNumber()
	if err != nil {
		return nil, err
	}
	e := &domain.EInvoice{
		TenantID:      tenantID,
		SaleID:        sale.ID,
		InvoiceNumber: sale.InvoiceNumber,
		IRN:           irn,
		AckNumber:     ack,
		AckDate:       s.now().UTC(),
		SignedQRCode:  "QR_" + irn,
		Status:        domain.EInvoiceGenerated,
		CreatedBy:     userID,
	}
	if err := s.EInvoices.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *advancedGSTService) CancelEInvoice(ctx context.Context, tenantID, id uuid.UUID, input CancelEInvoiceInput) (*domain.EInvoice, error) {
	reason := strings.TrimSpace(input.Reason)
	if len([]rune(reason)) < minCancelReasonLen {
		return nil, domain.ErrCancelReasonTooShort
	}
	at := s.now().UTC()
	if err := s.EInvoices.Cancel(ctx, tenantID, id, reason, at); err != nil {
		return nil, err
	}
	return s.EInvoices.GetByID(ctx, tenantID, id)
}

func (s *advancedGSTService) GetEInvoiceBySale(ctx context.Context, tenantID, saleID uuid.UUID) (*domain.EInvoice, error) {
	return s.EInvoices.GetBySale(ctx, tenantID, saleID)
}

func newIRN() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating IRN: %w", err)
	}
	return "IRN" + strings.ToUpper(hex.EncodeToString(b)), nil
}

// newAckNumber returns a random 12 digit acknowledgement number.
func newAckNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900_000_000_000))
	if err != nil {
		return "", fmt.Errorf("generating ack number: %w", err)
	}
	return n.Add(n, big.NewInt(100_000_000_000)).String(), nil
}

