package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/notify"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// Realtime event types pushed to connected clients.
const (
	EventStockAlert = "stock_alert"
	EventGoldRates  = "gold_rates"
)

// ShareInvoiceInput is the DTO for emailing an invoice. Email defaults to the
// customer's address on file.
type ShareInvoiceInput struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// NotificationConfig bounds delivery retries.
type NotificationConfig struct {
	MaxAttempts int
	BatchSize   int
}

// NotificationService queues, lists and delivers notifications.
type NotificationService interface {
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Notification, int, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*domain.NotificationStats, error)
	NotifyLowStock(ctx context.Context, tenantID uuid.UUID, changes []domain.StockChange) error
	NotifyRateUpdate(ctx context.Context, tenantID uuid.UUID, rates []domain.GoldRate) error
	ShareInvoice(ctx context.Context, tenantID, saleID uuid.UUID, input ShareInvoiceInput) (*domain.Notification, error)
	// Deliver sends one claimed email notification and records the outcome.
	Deliver(ctx context.Context, n *domain.Notification) error
	// DeliverPending claims and delivers one batch of pending emails.
	DeliverPending(ctx context.Context) (int, error)
}

type notificationService struct {
	repo      port.NotificationRepository
	users     port.UserRepository
	sales     port.SaleRepository
	customers port.CustomerRepository
	tenants   port.TenantRepository
	sender    port.EmailSender
	queue     port.TaskQueue
	hub       port.Broadcaster
	cfg       NotificationConfig
	log       logrus.FieldLogger
}

// NotificationDeps groups the collaborators of NotificationService.
type NotificationDeps struct {
	Repo      port.NotificationRepository
	Users     port.UserRepository
	Sales     port.SaleRepository
	Customers port.CustomerRepository
	Tenants   port.TenantRepository
	Sender    port.EmailSender
	Queue     port.TaskQueue
	Hub       port.Broadcaster
	Log       logrus.FieldLogger
}

// NewNotificationService creates a new NotificationService implementation.
// Queue and Hub are optional.
func NewNotificationService(d NotificationDeps, cfg NotificationConfig) NotificationService {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	return &notificationService{
		repo:      d.Repo,
		users:     d.Users,
		sales:     d.Sales,
		customers: d.Customers,
		tenants:   d.Tenants,
		sender:    d.Sender,
		queue:     d.Queue,
		hub:       d.Hub,
		cfg:       cfg,
		log:       d.Log,
	}
}

func (s *notificationService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Notification, int, error) {
	return s.repo.List(ctx, tenantID, offset, limit)
}

func (s *notificationService) Stats(ctx context.Context, tenantID uuid.UUID) (*domain.NotificationStats, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.repo.Stats(ctx, tenantID, dayStart)
}

func (s *notificationService) NotifyLowStock(ctx context.Context, tenantID uuid.UUID, changes []domain.StockChange) error {
	if len(changes) == 0 {
		return nil
	}
	recipients, err := s.users.ListByRoles(ctx, tenantID, domain.RoleAdmin, domain.RoleManager)
	if err != nil {
		return fmt.Errorf("notification.NotifyLowStock: %w", err)
	}

	for i := range changes {
		c := &changes[i]
		content := notify.LowStock(c.Name, c.SKU, c.Quantity, c.Threshold)
		if err := s.fanOut(ctx, tenantID, domain.NotificationStockAlert, content, recipients); err != nil {
			return err
		}
		s.publish(tenantID, EventStockAlert, map[string]any{
			"product_id": c.ProductID,
			"name":       c.Name,
			"sku":        c.SKU,
			"quantity":   c.Quantity,
			"threshold":  c.Threshold,
		})
	}
	return nil
}

func (s *notificationService) NotifyRateUpdate(ctx context.Context, tenantID uuid.UUID, rates []domain.GoldRate) error {
	if len(rates) == 0 {
		return nil
	}
	s.publish(tenantID, EventGoldRates, rates)

	recipients, err := s.users.ListByRoles(ctx, tenantID, domain.RoleAdmin, domain.RoleManager, domain.RoleStaff)
	if err != nil {
		return fmt.Errorf("notification.NotifyRateUpdate: %w", err)
	}
	return s.fanOut(ctx, tenantID, domain.NotificationRateUpdate, notify.RateUpdate(rates), recipients)
}

// fanOut records one in-app notification plus one pending email per recipient.
func (s *notificationService) fanOut(ctx context.Context, tenantID uuid.UUID, typ domain.NotificationType, c notify.Content, recipients []domain.User) error {
	now := time.Now().UTC()
	inApp := &domain.Notification{
		TenantID: tenantID,
		Type:     typ,
		Channel:  domain.ChannelInApp,
		Subject:  c.Subject,
		Message:  c.Body,
		Status:   domain.NotificationSent,
		SentAt:   &now,
	}
	if err := s.repo.Create(ctx, inApp); err != nil {
		return fmt.Errorf("notification.fanOut: %w", err)
	}
	for i := range recipients {
		u := &recipients[i]
		if u.Email == "" {
			continue
		}
		n := &domain.Notification{
			TenantID:       tenantID,
			Type:           typ,
			Channel:        domain.ChannelEmail,
			RecipientID:    &u.ID,
			RecipientEmail: u.Email,
			Subject:        c.Subject,
			Message:        c.Body,
			Status:         domain.NotificationPending,
		}
		if err := s.repo.Create(ctx, n); err != nil {
			return fmt.Errorf("notification.fanOut: %w", err)
		}
	}
	return nil
}

func (s *notificationService) ShareInvoice(ctx context.Context, tenantID, saleID uuid.UUID, input ShareInvoiceInput) (*domain.Notification, error) {
	sale, err := s.sales.GetByID(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	to := strings.TrimSpace(input.Email)
	if to == "" {
		customer, err := s.customers.GetByID(ctx, tenantID, sale.CustomerID)
		if err != nil {
			return nil, err
		}
		to = customer.Email
	}
	if to == "" {
		return nil, fmt.Errorf("%w: customer has no email address", domain.ErrInvalidInput)
	}

	content := notify.Invoice(tenant.Name, sale)
	n := &domain.Notification{
		TenantID:       tenantID,
		Type:           domain.NotificationInvoiceShared,
		Channel:        domain.ChannelEmail,
		RecipientEmail: to,
		Subject:        content.Subject,
		Message:        content.Body,
		Status:         domain.NotificationPending,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	// The poll worker delivers the row anyway; the task only makes it prompt.
	if s.queue != nil {
		if _, err := s.queue.EnqueueInvoiceEmail(ctx, port.InvoiceEmailPayload{NotificationID: n.ID}); err != nil {
			logger.LogError(s.log, "service", "ShareInvoice", "enqueue invoice email", n.ID, err)
		}
	}
	return n, nil
}

func (s *notificationService) Deliver(ctx context.Context, n *domain.Notification) error {
	err := s.sender.Send(ctx, port.EmailMessage{
		ToEmail:  n.RecipientEmail,
		Subject:  n.Subject,
		TextBody: n.Message,
	})
	if err == nil {
		if markErr := s.repo.MarkSent(ctx, n.ID, time.Now().UTC()); markErr != nil {
			return fmt.Errorf("notification.Deliver: %w", markErr)
		}
		return nil
	}

	final := n.Attempts >= s.cfg.MaxAttempts
	s.log.WithFields(logrus.Fields{
		"notification_id": n.ID,
		"attempt":         n.Attempts,
		"final":           final,
	}).WithError(err).Warn("email delivery failed")
	if markErr := s.repo.MarkFailed(ctx, n.ID, err.Error(), final); markErr != nil {
		return fmt.Errorf("notification.Deliver: %w", markErr)
	}
	return err
}

func (s *notificationService) DeliverPending(ctx context.Context) (int, error) {
	batch, err := s.repo.ClaimPending(ctx, s.cfg.BatchSize, s.cfg.MaxAttempts)
	if err != nil {
		return 0, fmt.Errorf("notification.DeliverPending: %w", err)
	}
	sent := 0
	for i := range batch {
		if err := s.Deliver(ctx, &batch[i]); err == nil {
			sent++
		}
	}
	return sent, nil
}

func (s *notificationService) publish(tenantID uuid.UUID, typ string, data any) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(tenantID, port.Event{Type: typ, Data: data})
}
