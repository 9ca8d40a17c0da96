package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/jobs"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

type fakeRepricer struct {
	calls   int
	tenant  uuid.UUID
	rates   map[string]float64
	updated int
	err     error
}

func (f *fakeRepricer) ApplyRates(_ context.Context, tenantID uuid.UUID, rates map[string]float64) (int, int, error) {
	f.calls++
	f.tenant = tenantID
	f.rates = rates
	return f.updated, 0, f.err
}

type fakeDeliverer struct {
	calls int
	err   error
}

func (f *fakeDeliverer) DeliverPending(context.Context) (int, error) {
	f.calls++
	return 1, f.err
}

func TestNewRepriceTask(t *testing.T) {
	p := port.RepricePayload{TenantID: uuid.New(), Rates: map[string]float64{"22K": 6000}}

	task, err := jobs.NewRepriceTask(p, "")
	require.NoError(t, err)
	assert.Equal(t, jobs.TaskReprice, task.Type())

	var got port.RepricePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &got))
	assert.Equal(t, p, got)
}

func TestHandleReprice(t *testing.T) {
	r := &fakeRepricer{updated: 4}
	h := jobs.NewHandlers(r, &fakeDeliverer{}, logger.Discard())
	tenantID := uuid.New()
	task, err := jobs.NewRepriceTask(port.RepricePayload{TenantID: tenantID, Rates: map[string]float64{"18K": 5000}}, "")
	require.NoError(t, err)

	require.NoError(t, h.HandleReprice(context.Background(), task))
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, tenantID, r.tenant)
	assert.Equal(t, 5000.0, r.rates["18K"])
}

func TestHandleReprice_BadPayloadSkipsRetry(t *testing.T) {
	r := &fakeRepricer{}
	h := jobs.NewHandlers(r, &fakeDeliverer{}, logger.Discard())

	for _, body := range []string{"{", `{"tenant_id":"` + uuid.NewString() + `"}`} {
		err := h.HandleReprice(context.Background(), asynq.NewTask(jobs.TaskReprice, []byte(body)))
		assert.True(t, errors.Is(err, asynq.SkipRetry), body)
	}
	assert.Zero(t, r.calls)
}

func TestHandleReprice_ServiceErrorRetries(t *testing.T) {
	r := &fakeRepricer{err: errors.New("db down")}
	h := jobs.NewHandlers(r, &fakeDeliverer{}, logger.Discard())
	task, err := jobs.NewRepriceTask(port.RepricePayload{TenantID: uuid.New(), Rates: map[string]float64{"22K": 1}}, "")
	require.NoError(t, err)

	err = h.HandleReprice(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleInvoiceEmail(t *testing.T) {
	d := &fakeDeliverer{}
	h := jobs.NewHandlers(&fakeRepricer{}, d, logger.Discard())

	task, err := jobs.NewInvoiceEmailTask(port.InvoiceEmailPayload{NotificationID: uuid.New()}, "mail")
	require.NoError(t, err)
	require.NoError(t, h.HandleInvoiceEmail(context.Background(), task))
	assert.Equal(t, 1, d.calls)

	err = h.HandleInvoiceEmail(context.Background(), asynq.NewTask(jobs.TaskInvoiceEmail, []byte(`{}`)))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Equal(t, 1, d.calls)
}
