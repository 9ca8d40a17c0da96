package realtime_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/realtime"
)

func dial(t *testing.T, srv *httptest.Server, tenant string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?tenant=" + tenant
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_PublishReachesOnlyTenantClients(t *testing.T) {
	hub := realtime.NewHub(logger.Discard())
	go hub.Run()
	defer hub.Stop()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := uuid.MustParse(r.URL.Query().Get("tenant"))
		_ = hub.Serve(w, r, tenantID)
	}))
	defer srv.Close()

	tenantA, tenantB := uuid.New(), uuid.New()
	connA := dial(t, srv, tenantA.String())
	connB := dial(t, srv, tenantB.String())

	// registration is asynchronous
	time.Sleep(100 * time.Millisecond)

	hub.Publish(tenantA, port.Event{Type: "gold_rate_updated", Data: map[string]float64{"22K": 6800}})

	_ = connA.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := connA.ReadMessage()
	require.NoError(t, err)

	var ev struct {
		Type string             `json:"type"`
		Data map[string]float64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg, &ev))
	assert.Equal(t, "gold_rate_updated", ev.Type)
	assert.Equal(t, 6800.0, ev.Data["22K"])

	_ = connB.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = connB.ReadMessage()
	assert.Error(t, err)
}

func TestHub_PublishAfterStopDoesNotBlock(t *testing.T) {
	hub := realtime.NewHub(logger.Discard())
	go hub.Run()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish(uuid.New(), port.Event{Type: "stock_alert"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked after Stop")
	}
}
