package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "reset", cfg.GST.NumberingPolicy)
	assert.Equal(t, "all", cfg.GST.ReconcilePurchaseScope)
	assert.Equal(t, 20, cfg.GST.DiscrepancyLimit)
	assert.Equal(t, 10*time.Minute, cfg.GST.ReportCacheTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_ExplicitServerPortWinsOverPORT(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GOLDERP_SERVER_PORT", ":7000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestLoad_GSTPolicies(t *testing.T) {
	t.Setenv("GOLDERP_GST_NUMBERING_POLICY", "STRICT")
	t.Setenv("GOLDERP_GST_RECONCILE_PURCHASE_SCOPE", "period")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.GST.NumberingPolicy)
	assert.Equal(t, "period", cfg.GST.ReconcilePurchaseScope)
}

func TestLoad_RejectsUnknownNumberingPolicy(t *testing.T) {
	t.Setenv("GOLDERP_GST_NUMBERING_POLICY", "continue")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownPurchaseScope(t *testing.T) {
	t.Setenv("GOLDERP_GST_RECONCILE_PURCHASE_SCOPE", "quarter")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", db.DSN())
}
