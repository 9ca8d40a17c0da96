package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Redis  RedisConfig
	Queue  QueueConfig
	Jobs   JobsConfig
	GST    GSTConfig
	Email  EmailConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// QueueConfig holds notification poll worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxAttempts      int `mapstructure:"max_attempts"`
	Concurrency      int `mapstructure:"concurrency"`
	BatchSize        int `mapstructure:"batch_size"`
}

// JobsConfig holds background task (asynq) settings.
type JobsConfig struct {
	Concurrency int    `mapstructure:"concurrency"`
	Queue       string `mapstructure:"queue"`
}

// RedisConfig holds the Redis connection used by the report cache, locks and jobs.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GSTConfig holds tunables of the GST core.
type GSTConfig struct {
	NumberingPolicy        string        `mapstructure:"numbering_policy"`
	ReconcilePurchaseScope string        `mapstructure:"reconcile_purchase_scope"`
	ReportCacheTTL         time.Duration `mapstructure:"report_cache_ttl"`
	DiscrepancyLimit       int           `mapstructure:"discrepancy_limit"`
	ReconcileLockTTL       time.Duration `mapstructure:"reconcile_lock_ttl"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs with production settings.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the GOLDERP_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GOLDERP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "golderp")
	v.SetDefault("db.password", "golderp_secret")
	v.SetDefault("db.name", "golderp_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "golderp")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "golderp-gst-files")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Redis defaults
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Notification poller defaults
	v.SetDefault("queue.poll_interval_secs", 10)
	v.SetDefault("queue.max_attempts", 3)
	v.SetDefault("queue.concurrency", 5)
	v.SetDefault("queue.batch_size", 20)

	// Background task defaults
	v.SetDefault("jobs.concurrency", 10)
	v.SetDefault("jobs.queue", "default")

	// GST defaults
	v.SetDefault("gst.numbering_policy", "reset")
	v.SetDefault("gst.reconcile_purchase_scope", "all")
	v.SetDefault("gst.report_cache_ttl", "10m")
	v.SetDefault("gst.discrepancy_limit", 20)
	v.SetDefault("gst.reconcile_lock_ttl", "2m")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@golderp.in")
	v.SetDefault("email.from_name", "Gold ERP")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "GOLDERP_SERVER_PORT",
		"server.read_timeout":          "GOLDERP_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "GOLDERP_SERVER_WRITE_TIMEOUT",
		"server.environment":           "GOLDERP_SERVER_ENVIRONMENT",
		"db.host":                      "GOLDERP_DB_HOST",
		"db.port":                      "GOLDERP_DB_PORT",
		"db.user":                      "GOLDERP_DB_USER",
		"db.password":                  "GOLDERP_DB_PASSWORD",
		"db.name":                      "GOLDERP_DB_NAME",
		"db.sslmode":                   "GOLDERP_DB_SSLMODE",
		"db.max_open":                  "GOLDERP_DB_MAX_OPEN",
		"db.max_idle":                  "GOLDERP_DB_MAX_IDLE",
		"jwt.secret":                   "GOLDERP_JWT_SECRET",
		"jwt.access_expiry":            "GOLDERP_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":           "GOLDERP_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                   "GOLDERP_JWT_ISSUER",
		"s3.region":                    "GOLDERP_S3_REGION",
		"s3.bucket":                    "GOLDERP_S3_BUCKET",
		"s3.endpoint":                  "GOLDERP_S3_ENDPOINT",
		"s3.access_key":                "GOLDERP_S3_ACCESS_KEY",
		"s3.secret_key":                "GOLDERP_S3_SECRET_KEY",
		"s3.max_file_size_mb":          "GOLDERP_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":            "GOLDERP_S3_PRESIGN_EXPIRY",
		"log.level":                    "GOLDERP_LOG_LEVEL",
		"log.format":                   "GOLDERP_LOG_FORMAT",
		"cors.allowed_origins":         "GOLDERP_CORS_ALLOWED_ORIGINS",
		"redis.addr":                   "GOLDERP_REDIS_ADDR",
		"redis.password":               "GOLDERP_REDIS_PASSWORD",
		"redis.db":                     "GOLDERP_REDIS_DB",
		"queue.poll_interval_secs":     "GOLDERP_QUEUE_POLL_INTERVAL_SECS",
		"queue.max_attempts":           "GOLDERP_QUEUE_MAX_ATTEMPTS",
		"queue.concurrency":            "GOLDERP_QUEUE_CONCURRENCY",
		"queue.batch_size":             "GOLDERP_QUEUE_BATCH_SIZE",
		"jobs.concurrency":             "GOLDERP_JOBS_CONCURRENCY",
		"jobs.queue":                   "GOLDERP_JOBS_QUEUE",
		"gst.numbering_policy":         "GOLDERP_GST_NUMBERING_POLICY",
		"gst.reconcile_purchase_scope": "GOLDERP_GST_RECONCILE_PURCHASE_SCOPE",
		"gst.report_cache_ttl":         "GOLDERP_GST_REPORT_CACHE_TTL",
		"gst.discrepancy_limit":        "GOLDERP_GST_DISCREPANCY_LIMIT",
		"gst.reconcile_lock_ttl":       "GOLDERP_GST_RECONCILE_LOCK_TTL",
		"email.provider":               "GOLDERP_EMAIL_PROVIDER",
		"email.region":                 "GOLDERP_EMAIL_REGION",
		"email.from_address":           "GOLDERP_EMAIL_FROM_ADDRESS",
		"email.from_name":              "GOLDERP_EMAIL_FROM_NAME",
		"email.frontend_url":           "GOLDERP_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GOLDERP_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GOLDERP_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}

	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		MaxAttempts:      v.GetInt("queue.max_attempts"),
		Concurrency:      v.GetInt("queue.concurrency"),
		BatchSize:        v.GetInt("queue.batch_size"),
	}

	cfg.Jobs = JobsConfig{
		Concurrency: v.GetInt("jobs.concurrency"),
		Queue:       v.GetString("jobs.queue"),
	}

	cfg.GST = GSTConfig{
		NumberingPolicy:        strings.ToLower(v.GetString("gst.numbering_policy")),
		ReconcilePurchaseScope: strings.ToLower(v.GetString("gst.reconcile_purchase_scope")),
		ReportCacheTTL:         v.GetDuration("gst.report_cache_ttl"),
		DiscrepancyLimit:       v.GetInt("gst.discrepancy_limit"),
		ReconcileLockTTL:       v.GetDuration("gst.reconcile_lock_ttl"),
	}
	switch cfg.GST.NumberingPolicy {
	case "reset", "strict":
	default:
		return nil, fmt.Errorf("config: gst.numbering_policy must be reset or strict, got %q", cfg.GST.NumberingPolicy)
	}
	switch cfg.GST.ReconcilePurchaseScope {
	case "all", "period":
	default:
		return nil, fmt.Errorf("config: gst.reconcile_purchase_scope must be all or period, got %q", cfg.GST.ReconcilePurchaseScope)
	}
	if cfg.GST.DiscrepancyLimit <= 0 {
		cfg.GST.DiscrepancyLimit = 20
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	return cfg, nil
}
