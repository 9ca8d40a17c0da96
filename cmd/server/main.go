package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/cloudpospro-design/gold-jwellery-erp/docs"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/cache"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/config"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/email/noop"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/email/ses"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/jobs"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/numbering"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/realtime"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/repository/postgres"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/router"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	s3storage "github.com/cloudpospro-design/gold-jwellery-erp/internal/storage/s3"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
)

// @title                      Gold Jewellery ERP API
// @version                    1.0
// @description                Inventory, billing, purchasing and GST compliance for jewellery retailers.
// @BasePath                   /api/v1
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	lg := logger.New(cfg.Log)
	handler.Logger = lg
	validator.RegisterBindings()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	txm := postgres.NewTxManager(db)
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	counterRepo := postgres.NewCounterRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	productRepo := postgres.NewProductRepo(db)
	movementRepo := postgres.NewStockMovementRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	saleRepo := postgres.NewSaleRepo(db)
	goldRateRepo := postgres.NewGoldRateRepo(db)
	karatPricingRepo := postgres.NewKaratPricingRepo(db)
	supplierRepo := postgres.NewSupplierRepo(db)
	orderRepo := postgres.NewPurchaseOrderRepo(db)
	oldGoldRepo := postgres.NewOldGoldRepo(db)
	karigarRepo := postgres.NewKarigarRepo(db)
	jobRepo := postgres.NewKarigarJobRepo(db)
	returnRepo := postgres.NewGSTReturnRepo(db)
	einvoiceRepo := postgres.NewEInvoiceRepo(db)
	notificationRepo := postgres.NewNotificationRepo(db)
	analyticsRepo := postgres.NewAnalyticsRepo(db)
	barcodeRepo := postgres.NewBarcodeRepo(db)

	hsnLookup, err := validator.LoadHSNLookup(ctx, postgres.NewHSNRepo(db))
	if err != nil {
		lg.WithError(err).Warn("HSN table not loaded, HSN checks disabled")
	}

	// Initialize infrastructure
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	sender, err := newEmailSender(&cfg.Email, lg)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}
	locker := cache.NewLocker(redisClient)
	reportCache := cache.NewReportCache(redisClient, cfg.GST.ReportCacheTTL)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	queue := jobs.NewQueue(asynqClient, cfg.Jobs.Queue)
	defer queue.Close()

	realtime.SetAllowedOrigins(cfg.CORS.AllowedOrigins)
	hub := realtime.NewHub(lg)
	go hub.Run()
	defer hub.Stop()

	policy, err := numbering.ParsePolicy(cfg.GST.NumberingPolicy)
	if err != nil {
		return fmt.Errorf("invalid numbering policy: %w", err)
	}
	numbers := service.NewDocumentNumberer(counterRepo, policy)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	tenantSvc := service.NewTenantService(tenantRepo)
	userSvc := service.NewUserService(userRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	notificationSvc := service.NewNotificationService(service.NotificationDeps{
		Repo:      notificationRepo,
		Users:     userRepo,
		Sales:     saleRepo,
		Customers: customerRepo,
		Tenants:   tenantRepo,
		Sender:    sender,
		Queue:     queue,
		Hub:       hub,
		Log:       lg,
	}, service.NotificationConfig{
		MaxAttempts: cfg.Queue.MaxAttempts,
		BatchSize:   cfg.Queue.BatchSize,
	})
	inventorySvc := service.NewInventoryService(service.InventoryDeps{
		Tx:            txm,
		Categories:    categoryRepo,
		Products:      productRepo,
		Movements:     movementRepo,
		Notifications: notificationSvc,
		HSN:           hsnLookup,
		Log:           lg,
	})
	saleSvc := service.NewSaleService(service.SaleDeps{
		Tx:            txm,
		Tenants:       tenantRepo,
		Customers:     customerRepo,
		Products:      productRepo,
		Movements:     movementRepo,
		Sales:         saleRepo,
		Numbers:       numbers,
		Notifications: notificationSvc,
		ReportCache:   reportCache,
		Log:           lg,
	})
	goldRateSvc := service.NewGoldRateService(service.GoldRateDeps{
		Tx:            txm,
		Rates:         goldRateRepo,
		Queue:         queue,
		Notifications: notificationSvc,
		Log:           lg,
	})
	karatPricingSvc := service.NewKaratPricingService(karatPricingRepo, goldRateRepo)
	purchaseSvc := service.NewPurchaseService(service.PurchaseDeps{
		Tx:          txm,
		Tenants:     tenantRepo,
		Suppliers:   supplierRepo,
		Orders:      orderRepo,
		Products:    productRepo,
		Movements:   movementRepo,
		OldGold:     oldGoldRepo,
		Numbers:     numbers,
		ReportCache: reportCache,
		Log:         lg,
	})
	karigarSvc := service.NewKarigarService(service.KarigarDeps{
		Tx:       txm,
		Karigars: karigarRepo,
		Jobs:     jobRepo,
		Numbers:  numbers,
		Log:      lg,
	})
	reportSvc := service.NewGSTReportService(service.GSTReportDeps{
		Tenants:   tenantRepo,
		Sales:     saleRepo,
		Purchases: orderRepo,
		Suppliers: supplierRepo,
		Cache:     reportCache,
	})
	advancedGSTSvc := service.NewAdvancedGSTService(service.AdvancedGSTDeps{
		Tx:        txm,
		Returns:   returnRepo,
		EInvoices: einvoiceRepo,
		Purchases: orderRepo,
		Sales:     saleRepo,
		Storage:   s3Client,
		Locker:    locker,
		S3:        &cfg.S3,
		GST:       &cfg.GST,
		Log:       lg,
	})
	analyticsSvc := service.NewAnalyticsService(service.AnalyticsDeps{
		Analytics: analyticsRepo,
		Customers: customerRepo,
		Cache:     reportCache,
	})
	barcodeSvc := service.NewBarcodeService(service.BarcodeDeps{
		Tx:       txm,
		Barcodes: barcodeRepo,
		Products: productRepo,
		Rates:    goldRateRepo,
		Log:      lg,
	})

	// Setup router
	r := router.Setup(authSvc, router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Tenant:       handler.NewTenantHandler(tenantSvc),
		User:         handler.NewUserHandler(userSvc),
		Health:       handler.NewHealthHandler(db, redisClient),
		Inventory:    handler.NewInventoryHandler(inventorySvc),
		Customer:     handler.NewCustomerHandler(customerSvc),
		Sale:         handler.NewSaleHandler(saleSvc),
		GoldRate:     handler.NewGoldRateHandler(goldRateSvc),
		KaratPricing: handler.NewKaratPricingHandler(karatPricingSvc),
		Purchase:     handler.NewPurchaseHandler(purchaseSvc),
		Karigar:      handler.NewKarigarHandler(karigarSvc),
		GSTReport:    handler.NewGSTReportHandler(reportSvc, tenantSvc),
		AdvancedGST:  handler.NewAdvancedGSTHandler(advancedGSTSvc),
		Analytics:    handler.NewAnalyticsHandler(analyticsSvc),
		Barcode:      handler.NewBarcodeHandler(barcodeSvc),
		Notification: handler.NewNotificationHandler(notificationSvc),
		WS:           handler.NewWSHandler(hub),
	}, router.Options{
		Log:            lg,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Production:     cfg.Server.IsProduction(),
		EnableSwagger:  !cfg.Server.IsProduction(),
	})

	// Poll worker picks up emails the task queue missed.
	worker := service.NewNotificationWorker(notificationRepo, notificationSvc, service.NotificationWorkerConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		MaxAttempts:  cfg.Queue.MaxAttempts,
		Concurrency:  cfg.Queue.Concurrency,
	}, lg)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.WithField("addr", cfg.Server.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			stop()
			<-workerDone
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.WithError(err).Error("graceful shutdown failed")
	}
	<-workerDone
	return nil
}

func newEmailSender(cfg *config.EmailConfig, lg logrus.FieldLogger) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
	case "", "noop":
		return noop.NewNoopSender(lg), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
