package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/middleware"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// Options carries the HTTP-level settings of the engine.
type Options struct {
	Log            logrus.FieldLogger
	AllowedOrigins []string
	Production     bool
	EnableSwagger  bool
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Tenant       *handler.TenantHandler
	User         *handler.UserHandler
	Health       *handler.HealthHandler
	Inventory    *handler.InventoryHandler
	Customer     *handler.CustomerHandler
	Sale         *handler.SaleHandler
	GoldRate     *handler.GoldRateHandler
	KaratPricing *handler.KaratPricingHandler
	Purchase     *handler.PurchaseHandler
	Karigar      *handler.KarigarHandler
	GSTReport    *handler.GSTReportHandler
	AdvancedGST  *handler.AdvancedGSTHandler
	Analytics    *handler.AnalyticsHandler
	Barcode      *handler.BarcodeHandler
	Notification *handler.NotificationHandler
	WS           *handler.WSHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, opts Options) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(opts.Log))
	r.Use(middleware.SecureHeaders(opts.Production))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	if opts.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/ws", middleware.QueryTokenAuth(authSvc), middleware.TenantGuard(), h.WS.Serve)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc), middleware.TenantGuard())

	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	managers := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)

	// Business settings of the caller's tenant
	settings := protected.Group("/settings")
	settings.GET("/business", h.Tenant.GetBusiness)
	settings.PUT("/business", adminOnly, h.Tenant.UpdateBusiness)

	// User management (tenant-scoped)
	users := protected.Group("/users")
	users.GET("/me", h.User.Me)
	users.PUT("/me", h.User.UpdateMe)
	users.POST("", adminOnly, h.User.Create)
	users.GET("", adminOnly, h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", adminOnly, h.User.Update)
	users.DELETE("/:id", adminOnly, h.User.Delete)

	inv := protected.Group("/inventory")
	inv.GET("/categories", h.Inventory.ListCategories)
	inv.POST("/categories", managers, h.Inventory.CreateCategory)
	inv.GET("/products", h.Inventory.ListProducts)
	inv.POST("/products", managers, h.Inventory.CreateProduct)
	inv.GET("/products/:id", h.Inventory.GetProduct)
	inv.PUT("/products/:id", managers, h.Inventory.UpdateProduct)
	inv.DELETE("/products/:id", managers, h.Inventory.DeleteProduct)
	inv.POST("/products/:id/stock", managers, h.Inventory.AdjustStock)
	inv.GET("/products/:id/movements", h.Inventory.ListMovements)
	inv.GET("/low-stock", h.Inventory.ListLowStock)

	customers := protected.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.GetByID)

	sales := protected.Group("/sales")
	sales.POST("", h.Sale.Create)
	sales.GET("", h.Sale.List)
	sales.GET("/summary", h.Sale.Summary)
	sales.GET("/:id", h.Sale.GetByID)

	rates := protected.Group("/gold-rates")
	rates.POST("", managers, h.GoldRate.SetRates)
	rates.GET("/current", h.GoldRate.Current)
	rates.GET("/history", h.GoldRate.History)
	rates.GET("/latest/:purity", h.GoldRate.Latest)
	rates.POST("/apply-to-products", managers, h.GoldRate.ApplyToProducts)

	kp := protected.Group("/karat-pricing")
	kp.GET("", h.KaratPricing.List)
	kp.POST("", managers, h.KaratPricing.Upsert)
	kp.POST("/calculate", h.KaratPricing.Calculate)
	kp.POST("/initialize-defaults", managers, h.KaratPricing.InitializeDefaults)
	kp.GET("/:karat", h.KaratPricing.Get)
	kp.PATCH("/:karat", managers, h.KaratPricing.Patch)

	purchases := protected.Group("/purchases", managers)
	purchases.POST("/suppliers", h.Purchase.CreateSupplier)
	purchases.GET("/suppliers", h.Purchase.ListSuppliers)
	purchases.GET("/suppliers/:id", h.Purchase.GetSupplier)
	purchases.PUT("/suppliers/:id", h.Purchase.UpdateSupplier)
	purchases.POST("/orders", h.Purchase.CreateOrder)
	purchases.GET("/orders", h.Purchase.ListOrders)
	purchases.GET("/orders/:id", h.Purchase.GetOrder)
	purchases.POST("/orders/:id/receive", h.Purchase.ReceiveOrder)
	purchases.POST("/old-gold", h.Purchase.CreateOldGold)
	purchases.GET("/old-gold", h.Purchase.ListOldGold)

	karigars := protected.Group("/karigars", managers)
	karigars.POST("", h.Karigar.Create)
	karigars.GET("", h.Karigar.List)
	karigars.POST("/jobs", h.Karigar.CreateJob)
	karigars.GET("/jobs", h.Karigar.ListJobs)
	karigars.GET("/jobs/:job_id", h.Karigar.GetJob)
	karigars.PUT("/jobs/:job_id", h.Karigar.UpdateJob)
	karigars.GET("/:id", h.Karigar.GetByID)
	karigars.PUT("/:id", h.Karigar.Update)
	karigars.GET("/:id/summary", h.Karigar.Summary)

	reports := protected.Group("/gst-reports", managers)
	reports.GET("/gstr1", h.GSTReport.GSTR1)
	reports.GET("/gstr1/export", h.GSTReport.ExportGSTR1)
	reports.GET("/hsn-summary", h.GSTReport.HSNSummary)
	reports.GET("/gstr3b", h.GSTReport.GSTR3B)
	reports.GET("/itc-reconciliation", h.GSTReport.ITCReconciliation)

	gst := protected.Group("/advanced-gst", managers)
	gst.POST("/gstr2a/import", h.AdvancedGST.ImportGSTR2A)
	gst.POST("/gstr2b/import", h.AdvancedGST.ImportGSTR2B)
	gst.GET("/gstr2a/:period", h.AdvancedGST.ListGSTR2A)
	gst.GET("/gstr2b/:period", h.AdvancedGST.ListGSTR2B)
	gst.GET("/imports/:period", h.AdvancedGST.ListImports)
	gst.GET("/reconciliation/:period", h.AdvancedGST.Reconcile)
	gst.POST("/einvoice/generate", h.AdvancedGST.GenerateEInvoice)
	gst.POST("/einvoice/:id/cancel", h.AdvancedGST.CancelEInvoice)
	gst.GET("/einvoice/sale/:sale_id", h.AdvancedGST.GetEInvoiceBySale)

	analytics := protected.Group("/analytics")
	analytics.GET("/dashboard", h.Analytics.Dashboard)
	analytics.GET("/customers/:id", h.Analytics.Customer)
	analytics.GET("/top-customers", h.Analytics.TopCustomers)
	analytics.GET("/sales-trends", h.Analytics.SalesTrends)
	analytics.GET("/product-performance", h.Analytics.ProductPerformance)

	barcodes := protected.Group("/barcodes")
	barcodes.GET("", h.Barcode.List)
	barcodes.GET("/product/:id", h.Barcode.GetByProduct)
	barcodes.POST("/scan", h.Barcode.Scan)
	barcodes.POST("/generate", managers, h.Barcode.Generate)
	barcodes.POST("/generate-bulk", managers, h.Barcode.GenerateBulk)
	barcodes.POST("/regenerate/:id", managers, h.Barcode.Regenerate)

	notifications := protected.Group("/notifications")
	notifications.GET("", h.Notification.List)
	notifications.GET("/stats", h.Notification.Stats)
	notifications.POST("/invoice/:sale_id", h.Notification.ShareInvoice)

	// Admin routes - tenant management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc), adminOnly)
	admin.POST("/tenants", h.Tenant.Create)
	admin.GET("/tenants", h.Tenant.List)
	admin.GET("/tenants/:id", h.Tenant.GetByID)
	admin.PUT("/tenants/:id", h.Tenant.Update)
	admin.DELETE("/tenants/:id", h.Tenant.Delete)

	return r
}
