// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"loomstock/internal/core/entity"
	"loomstock/internal/core/id"
	"loomstock/internal/domain/approval"
	"loomstock/internal/domain/auth"
	"loomstock/internal/domain/catalogs/binlocation"
	"loomstock/internal/domain/catalogs/category"
	"loomstock/internal/domain/catalogs/item"
	"loomstock/internal/domain/catalogs/supplier"
	"loomstock/internal/domain/catalogs/taxhsn"
	"loomstock/internal/domain/catalogs/uom"
	"loomstock/internal/domain/catalogs/warehouse"
	"loomstock/internal/domain/documents/adjustment"
	"loomstock/internal/domain/documents/deptreturn"
	"loomstock/internal/domain/documents/grn"
	"loomstock/internal/domain/documents/issue"
	"loomstock/internal/domain/documents/purchaseindent"
	"loomstock/internal/domain/documents/purchaseorder"
	"loomstock/internal/domain/documents/qualitycheck"
	"loomstock/internal/domain/documents/stockinward"
	"loomstock/internal/domain/documents/stocktransfer"
	"loomstock/internal/domain/ledger"
	"loomstock/internal/domain/reports"
	"loomstock/internal/infrastructure/http/v1/handlers"
	"loomstock/internal/infrastructure/http/v1/middleware"
	"loomstock/internal/infrastructure/storage/postgres"
	"loomstock/internal/infrastructure/storage/postgres/auth_repo"
	"loomstock/internal/infrastructure/storage/postgres/catalog_repo"
	"loomstock/internal/infrastructure/storage/postgres/document_repo"
	"loomstock/internal/infrastructure/storage/postgres/register_repo"
	"loomstock/internal/infrastructure/storage/postgres/report_repo"
	"loomstock/pkg/logger"
	"loomstock/pkg/numerator"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	Pool      *postgres.Pool
	TxManager *postgres.TxManager
	Logger    *logger.Logger

	// JWTService validates bearer tokens and signs new ones.
	JWTService *auth.JWTService

	// Audit, when set, records master-data changes into the audit log.
	Audit *postgres.AuditService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters).
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	txm := cfg.TxManager

	var auditor handlers.Auditor
	if cfg.Audit != nil {
		auditor = cfg.Audit
	}
	base := handlers.NewBaseHandler(auditor)

	// Shared infrastructure services.
	seq := numerator.New(postgres.NewQuerierAdapter(txm))
	flowSvc := approval.NewService(catalog_repo.NewApprovalFlowRepo(txm), txm)
	authSvc := auth.NewService(auth_repo.NewUserRepo(txm), cfg.JWTService, txm)
	ledgerSvc := ledger.NewService(register_repo.NewStockBalanceRepo(txm))

	// Masters.
	warehouseRepo := catalog_repo.NewWarehouseRepo(txm)
	categorySvc := category.NewService(catalog_repo.NewCategoryRepo(txm), txm)
	itemSvc := item.NewService(catalog_repo.NewItemRepo(txm), txm)
	uomSvc := uom.NewService(catalog_repo.NewUOMRepo(txm), txm)
	supplierSvc := supplier.NewService(catalog_repo.NewSupplierRepo(txm), txm)
	warehouseSvc := warehouse.NewService(warehouseRepo, txm)
	binLocationSvc := binlocation.NewService(catalog_repo.NewBinLocationRepo(txm), txm)
	taxHSNSvc := taxhsn.NewService(catalog_repo.NewTaxHSNRepo(txm), txm)

	registerAuditHooks(categorySvc.CatalogService, cfg.Audit, "item_category")
	registerAuditHooks(itemSvc.CatalogService, cfg.Audit, "item")
	registerAuditHooks(uomSvc.CatalogService, cfg.Audit, "uom")
	registerAuditHooks(supplierSvc.CatalogService, cfg.Audit, "supplier")
	registerAuditHooks(warehouseSvc.CatalogService, cfg.Audit, "warehouse")
	registerAuditHooks(binLocationSvc.CatalogService, cfg.Audit, "bin_location")
	registerAuditHooks(taxHSNSvc.CatalogService, cfg.Audit, "tax_hsn")

	// Documents.
	grnSvc := grn.NewService(document_repo.NewGRNRepo(txm), seq, txm)
	qcSvc := qualitycheck.NewService(document_repo.NewQualityCheckRepo(txm), grnSvc, seq, txm)
	inwardSvc := stockinward.NewService(document_repo.NewStockInwardRepo(txm), ledgerSvc, warehouseRepo, seq, txm)
	transferSvc := stocktransfer.NewService(document_repo.NewStockTransferRepo(txm), seq, txm)
	issueRepo := document_repo.NewIssueRepo(txm)
	issueSvc := issue.NewService(issueRepo, ledgerSvc, seq, txm)
	returnSvc := deptreturn.NewService(document_repo.NewReturnRepo(txm), ledgerSvc, seq, txm)
	adjustmentSvc := adjustment.NewService(document_repo.NewAdjustmentRepo(txm), seq, txm)
	poSvc := purchaseorder.NewService(document_repo.NewPurchaseOrderRepo(txm), flowSvc, seq, txm)
	indentSvc := purchaseindent.NewService(document_repo.NewPurchaseIndentRepo(txm), seq, txm)

	reportsSvc := reports.NewService(report_repo.NewMastersStatsRepo(txm), ledgerSvc, issueRepo, poSvc)

	// Handlers.
	authHandler := handlers.NewAuthHandler(base, authSvc)
	purchaseHandler := handlers.NewPurchaseHandler(base, indentSvc, poSvc)
	inventoryHandler := handlers.NewInventoryHandler(base, grnSvc, inwardSvc, transferSvc, issueSvc, returnSvc, adjustmentSvc, ledgerSvc)
	qualityHandler := handlers.NewQualityHandler(base, qcSvc)
	reportsHandler := handlers.NewReportsHandler(base, reportsSvc)
	settingsHandler := handlers.NewSettingsHandler(base, flowSvc, seq)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)

	// Health endpoints (no auth).
	health := router.Group("/health")
	{
		health.GET("", healthHandler.Live)
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	api := router.Group("/api")
	{
		// Public auth endpoints.
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTService))

		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/users", middleware.RequireRole("Admin"), authHandler.ListUsers)

		registerMasterRoutes(protected, base,
			categorySvc, itemSvc, uomSvc, supplierSvc, warehouseSvc, binLocationSvc, taxHSNSvc)

		purchase := protected.Group("/purchase")
		{
			purchase.POST("/indents", middleware.RequireRole("Purchase", "Store"), purchaseHandler.CreateIndent)
			purchase.GET("/indents", purchaseHandler.ListIndents)
			purchase.GET("/indents/:id", purchaseHandler.GetIndent)
			purchase.POST("/indents/:id/approve", middleware.RequireRole("Admin"), purchaseHandler.ApproveIndent)
			purchase.POST("/indents/:id/reject", middleware.RequireRole("Admin"), purchaseHandler.RejectIndent)

			purchase.POST("/orders", middleware.RequireRole("Purchase"), purchaseHandler.CreateOrder)
			purchase.GET("/orders", purchaseHandler.ListOrders)
			purchase.GET("/orders/:id", purchaseHandler.GetOrder)
			purchase.POST("/orders/:id/submit", middleware.RequireRole("Purchase"), purchaseHandler.SubmitOrder)
			purchase.POST("/orders/:id/approve", middleware.RequireRole("Admin"), purchaseHandler.ApproveOrder)
			purchase.POST("/orders/:id/reject", middleware.RequireRole("Admin"), purchaseHandler.RejectOrder)
		}

		inventory := protected.Group("/inventory")
		{
			inventory.POST("/grn", middleware.RequireRole("Store"), inventoryHandler.CreateGRN)
			inventory.GET("/grn", inventoryHandler.ListGRNs)
			inventory.GET("/grn/:id", inventoryHandler.GetGRN)

			inventory.POST("/stock-inward", middleware.RequireRole("Store"), inventoryHandler.CreateInward)
			inventory.GET("/stock-inward", inventoryHandler.ListInwards)
			inventory.GET("/stock-inward/:id", inventoryHandler.GetInward)

			inventory.POST("/stock-transfer", middleware.RequireRole("Store"), inventoryHandler.CreateTransfer)
			inventory.GET("/stock-transfer", inventoryHandler.ListTransfers)
			inventory.GET("/stock-transfer/:id", inventoryHandler.GetTransfer)
			inventory.POST("/stock-transfer/:id/approve", middleware.RequireRole("Admin"), inventoryHandler.ApproveTransfer)
			inventory.POST("/stock-transfer/:id/reject", middleware.RequireRole("Admin"), inventoryHandler.RejectTransfer)

			inventory.POST("/issue", middleware.RequireRole("Store"), inventoryHandler.CreateIssue)
			inventory.GET("/issue", inventoryHandler.ListIssues)
			inventory.GET("/issue/:id", inventoryHandler.GetIssue)

			inventory.POST("/return", middleware.RequireRole("Store"), inventoryHandler.CreateReturn)
			inventory.GET("/return", inventoryHandler.ListReturns)
			inventory.GET("/return/:id", inventoryHandler.GetReturn)

			inventory.POST("/adjustment", middleware.RequireRole("Store"), inventoryHandler.CreateAdjustment)
			inventory.GET("/adjustment", inventoryHandler.ListAdjustments)
			inventory.GET("/adjustment/:id", inventoryHandler.GetAdjustment)
			inventory.POST("/adjustment/:id/approve", middleware.RequireRole("Admin"), inventoryHandler.ApproveAdjustment)
			inventory.POST("/adjustment/:id/reject", middleware.RequireRole("Admin"), inventoryHandler.RejectAdjustment)

			inventory.GET("/stock-balance", inventoryHandler.StockBalance)
		}

		quality := protected.Group("/quality")
		{
			quality.POST("/checks", middleware.RequireRole("QC"), qualityHandler.CreateCheck)
			quality.GET("/checks", qualityHandler.ListChecks)
			quality.GET("/checks/:id", qualityHandler.GetCheck)
		}

		protected.GET("/dashboard/stats", reportsHandler.DashboardStats)

		report := protected.Group("/reports")
		{
			report.GET("/stock-ledger", reportsHandler.StockLedger)
			report.GET("/issue-register", reportsHandler.IssueRegister)
			report.GET("/pending-po", reportsHandler.PendingPOs)
		}

		settings := protected.Group("/settings")
		{
			settings.POST("/approval-flows", middleware.RequireRole("Admin"), settingsHandler.CreateApprovalFlow)
			settings.GET("/approval-flows", settingsHandler.ListApprovalFlows)
			settings.GET("/number-series", settingsHandler.ListNumberSeries)
		}
	}

	return router
}

// registerMasterRoutes wires the generic CRUD handlers for each master.
func registerMasterRoutes(
	rg *gin.RouterGroup,
	base *handlers.BaseHandler,
	categorySvc *category.Service,
	itemSvc *item.Service,
	uomSvc *uom.Service,
	supplierSvc *supplier.Service,
	warehouseSvc *warehouse.Service,
	binLocationSvc *binlocation.Service,
	taxHSNSvc *taxhsn.Service,
) {
	masters := rg.Group("/masters")
	write := middleware.RequireRole("Store", "Purchase")

	mountCatalog(masters, "/item-categories", write, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*category.Category]{
		Service: categorySvc.CatalogService,
		New:     func() *category.Category { return &category.Category{} },
		SetID:   func(e *category.Category, entityID id.ID) { e.ID = entityID },
	}))
	mountCatalog(masters, "/items", write, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*item.Item]{
		Service: itemSvc.CatalogService,
		New:     func() *item.Item { return &item.Item{} },
		SetID:   func(e *item.Item, entityID id.ID) { e.ID = entityID },
	}))
	mountCatalog(masters, "/uoms", write, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*uom.UOM]{
		Service: uomSvc.CatalogService,
		New:     func() *uom.UOM { return &uom.UOM{} },
		SetID:   func(e *uom.UOM, entityID id.ID) { e.ID = entityID },
	}))
	mountCatalog(masters, "/suppliers", write, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*supplier.Supplier]{
		Service: supplierSvc.CatalogService,
		New:     func() *supplier.Supplier { return &supplier.Supplier{} },
		SetID:   func(e *supplier.Supplier, entityID id.ID) { e.ID = entityID },
	}))
	mountCatalog(masters, "/warehouses", write, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*warehouse.Warehouse]{
		Service: warehouseSvc.CatalogService,
		New:     func() *warehouse.Warehouse { return &warehouse.Warehouse{} },
		SetID:   func(e *warehouse.Warehouse, entityID id.ID) { e.ID = entityID },
	}))
	mountCatalog(masters, "/bin-locations", write, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*binlocation.BinLocation]{
		Service: binLocationSvc.CatalogService,
		New:     func() *binlocation.BinLocation { return &binlocation.BinLocation{} },
		SetID:   func(e *binlocation.BinLocation, entityID id.ID) { e.ID = entityID },
	}))
	mountCatalog(masters, "/tax-hsn", write, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*taxhsn.TaxHSN]{
		Service: taxHSNSvc.CatalogService,
		New:     func() *taxhsn.TaxHSN { return &taxhsn.TaxHSN{} },
		SetID:   func(e *taxhsn.TaxHSN, entityID id.ID) { e.ID = entityID },
	}))
}

// mountCatalog registers the standard CRUD routes for one master.
func mountCatalog[T entity.Validatable](rg *gin.RouterGroup, path string, write gin.HandlerFunc, h *handlers.CatalogHandler[T]) {
	rg.GET(path, h.List)
	rg.GET(path+"/:id", h.Get)
	rg.POST(path, write, h.Create)
	rg.PUT(path+"/:id", write, h.Update)
	rg.DELETE(path+"/:id", write, h.Delete)
}
