package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/domain/documents/adjustment"
	"loomstock/internal/domain/documents/deptreturn"
	"loomstock/internal/domain/documents/grn"
	"loomstock/internal/domain/documents/issue"
	"loomstock/internal/domain/documents/stockinward"
	"loomstock/internal/domain/documents/stocktransfer"
	"loomstock/internal/domain/ledger"
	"loomstock/internal/infrastructure/storage/postgres"
)

// InventoryHandler handles warehouse-side document endpoints and the stock
// balance view.
type InventoryHandler struct {
	*BaseHandler
	grns        *grn.Service
	inwards     *stockinward.Service
	transfers   *stocktransfer.Service
	issues      *issue.Service
	returns     *deptreturn.Service
	adjustments *adjustment.Service
	balances    *ledger.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(
	base *BaseHandler,
	grns *grn.Service,
	inwards *stockinward.Service,
	transfers *stocktransfer.Service,
	issues *issue.Service,
	returns *deptreturn.Service,
	adjustments *adjustment.Service,
	balances *ledger.Service,
) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: base,
		grns:        grns,
		inwards:     inwards,
		transfers:   transfers,
		issues:      issues,
		returns:     returns,
		adjustments: adjustments,
		balances:    balances,
	}
}

// CreateGRN handles POST /inventory/grn.
func (h *InventoryHandler) CreateGRN(c *gin.Context) {
	var doc grn.GRN
	if !h.BindJSON(c, &doc) {
		return
	}

	if err := h.grns.Create(c.Request.Context(), &doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "grn", doc.ID, postgres.AuditActionCreate, postgres.StructToMap(&doc))
	h.Created(c, &doc)
}

// ListGRNs handles GET /inventory/grn.
func (h *InventoryHandler) ListGRNs(c *gin.Context) {
	filter := grn.ListFilter{
		POID:   c.Query("po_id"),
		Status: c.Query("status"),
	}

	docs, err := h.grns.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, docs)
}

// GetGRN handles GET /inventory/grn/:id.
func (h *InventoryHandler) GetGRN(c *gin.Context) {
	h.getDoc(c, func(ctx context.Context, docID id.ID) (any, error) {
		return h.grns.GetByID(ctx, docID)
	})
}

// CreateInward handles POST /inventory/stock-inward.
func (h *InventoryHandler) CreateInward(c *gin.Context) {
	var doc stockinward.StockInward
	if !h.BindJSON(c, &doc) {
		return
	}

	if err := h.inwards.Create(c.Request.Context(), &doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "stock_inward", doc.ID, postgres.AuditActionCreate, postgres.StructToMap(&doc))
	h.Created(c, &doc)
}

// ListInwards handles GET /inventory/stock-inward.
func (h *InventoryHandler) ListInwards(c *gin.Context) {
	docs, err := h.inwards.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, docs)
}

// GetInward handles GET /inventory/stock-inward/:id.
func (h *InventoryHandler) GetInward(c *gin.Context) {
	h.getDoc(c, func(ctx context.Context, docID id.ID) (any, error) {
		return h.inwards.GetByID(ctx, docID)
	})
}

// CreateTransfer handles POST /inventory/stock-transfer.
func (h *InventoryHandler) CreateTransfer(c *gin.Context) {
	var doc stocktransfer.StockTransfer
	if !h.BindJSON(c, &doc) {
		return
	}

	if err := h.transfers.Create(c.Request.Context(), &doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "stock_transfer", doc.ID, postgres.AuditActionCreate, postgres.StructToMap(&doc))
	h.Created(c, &doc)
}

// ListTransfers handles GET /inventory/stock-transfer.
func (h *InventoryHandler) ListTransfers(c *gin.Context) {
	docs, err := h.transfers.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, docs)
}

// GetTransfer handles GET /inventory/stock-transfer/:id.
func (h *InventoryHandler) GetTransfer(c *gin.Context) {
	h.getDoc(c, func(ctx context.Context, docID id.ID) (any, error) {
		return h.transfers.GetByID(ctx, docID)
	})
}

// ApproveTransfer handles POST /inventory/stock-transfer/:id/approve.
func (h *InventoryHandler) ApproveTransfer(c *gin.Context) {
	h.decide(c, "stock_transfer", postgres.AuditActionApprove, h.transfers.Approve, "stock transfer approved")
}

// RejectTransfer handles POST /inventory/stock-transfer/:id/reject.
func (h *InventoryHandler) RejectTransfer(c *gin.Context) {
	h.decide(c, "stock_transfer", postgres.AuditActionReject, h.transfers.Reject, "stock transfer rejected")
}

// CreateIssue handles POST /inventory/issue.
func (h *InventoryHandler) CreateIssue(c *gin.Context) {
	var doc issue.Issue
	if !h.BindJSON(c, &doc) {
		return
	}

	if err := h.issues.Create(c.Request.Context(), &doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "issue", doc.ID, postgres.AuditActionCreate, postgres.StructToMap(&doc))
	h.Created(c, &doc)
}

// ListIssues handles GET /inventory/issue.
func (h *InventoryHandler) ListIssues(c *gin.Context) {
	docs, err := h.issues.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, docs)
}

// GetIssue handles GET /inventory/issue/:id.
func (h *InventoryHandler) GetIssue(c *gin.Context) {
	h.getDoc(c, func(ctx context.Context, docID id.ID) (any, error) {
		return h.issues.GetByID(ctx, docID)
	})
}

// CreateReturn handles POST /inventory/return.
func (h *InventoryHandler) CreateReturn(c *gin.Context) {
	var doc deptreturn.Return
	if !h.BindJSON(c, &doc) {
		return
	}

	if err := h.returns.Create(c.Request.Context(), &doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "return", doc.ID, postgres.AuditActionCreate, postgres.StructToMap(&doc))
	h.Created(c, &doc)
}

// ListReturns handles GET /inventory/return.
func (h *InventoryHandler) ListReturns(c *gin.Context) {
	docs, err := h.returns.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, docs)
}

// GetReturn handles GET /inventory/return/:id.
func (h *InventoryHandler) GetReturn(c *gin.Context) {
	h.getDoc(c, func(ctx context.Context, docID id.ID) (any, error) {
		return h.returns.GetByID(ctx, docID)
	})
}

// CreateAdjustment handles POST /inventory/adjustment.
func (h *InventoryHandler) CreateAdjustment(c *gin.Context) {
	var doc adjustment.Adjustment
	if !h.BindJSON(c, &doc) {
		return
	}

	if err := h.adjustments.Create(c.Request.Context(), &doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "adjustment", doc.ID, postgres.AuditActionCreate, postgres.StructToMap(&doc))
	h.Created(c, &doc)
}

// ListAdjustments handles GET /inventory/adjustment.
func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	docs, err := h.adjustments.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, docs)
}

// GetAdjustment handles GET /inventory/adjustment/:id.
func (h *InventoryHandler) GetAdjustment(c *gin.Context) {
	h.getDoc(c, func(ctx context.Context, docID id.ID) (any, error) {
		return h.adjustments.GetByID(ctx, docID)
	})
}

// ApproveAdjustment handles POST /inventory/adjustment/:id/approve.
func (h *InventoryHandler) ApproveAdjustment(c *gin.Context) {
	h.decide(c, "adjustment", postgres.AuditActionApprove, h.adjustments.Approve, "stock adjustment approved")
}

// RejectAdjustment handles POST /inventory/adjustment/:id/reject.
func (h *InventoryHandler) RejectAdjustment(c *gin.Context) {
	h.decide(c, "adjustment", postgres.AuditActionReject, h.adjustments.Reject, "stock adjustment rejected")
}

// StockBalance handles GET /inventory/stock-balance.
func (h *InventoryHandler) StockBalance(c *gin.Context) {
	filter := ledger.Filter{
		ItemID:      c.Query("item_id"),
		WarehouseID: c.Query("warehouse_id"),
	}

	balances, err := h.balances.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, balances)
}

func (h *InventoryHandler) getDoc(c *gin.Context, get func(ctx context.Context, docID id.ID) (any, error)) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	doc, err := get(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

func (h *InventoryHandler) decide(c *gin.Context, entityType string, action postgres.AuditAction, decide func(ctx context.Context, docID id.ID) error, message string) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	if err := decide(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, entityType, docID, action, nil)
	h.Success(c, message)
}

func (h *InventoryHandler) docID(c *gin.Context) (id.ID, bool) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return docID, false
	}
	return docID, true
}
