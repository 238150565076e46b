package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/domain/approval"
	"loomstock/internal/domain/documents/purchaseindent"
	"loomstock/internal/domain/documents/purchaseorder"
	"loomstock/internal/infrastructure/http/v1/dto"
	"loomstock/internal/infrastructure/storage/postgres"
)

// PurchaseHandler handles purchase indent and purchase order endpoints.
type PurchaseHandler struct {
	*BaseHandler
	indents *purchaseindent.Service
	orders  *purchaseorder.Service
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, indents *purchaseindent.Service, orders *purchaseorder.Service) *PurchaseHandler {
	return &PurchaseHandler{BaseHandler: base, indents: indents, orders: orders}
}

// CreateIndent handles POST /purchase/indents.
func (h *PurchaseHandler) CreateIndent(c *gin.Context) {
	var doc purchaseindent.Indent
	if !h.BindJSON(c, &doc) {
		return
	}

	if err := h.indents.Create(c.Request.Context(), &doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "purchase_indent", doc.ID, postgres.AuditActionCreate, postgres.StructToMap(&doc))
	h.Created(c, &doc)
}

// ListIndents handles GET /purchase/indents.
func (h *PurchaseHandler) ListIndents(c *gin.Context) {
	docs, err := h.indents.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, docs)
}

// GetIndent handles GET /purchase/indents/:id.
func (h *PurchaseHandler) GetIndent(c *gin.Context) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	doc, err := h.indents.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// ApproveIndent handles POST /purchase/indents/:id/approve.
func (h *PurchaseHandler) ApproveIndent(c *gin.Context) {
	h.decideIndent(c, postgres.AuditActionApprove, h.indents.Approve, "purchase indent approved")
}

// RejectIndent handles POST /purchase/indents/:id/reject.
func (h *PurchaseHandler) RejectIndent(c *gin.Context) {
	h.decideIndent(c, postgres.AuditActionReject, h.indents.Reject, "purchase indent rejected")
}

func (h *PurchaseHandler) decideIndent(c *gin.Context, action postgres.AuditAction, decide func(ctx context.Context, docID id.ID) error, message string) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	if err := decide(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "purchase_indent", docID, action, nil)
	h.Success(c, message)
}

// CreateOrder handles POST /purchase/orders.
func (h *PurchaseHandler) CreateOrder(c *gin.Context) {
	var doc purchaseorder.PurchaseOrder
	if !h.BindJSON(c, &doc) {
		return
	}

	if err := h.orders.Create(c.Request.Context(), &doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "purchase_order", doc.ID, postgres.AuditActionCreate, postgres.StructToMap(&doc))
	h.Created(c, &doc)
}

// ListOrders handles GET /purchase/orders.
func (h *PurchaseHandler) ListOrders(c *gin.Context) {
	filter := purchaseorder.ListFilter{
		SupplierID: c.Query("supplier_id"),
	}
	if status := c.Query("status"); status != "" {
		filter.Statuses = []approval.Status{approval.Status(status)}
	}

	docs, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, docs)
}

// GetOrder handles GET /purchase/orders/:id.
func (h *PurchaseHandler) GetOrder(c *gin.Context) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	doc, err := h.orders.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// ApproveOrder handles POST /purchase/orders/:id/approve.
func (h *PurchaseHandler) ApproveOrder(c *gin.Context) {
	h.decideOrder(c, postgres.AuditActionApprove, h.orders.Approve, "purchase order approved")
}

// RejectOrder handles POST /purchase/orders/:id/reject.
func (h *PurchaseHandler) RejectOrder(c *gin.Context) {
	h.decideOrder(c, postgres.AuditActionReject, h.orders.Reject, "purchase order rejected")
}

func (h *PurchaseHandler) decideOrder(c *gin.Context, action postgres.AuditAction, decide func(ctx context.Context, docID id.ID, remarks *string) error, message string) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	// Decision note is optional; an empty body is fine.
	var req dto.DecisionRequest
	_ = c.ShouldBindJSON(&req)

	if err := decide(c.Request.Context(), docID, req.Remarks); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "purchase_order", docID, action, nil)
	h.Success(c, message)
}

// SubmitOrder handles POST /purchase/orders/:id/submit.
func (h *PurchaseHandler) SubmitOrder(c *gin.Context) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	if err := h.orders.Submit(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "purchase order submitted")
}

func (h *PurchaseHandler) docID(c *gin.Context) (id.ID, bool) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return docID, false
	}
	return docID, true
}
