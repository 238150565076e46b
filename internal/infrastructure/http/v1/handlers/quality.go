package handlers

import (
	"github.com/gin-gonic/gin"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/domain/documents/qualitycheck"
	"loomstock/internal/infrastructure/storage/postgres"
)

// QualityHandler handles quality check endpoints.
type QualityHandler struct {
	*BaseHandler
	checks *qualitycheck.Service
}

// NewQualityHandler creates a new quality handler.
func NewQualityHandler(base *BaseHandler, checks *qualitycheck.Service) *QualityHandler {
	return &QualityHandler{BaseHandler: base, checks: checks}
}

// CreateCheck handles POST /quality/checks. Creating a check also moves
// the inspected GRN to its post-inspection status.
func (h *QualityHandler) CreateCheck(c *gin.Context) {
	var doc qualitycheck.QualityCheck
	if !h.BindJSON(c, &doc) {
		return
	}

	if err := h.checks.Create(c.Request.Context(), &doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "quality_check", doc.ID, postgres.AuditActionCreate, postgres.StructToMap(&doc))
	h.Created(c, &doc)
}

// ListChecks handles GET /quality/checks.
func (h *QualityHandler) ListChecks(c *gin.Context) {
	docs, err := h.checks.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, docs)
}

// GetCheck handles GET /quality/checks/:id.
func (h *QualityHandler) GetCheck(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.checks.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}
