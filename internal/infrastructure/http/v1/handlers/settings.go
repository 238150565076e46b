package handlers

import (
	"github.com/gin-gonic/gin"

	"loomstock/internal/domain/approval"
	"loomstock/pkg/numerator"
)

// SettingsHandler handles approval flow and number series configuration.
type SettingsHandler struct {
	*BaseHandler
	flows  *approval.Service
	series *numerator.Service
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(base *BaseHandler, flows *approval.Service, series *numerator.Service) *SettingsHandler {
	return &SettingsHandler{BaseHandler: base, flows: flows, series: series}
}

// CreateApprovalFlow handles POST /settings/approval-flows.
func (h *SettingsHandler) CreateApprovalFlow(c *gin.Context) {
	var flow approval.Flow
	if !h.BindJSON(c, &flow) {
		return
	}

	if err := h.flows.CreateFlow(c.Request.Context(), &flow); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, &flow)
}

// ListApprovalFlows handles GET /settings/approval-flows.
func (h *SettingsHandler) ListApprovalFlows(c *gin.Context) {
	flows, err := h.flows.ListFlows(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, flows)
}

// ListNumberSeries handles GET /settings/number-series.
func (h *SettingsHandler) ListNumberSeries(c *gin.Context) {
	series, err := h.series.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, series)
}
