package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"loomstock/internal/core/apperror"
	"loomstock/internal/domain/reports"
)

// ReportsHandler handles dashboard and report endpoints.
type ReportsHandler struct {
	*BaseHandler
	reports *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, svc *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, reports: svc}
}

// DashboardStats handles GET /dashboard/stats.
func (h *ReportsHandler) DashboardStats(c *gin.Context) {
	stats, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, stats)
}

// StockLedger handles GET /reports/stock-ledger.
func (h *ReportsHandler) StockLedger(c *gin.Context) {
	balances, err := h.reports.StockLedger(c.Request.Context(), c.Query("item_id"), c.Query("warehouse_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, balances)
}

// IssueRegister handles GET /reports/issue-register.
func (h *ReportsHandler) IssueRegister(c *gin.Context) {
	from, ok := h.parseDateQuery(c, "from_date")
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(c, "to_date")
	if !ok {
		return
	}

	issues, err := h.reports.IssueRegister(c.Request.Context(), from, to)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, issues)
}

// PendingPOs handles GET /reports/pending-po.
func (h *ReportsHandler) PendingPOs(c *gin.Context) {
	orders, err := h.reports.PendingPOs(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, orders)
}

func (h *ReportsHandler) parseDateQuery(c *gin.Context, key string) (*time.Time, bool) {
	val := c.Query(key)
	if val == "" {
		return nil, true
	}

	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid date, expected YYYY-MM-DD").WithDetail("field", key))
		return nil, false
	}
	return &t, true
}
