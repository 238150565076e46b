// Package qualitycheck provides the Quality Check document. A QC inspects a
// received GRN line, splits the quantity into accepted and rejected, and
// moves the GRN status accordingly.
package qualitycheck

import (
	"context"
	"time"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
)

// Status is the inspection outcome.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
	StatusPartial  Status = "Partial"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusPartial:
		return true
	}
	return false
}

// QualityCheck is the inspection record for one GRN line.
type QualityCheck struct {
	ID              id.ID          `db:"id" json:"id"`
	QCNo            string         `db:"qc_no" json:"qc_no"`
	GRNID           string         `db:"grn_id" json:"grn_id"`
	GRNNo           string         `db:"grn_no" json:"grn_no"`
	POID            string         `db:"po_id" json:"po_id"`
	ItemID          string         `db:"item_id" json:"item_id"`
	ItemName        string         `db:"item_name" json:"item_name"`
	QtyReceived     types.Quantity `db:"qty_received" json:"qty_received"`
	QtyAccepted     types.Quantity `db:"qty_accepted" json:"qty_accepted"`
	QtyRejected     types.Quantity `db:"qty_rejected" json:"qty_rejected"`
	RejectionReason *string        `db:"rejection_reason" json:"rejection_reason,omitempty"`
	QCStatus        Status         `db:"qc_status" json:"qc_status"`
	InspectedBy     string         `db:"inspected_by" json:"inspected_by"`
	InspectedAt     time.Time      `db:"inspected_at" json:"inspected_at"`
	Remarks         *string        `db:"remarks" json:"remarks,omitempty"`
}

// Validate checks inspection invariants before persistence.
func (q *QualityCheck) Validate(_ context.Context) error {
	if q.GRNID == "" {
		return apperror.NewValidation("grn_id is required").WithDetail("field", "grn_id")
	}
	if q.ItemID == "" {
		return apperror.NewValidation("item_id is required").WithDetail("field", "item_id")
	}
	if !q.QCStatus.Valid() {
		return apperror.NewValidation("invalid qc_status").
			WithDetail("field", "qc_status").
			WithDetail("value", string(q.QCStatus))
	}
	if q.QtyReceived.IsNegative() || q.QtyAccepted.IsNegative() || q.QtyRejected.IsNegative() {
		return apperror.NewValidation("quantities must not be negative")
	}
	if q.QtyAccepted+q.QtyRejected > q.QtyReceived {
		return apperror.NewValidation("accepted plus rejected exceeds received quantity").
			WithDetail("qty_received", q.QtyReceived.String()).
			WithDetail("qty_accepted", q.QtyAccepted.String()).
			WithDetail("qty_rejected", q.QtyRejected.String())
	}
	return nil
}

// GRNStatus returns the GRN status this inspection result implies, or ""
// when the GRN is left unchanged (Pending and Partial outcomes).
func (q *QualityCheck) GRNStatus() string {
	switch q.QCStatus {
	case StatusAccepted:
		return "QC Passed"
	case StatusRejected:
		return "QC Failed"
	}
	return ""
}
