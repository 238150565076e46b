// Package approval provides the shared approval status machine for
// approval-gated documents (purchase indents and orders, stock transfers,
// stock adjustments).
package approval

import (
	"time"

	"loomstock/internal/core/apperror"
)

// Status is the approval state of a document.
// The string values are part of the wire contract.
type Status string

const (
	StatusDraft    Status = "Draft"
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Valid reports whether s is a known approval status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Document type tags used by the initial-state table and approval flows.
const (
	DocTypePurchaseIndent  = "PurchaseIndent"
	DocTypePurchaseOrder   = "PurchaseOrder"
	DocTypeStockTransfer   = "StockTransfer"
	DocTypeStockAdjustment = "StockAdjustment"
)

// initialStatus is the explicit per-document-type initial-state table.
// Transfers and adjustments skip Draft and go straight to Pending.
var initialStatus = map[string]Status{
	DocTypePurchaseIndent:  StatusDraft,
	DocTypePurchaseOrder:   StatusDraft,
	DocTypeStockTransfer:   StatusPending,
	DocTypeStockAdjustment: StatusPending,
}

// InitialStatus returns the creation-time status for a document type.
// Unknown types default to Draft.
func InitialStatus(docType string) Status {
	if s, ok := initialStatus[docType]; ok {
		return s
	}
	return StatusDraft
}

// Fields are the approval-transition fields embedded in approvable documents.
// These are the only fields that may change after a document is created.
type Fields struct {
	Status     Status     `db:"status" json:"status"`
	ApprovedBy *string    `db:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt *time.Time `db:"approved_at" json:"approved_at,omitempty"`
}

// Approve moves the document from Pending to Approved.
// Approved and Rejected are terminal: re-approving returns a conflict.
func (f *Fields) Approve(docType, approverID string, now time.Time) error {
	return f.transition(docType, StatusApproved, approverID, now)
}

// Reject moves the document from Pending to Rejected.
func (f *Fields) Reject(docType, approverID string, now time.Time) error {
	return f.transition(docType, StatusRejected, approverID, now)
}

func (f *Fields) transition(docType string, to Status, approverID string, now time.Time) error {
	if f.Status != StatusPending {
		return apperror.NewInvalidTransition(docType, string(f.Status), string(to))
	}
	at := now.UTC()
	f.Status = to
	f.ApprovedBy = &approverID
	f.ApprovedAt = &at
	return nil
}
