// Package supplier provides the Supplier master.
package supplier

import (
	"context"
	"regexp"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
)

var gstPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// BankDetails holds payment account information for a supplier.
type BankDetails struct {
	AccountName   string `json:"account_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	Branch        string `json:"branch,omitempty"`
}

// Supplier represents a vendor goods are purchased from.
type Supplier struct {
	entity.Base

	SupplierCode  string       `db:"supplier_code" json:"supplier_code"`
	Name          string       `db:"name" json:"name"`
	GST           *string      `db:"gst" json:"gst,omitempty"`
	PAN           *string      `db:"pan" json:"pan,omitempty"`
	ContactPerson *string      `db:"contact_person" json:"contact_person,omitempty"`
	Phone         *string      `db:"phone" json:"phone,omitempty"`
	Address       *string      `db:"address" json:"address,omitempty"`
	PaymentTerms  *string      `db:"payment_terms" json:"payment_terms,omitempty"`
	BankDetails   *BankDetails `db:"bank_details" json:"bank_details,omitempty"`
	Status        string       `db:"status" json:"status"`
}

// Validate implements entity.Validatable.
func (s *Supplier) Validate(_ context.Context) error {
	if s.SupplierCode == "" {
		return apperror.NewValidation("supplier_code is required").WithDetail("field", "supplier_code")
	}
	if s.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if s.GST != nil && *s.GST != "" && !gstPattern.MatchString(*s.GST) {
		return apperror.NewValidation("invalid GST number").
			WithDetail("field", "gst").
			WithDetail("value", *s.GST)
	}
	return nil
}
