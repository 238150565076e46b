// Package dto contains shared wire types for the HTTP API.
package dto

// IDResponse carries the identifier of a newly created record.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is the generic acknowledgement body.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListResponse is the paginated list envelope for master data.
type ListResponse struct {
	Items      []any `json:"items"`
	TotalCount int64 `json:"total_count"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// DecisionRequest carries an optional note with an approve or reject call.
type DecisionRequest struct {
	Remarks *string `json:"remarks,omitempty"`
}
