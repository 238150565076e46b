// Package numerator provides the shared document numbering service.
//
// Every document type draws from its own series in the number_series table.
// The increment-and-read is a single atomic upsert, so two concurrent calls
// for the same series can never observe the same value even across multiple
// service instances sharing the database.
package numerator

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// DefaultPadding is the zero-fill width for generated numbers (e.g. GRN0001).
const DefaultPadding = 4

// Series types used by the document services. The exact strings are part of
// the storage contract; prefixes are derived from them.
const (
	SeriesPurchaseIndent = "Purchase_Indent"
	SeriesPurchaseOrder  = "Purchase_Order"
	SeriesGRN            = "GRN"
	SeriesQC             = "QC"
	SeriesInward         = "INWARD"
	SeriesTransfer       = "TRANSFER"
	SeriesIssue          = "ISSUE"
	SeriesReturn         = "RETURN"
	SeriesAdjustment     = "ADJUSTMENT"
)

// Generator is the interface document services depend on.
type Generator interface {
	// Next returns the next unique number for the series, e.g. "GRN0001".
	Next(ctx context.Context, seriesType string) (string, error)
}

// Querier interface for database operations.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Series describes one numbering series as stored.
type Series struct {
	SeriesType    string `db:"series_type" json:"series_type"`
	Prefix        string `db:"prefix" json:"prefix"`
	CurrentNumber int64  `db:"current_number" json:"current_number"`
	Padding       int    `db:"padding" json:"padding"`
}

// Service issues document numbers backed by the number_series table.
type Service struct {
	querier Querier
}

// New creates a numerator service.
func New(querier Querier) *Service {
	return &Service{querier: querier}
}

var _ Generator = (*Service)(nil)

// Next atomically increments the series counter and returns the formatted
// number. A missing series is created on first use with the default prefix
// (first three characters of the series type, uppercased) and padding.
func (s *Service) Next(ctx context.Context, seriesType string) (string, error) {
	if seriesType == "" {
		return "", fmt.Errorf("series type is required")
	}

	var (
		prefix  string
		padding int
		num     int64
	)
	err := s.querier.QueryRow(ctx, `
        INSERT INTO number_series (series_type, prefix, padding, current_number)
        VALUES ($1, $2, $3, 1)
        ON CONFLICT (series_type)
        DO UPDATE SET current_number = number_series.current_number + 1
        RETURNING prefix, padding, current_number
	`, seriesType, DefaultPrefix(seriesType), DefaultPadding).Scan(&prefix, &padding, &num)
	if err != nil {
		return "", fmt.Errorf("next number for %s: %w", seriesType, err)
	}

	return Format(prefix, padding, num), nil
}

// List returns all known series (for the settings endpoint).
func (s *Service) List(ctx context.Context) ([]Series, error) {
	rows, err := s.querier.Query(ctx, `
        SELECT series_type, prefix, current_number, padding
        FROM number_series ORDER BY series_type
	`)
	if err != nil {
		return nil, fmt.Errorf("list number series: %w", err)
	}
	defer rows.Close()

	var out []Series
	for rows.Next() {
		var sr Series
		if err := rows.Scan(&sr.SeriesType, &sr.Prefix, &sr.CurrentNumber, &sr.Padding); err != nil {
			return nil, fmt.Errorf("scan number series: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// DefaultPrefix derives the prefix for a new series: first three characters
// of the series type, uppercased.
func DefaultPrefix(seriesType string) string {
	p := seriesType
	if len(p) > 3 {
		p = p[:3]
	}
	return strings.ToUpper(p)
}

// Format renders a series value as prefix + zero-padded number.
func Format(prefix string, padding int, num int64) string {
	if padding <= 0 {
		padding = DefaultPadding
	}
	return fmt.Sprintf("%s%0*d", prefix, padding, num)
}
