// Package document_repo provides PostgreSQL implementations for document
// repositories.
package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/domain/approval"
	"loomstock/internal/infrastructure/storage/postgres"
)

// BaseDocRepo provides common persistence for document tables. Documents
// are immutable after creation; the only updates are status and approval
// columns, exposed by the specific repositories.
type BaseDocRepo[T any] struct {
	txm        *postgres.TxManager
	tableName  string
	entityName string
	selectCols []string

	// dateCol orders listings, newest first.
	dateCol string

	newFn func() T
}

// NewBaseDocRepo creates a base document repository.
func NewBaseDocRepo[T any](
	txm *postgres.TxManager,
	tableName, entityName string,
	selectCols []string,
	dateCol string,
	newFn func() T,
) *BaseDocRepo[T] {
	return &BaseDocRepo[T]{
		txm:        txm,
		tableName:  tableName,
		entityName: entityName,
		selectCols: selectCols,
		dateCol:    dateCol,
		newFn:      newFn,
	}
}

// Builder returns a squirrel builder with PostgreSQL placeholders.
func (r *BaseDocRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new document using its "db" tags.
func (r *BaseDocRepo[T]) Create(ctx context.Context, doc T) error {
	data := postgres.StructToMap(doc)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in document")
	}

	filtered := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	q := r.Builder().
		Insert(r.tableName).
		SetMap(filtered)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	_, err = r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}
	return nil
}

// GetByID retrieves a document by ID.
func (r *BaseDocRepo[T]) GetByID(ctx context.Context, docID id.ID) (T, error) {
	doc := r.newFn()

	q := r.baseSelect().
		Where(squirrel.Eq{"id": docID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return doc, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), doc, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return doc, apperror.NewNotFound(r.entityName, docID.String())
		}
		return doc, fmt.Errorf("get by id: %w", err)
	}
	return doc, nil
}

// List retrieves all documents, newest first.
func (r *BaseDocRepo[T]) List(ctx context.Context) ([]T, error) {
	return r.Select(ctx, r.baseSelect().OrderBy(r.dateCol+" DESC"))
}

// Select runs an arbitrary select built on top of BaseSelect.
func (r *BaseDocRepo[T]) Select(ctx context.Context, q squirrel.SelectBuilder) ([]T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var docs []T
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &docs, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tableName, err)
	}
	return docs, nil
}

// BaseSelect returns the select over all document columns, ordered newest
// first. Specific repositories add their filters on top.
func (r *BaseDocRepo[T]) BaseSelect() squirrel.SelectBuilder {
	return r.baseSelect().OrderBy(r.dateCol + " DESC")
}

func (r *BaseDocRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName)
}

// UpdateApproval writes the approval columns of one document.
func (r *BaseDocRepo[T]) UpdateApproval(ctx context.Context, docID id.ID, fields approval.Fields) error {
	q := r.Builder().
		Update(r.tableName).
		Set("status", fields.Status).
		Set("approved_by", fields.ApprovedBy).
		Set("approved_at", fields.ApprovedAt).
		Where(squirrel.Eq{"id": docID})

	return r.execUpdate(ctx, q, docID)
}

func (r *BaseDocRepo[T]) execUpdate(ctx context.Context, q squirrel.UpdateBuilder, docID id.ID) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, docID.String())
	}
	return nil
}

// TxManager exposes the underlying transaction manager for repositories
// that need raw queries.
func (r *BaseDocRepo[T]) TxManager() *postgres.TxManager {
	return r.txm
}
