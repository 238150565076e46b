package document_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"loomstock/internal/domain/documents/issue"
	"loomstock/internal/infrastructure/storage/postgres"
)

const issueTable = "doc_issues"

// IssueRepo implements issue.Repository.
type IssueRepo struct {
	*BaseDocRepo[*issue.Issue]
}

// NewIssueRepo creates a new issue repository.
func NewIssueRepo(txm *postgres.TxManager) *IssueRepo {
	return &IssueRepo{
		BaseDocRepo: NewBaseDocRepo(
			txm,
			issueTable,
			"issue",
			postgres.ExtractDBColumns[issue.Issue](),
			"issued_at",
			func() *issue.Issue { return &issue.Issue{} },
		),
	}
}

// ListBetween returns issues in [from, to), newest first. Nil bounds are
// open.
func (r *IssueRepo) ListBetween(ctx context.Context, from, to *time.Time) ([]*issue.Issue, error) {
	q := r.BaseSelect()
	if from != nil {
		q = q.Where(squirrel.GtOrEq{"issued_at": *from})
	}
	if to != nil {
		q = q.Where(squirrel.Lt{"issued_at": *to})
	}
	return r.Select(ctx, q)
}
