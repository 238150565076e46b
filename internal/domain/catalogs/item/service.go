package item

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/tx"
	"loomstock/internal/domain"
)

// Repository extends the generic catalog repository with code lookups.
type Repository interface {
	domain.CatalogRepository[*Item]
	ExistsByCode(ctx context.Context, itemCode string) (bool, error)
	GetByCode(ctx context.Context, itemCode string) (*Item, error)
}

// Service provides business logic for the Item master.
type Service struct {
	*domain.CatalogService[*Item]
	repo Repository
}

// NewService creates a new item service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Item]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "item",
	})

	svc := &Service{CatalogService: base, repo: repo}
	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)
	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, i *Item) error {
	i.EnsureDefaults()
	if i.Status == "" {
		i.Status = "Active"
	}

	exists, err := s.repo.ExistsByCode(ctx, i.ItemCode)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("item", "item_code", i.ItemCode)
	}
	return nil
}

// GetByCode looks an item up by its code, for barcode and import flows.
func (s *Service) GetByCode(ctx context.Context, itemCode string) (*Item, error) {
	it, err := s.repo.GetByCode(ctx, itemCode)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("item", itemCode)
		}
		return nil, err
	}
	return it, nil
}
