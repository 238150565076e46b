// Package handlers provides HTTP request handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
	"loomstock/internal/core/id"
	"loomstock/internal/domain"
	"loomstock/internal/infrastructure/http/v1/dto"
)

// CatalogHandler provides generic HTTP handlers for master-data entities.
// Masters bind straight to their domain structs; json tags are the wire
// contract.
type CatalogHandler[T entity.Validatable] struct {
	*BaseHandler
	service *domain.CatalogService[T]

	// newFn allocates an empty entity for binding.
	newFn func() T

	// setID pins the path id on the bound entity for updates.
	setID func(e T, entityID id.ID)
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T entity.Validatable] struct {
	Service *domain.CatalogService[T]
	New     func() T
	SetID   func(e T, entityID id.ID)
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T entity.Validatable](base *BaseHandler, cfg CatalogHandlerConfig[T]) *CatalogHandler[T] {
	return &CatalogHandler[T]{
		BaseHandler: base,
		service:     cfg.Service,
		newFn:       cfg.New,
		setID:       cfg.SetID,
	}
}

// List handles GET /{entity} with filtering and pagination.
func (h *CatalogHandler[T]) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Status = c.Query("status")
	filter.Limit = h.ParseIntQuery(c, "limit", 100)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	if orderBy := c.Query("order_by"); orderBy != "" {
		filter.OrderBy = orderBy
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = item
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /{entity}/:id.
func (h *CatalogHandler[T]) Get(c *gin.Context) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, e)
}

// Create handles POST /{entity}.
func (h *CatalogHandler[T]) Create(c *gin.Context) {
	e := h.newFn()
	if !h.BindJSON(c, e) {
		return
	}

	if err := h.service.Create(c.Request.Context(), e); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, e)
}

// Update handles PUT /{entity}/:id.
func (h *CatalogHandler[T]) Update(c *gin.Context) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	e := h.newFn()
	if !h.BindJSON(c, e) {
		return
	}
	h.setID(e, entityID)

	if err := h.service.Update(c.Request.Context(), e); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, e)
}

// Delete handles DELETE /{entity}/:id.
func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
