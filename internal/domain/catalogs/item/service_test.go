package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
	"loomstock/internal/domain"
)

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	byID   map[id.ID]*Item
	byCode map[string]*Item
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*Item), byCode: make(map[string]*Item)}
}

func (r *fakeRepo) Create(_ context.Context, it *Item) error {
	r.byID[it.ID] = it
	r.byCode[it.ItemCode] = it
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, itemID id.ID) (*Item, error) {
	it, ok := r.byID[itemID]
	if !ok {
		return nil, apperror.NewNotFound("item", itemID.String())
	}
	return it, nil
}

func (r *fakeRepo) GetByCode(_ context.Context, code string) (*Item, error) {
	it, ok := r.byCode[code]
	if !ok {
		return nil, apperror.NewNotFound("item", code)
	}
	return it, nil
}

func (r *fakeRepo) Update(_ context.Context, it *Item) error {
	if _, ok := r.byID[it.ID]; !ok {
		return apperror.NewNotFound("item", it.ID.String())
	}
	r.byID[it.ID] = it
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, itemID id.ID) error {
	it, ok := r.byID[itemID]
	if !ok {
		return apperror.NewNotFound("item", itemID.String())
	}
	delete(r.byCode, it.ItemCode)
	delete(r.byID, itemID)
	return nil
}

func (r *fakeRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*Item], error) {
	out := domain.ListResult[*Item]{}
	for _, it := range r.byID {
		out.Items = append(out.Items, it)
	}
	out.TotalCount = int64(len(out.Items))
	return out, nil
}

func (r *fakeRepo) Exists(_ context.Context, itemID id.ID) (bool, error) {
	_, ok := r.byID[itemID]
	return ok, nil
}

func (r *fakeRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	_, ok := r.byCode[code]
	return ok, nil
}

func validItem() *Item {
	return &Item{
		ItemCode:   "YRN-001",
		ItemName:   "Cotton Yarn 40s",
		CategoryID: "cat-1",
		UOM:        "KG",
	}
}

func TestService_Create(t *testing.T) {
	svc := NewService(newFakeRepo(), noopTxManager{})
	it := validItem()

	require.NoError(t, svc.Create(context.Background(), it))
	assert.False(t, id.IsNil(it.ID))
	assert.Equal(t, "Active", it.Status)
	assert.False(t, it.CreatedAt.IsZero())
}

func TestService_Create_DuplicateCode(t *testing.T) {
	svc := NewService(newFakeRepo(), noopTxManager{})
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, validItem()))

	err := svc.Create(ctx, validItem())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestService_Create_ValidationFailures(t *testing.T) {
	svc := NewService(newFakeRepo(), noopTxManager{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Item)
	}{
		{"missing code", func(i *Item) { i.ItemCode = "" }},
		{"missing name", func(i *Item) { i.ItemName = "" }},
		{"missing category", func(i *Item) { i.CategoryID = "" }},
		{"missing uom", func(i *Item) { i.UOM = "" }},
		{"negative reorder level", func(i *Item) { i.ReorderLevel = types.NewQuantityFromFloat64(-1) }},
		{"min above max", func(i *Item) {
			i.MinStock = types.NewQuantityFromFloat64(100)
			i.MaxStock = types.NewQuantityFromFloat64(10)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := validItem()
			tt.mutate(it)

			err := svc.Create(ctx, it)
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
		})
	}
}

func TestService_GetByCode_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), noopTxManager{})

	_, err := svc.GetByCode(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), noopTxManager{})

	err := svc.Delete(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
