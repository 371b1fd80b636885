// internal/domain/product/service_test.go
package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Product{}))
	return NewService(db)
}

func storyRequest(name string) *ProductRequest {
	return &ProductRequest{
		Name:     name,
		Price:    4500,
		OldPrice: 5500,
		Image:    "/p1.avif",
		Images:   []string{"/p1.avif"},
		Category: "aventure",
		AgeRange: "3-6 ans",
		InStock:  true,
	}
}

func TestCreateAssignsID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, storyRequest("Luna"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, storyRequest("Max"))
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateRejectsInvalidPrice(t *testing.T) {
	svc := newTestService(t)

	req := storyRequest("Luna")
	req.Price = 0
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)

	req.Price = -100
	_, err = svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdateChangesOnlyTargetEntry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	luna, err := svc.Create(ctx, storyRequest("Luna"))
	require.NoError(t, err)
	max, err := svc.Create(ctx, storyRequest("Max"))
	require.NoError(t, err)

	req := storyRequest("Luna et le Dragon")
	req.Price = 4800
	updated, err := svc.Update(ctx, luna.ID, req)
	require.NoError(t, err)
	assert.Equal(t, luna.ID, updated.ID)
	assert.Equal(t, "Luna et le Dragon", updated.Name)
	assert.Equal(t, int64(4800), updated.Price)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	untouched, err := svc.Get(ctx, max.ID)
	require.NoError(t, err)
	assert.Equal(t, "Max", untouched.Name)
	assert.Equal(t, int64(4500), untouched.Price)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), 42, storyRequest("Ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Luna", "Max", "Forêt"} {
		_, err := svc.Create(ctx, storyRequest(name))
		require.NoError(t, err)
	}

	created, err := svc.Create(ctx, storyRequest("X"))
	require.NoError(t, err)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	require.NoError(t, svc.Delete(ctx, created.ID))
	products, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	// Deleting an absent id is a no-op, not an error.
	require.NoError(t, svc.Delete(ctx, 9999))
	products, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestSpecialStoriesCap(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < MaxSpecialProducts; i++ {
		req := storyRequest("Spéciale")
		req.IsSpecial = true
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	req := storyRequest("Une de trop")
	req.IsSpecial = true
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrSpecialLimit)

	// A non-special create still goes through.
	plain, err := svc.Create(ctx, storyRequest("Normale"))
	require.NoError(t, err)

	// Flagging it special via update hits the same cap.
	upd := storyRequest("Normale")
	upd.IsSpecial = true
	_, err = svc.Update(ctx, plain.ID, upd)
	assert.ErrorIs(t, err, ErrSpecialLimit)
}

func TestSpecialCapExcludesEditedProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var last *Product
	for i := 0; i < MaxSpecialProducts; i++ {
		req := storyRequest("Spéciale")
		req.IsSpecial = true
		created, err := svc.Create(ctx, req)
		require.NoError(t, err)
		last = created
	}

	// Re-saving an already-special product keeps its flag.
	req := storyRequest("Spéciale renommée")
	req.IsSpecial = true
	updated, err := svc.Update(ctx, last.ID, req)
	require.NoError(t, err)
	assert.True(t, updated.IsSpecial)
}
