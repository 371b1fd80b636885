// internal/domain/promo/service_test.go
package promo

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
	require.NoError(t, db.AutoMigrate(&PromoCode{}))
	return NewService(db)
}

func intPtr(n int) *int { return &n }

func TestCreateAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &PromoRequest{Code: "WELCOME10", Percentage: 10, MaxUsage: intPtr(100)})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)

	codes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, codes, 1)
}

func TestDuplicateCodeIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &PromoRequest{Code: "WELCOME10", Percentage: 10})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &PromoRequest{Code: "welcome10", Percentage: 20})
	assert.ErrorIs(t, err, ErrDuplicateCode)

	// Editing a code against itself is not a collision.
	first, err := svc.List(ctx)
	require.NoError(t, err)
	updated, err := svc.Update(ctx, first[0].ID, &PromoRequest{Code: "Welcome10", Percentage: 15})
	require.NoError(t, err)
	assert.Equal(t, float64(15), updated.Percentage)
}

func TestPercentageBounds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &PromoRequest{Code: "ZERO", Percentage: 0})
	assert.Error(t, err)
	_, err = svc.Create(ctx, &PromoRequest{Code: "NEG", Percentage: -5})
	assert.Error(t, err)
	_, err = svc.Create(ctx, &PromoRequest{Code: "TOOBIG", Percentage: 101})
	assert.Error(t, err)
	_, err = svc.Create(ctx, &PromoRequest{Code: "FULL", Percentage: 100})
	assert.NoError(t, err)
}

func TestRedeemComputesDiscountAndCountsUsage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &PromoRequest{Code: "SUMMER20", Percentage: 20, MaxUsage: intPtr(2)})
	require.NoError(t, err)

	discount, code, err := svc.Redeem(ctx, "summer20", 13500)
	require.NoError(t, err)
	assert.Equal(t, int64(2700), discount)
	assert.Equal(t, 1, code.UsageCount)

	discount, code, err = svc.Redeem(ctx, "SUMMER20", 9999)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), discount) // 1999.8 rounds to whole cents
	assert.Equal(t, 2, code.UsageCount)

	// Usage cap reached.
	_, _, err = svc.Redeem(ctx, "SUMMER20", 1000)
	assert.ErrorIs(t, err, ErrNotRedeemable)
}

func TestRedeemInactiveCode(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inactive := false
	_, err := svc.Create(ctx, &PromoRequest{Code: "PAUSED", Percentage: 10, IsActive: &inactive})
	require.NoError(t, err)

	_, _, err = svc.Redeem(ctx, "PAUSED", 1000)
	assert.ErrorIs(t, err, ErrNotRedeemable)
}

func TestRedeemUnknownCode(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Redeem(context.Background(), "NOPE", 1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &PromoRequest{Code: "BYE", Percentage: 5})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))

	codes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
