// internal/domain/subscriber/service_test.go
package subscriber

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
	require.NoError(t, db.AutoMigrate(&Subscriber{}))
	return NewService(db)
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	svc := newTestService(t)

	sub, err := svc.Subscribe(context.Background(), "  Parent@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "parent@example.com", sub.Email)
	assert.False(t, sub.SubscribedAt.IsZero())
}

func TestSubscribeTwiceIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Subscribe(ctx, "amina@example.com")
	require.NoError(t, err)

	second, err := svc.Subscribe(ctx, "AMINA@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	subs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, email := range []string{"", "plainaddress", "missing@tld", "@example.com"} {
		_, err := svc.Subscribe(ctx, email)
		assert.Error(t, err, "email %q", email)
	}
}

func TestListOrdersOldestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "first@example.com")
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, "second@example.com")
	require.NoError(t, err)

	subs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "first@example.com", subs[0].Email)
}
