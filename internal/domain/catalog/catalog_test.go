// internal/domain/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByID(t *testing.T) {
	story := FindByID(1)
	require.NotNil(t, story)
	assert.Equal(t, "La Princesse et le Dragon Magique", story.Name)

	// Special stories are reachable too.
	special := FindByID(101)
	require.NotNil(t, special)
	assert.Equal(t, "Mon Aventure Personnalisée", special.Name)

	assert.Nil(t, FindByID(9999))
}

func TestAllCoversBothLists(t *testing.T) {
	all := All()
	assert.Len(t, all, len(Stories)+len(SpecialStories))
}

func TestDiscountPercentage(t *testing.T) {
	story := Story{Price: 12000, OldPrice: 15000}
	assert.Equal(t, 20, story.GetDiscountPercentage())

	noOld := Story{Price: 12000}
	assert.Equal(t, 0, noOld.GetDiscountPercentage())
}
