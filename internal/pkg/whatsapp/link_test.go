// internal/pkg/whatsapp/link_test.go
package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidsstorytime/storefront-backend/internal/domain/order"
)

func TestBuildOrderLink(t *testing.T) {
	o := &order.Order{
		TotalPrice: 13500,
		Items: []order.OrderItem{
			{Name: "La Princesse et le Dragon Magique", Price: 4500, Quantity: 3, PhotoFileName: "yasmine.jpg"},
		},
	}

	link := BuildOrderLink("+212696570164", "DH", o)
	require.True(t, strings.HasPrefix(link, "https://wa.me/+212696570164?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")

	assert.Contains(t, text, "Bonjour, je souhaite commander:")
	assert.Contains(t, text, "1. La Princesse et le Dragon Magique")
	assert.Contains(t, text, "Quantité: 3")
	assert.Contains(t, text, "Prix: 45 DH")
	assert.Contains(t, text, "Photo: yasmine.jpg")
	assert.Contains(t, text, "Total: 135.00 DH")
	assert.Contains(t, text, "Merci!")
}

func TestBuildOrderLinkOmitsMissingPhoto(t *testing.T) {
	o := &order.Order{
		TotalPrice: 4500,
		Items:      []order.OrderItem{{Name: "Le Royaume des Licornes", Price: 4500, Quantity: 1}},
	}

	link := BuildOrderLink("+212696570164", "DH", o)
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.NotContains(t, parsed.Query().Get("text"), "Photo:")
}
