// internal/pkg/whatsapp/link.go
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kidsstorytime/storefront-backend/internal/domain/order"
)

// BuildOrderLink builds a wa.me deep link pre-filled with a plain-text
// order summary. Handing the customer off to WhatsApp is the only
// outbound submission channel the storefront has.
func BuildOrderLink(phone, currency string, o *order.Order) string {
	var message strings.Builder

	message.WriteString("Bonjour, je souhaite commander:\n\n")
	for i, item := range o.Items {
		message.WriteString(fmt.Sprintf("%d. %s\n", i+1, item.Name))
		message.WriteString(fmt.Sprintf("   - Quantité: %d\n", item.Quantity))
		message.WriteString(fmt.Sprintf("   - Prix: %.0f %s\n", float64(item.Price)/100, currency))
		if item.PhotoFileName != "" {
			message.WriteString(fmt.Sprintf("   - Photo: %s\n", item.PhotoFileName))
		}
		message.WriteString("\n")
	}
	message.WriteString(fmt.Sprintf("Total: %.2f %s\n\n", o.GetFormattedTotal(), currency))
	message.WriteString("Merci!")

	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message.String()))
}
