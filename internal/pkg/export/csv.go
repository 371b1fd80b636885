// internal/pkg/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kidsstorytime/storefront-backend/internal/domain/order"
	"github.com/kidsstorytime/storefront-backend/internal/domain/subscriber"
)

// WriteSubscribers writes the newsletter list as CSV. Fields that
// contain commas or quotes are escaped by the encoder.
func WriteSubscribers(w io.Writer, subs []subscriber.Subscriber) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Email", "Date d'inscription"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, sub := range subs {
		record := []string{sub.Email, sub.SubscribedAt.Format("02/01/2006")}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteOrders writes an order report as CSV, one row per order.
func WriteOrders(w io.Writer, orders []order.Order) error {
	writer := csv.NewWriter(w)

	header := []string{"ID", "Client", "Email", "Téléphone", "Ville", "Pays", "Code promo", "Total", "Statut", "Date"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, o := range orders {
		record := []string{
			fmt.Sprintf("%d", o.ID),
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.City,
			o.Country,
			o.PromoCode,
			fmt.Sprintf("%.2f", o.GetFormattedTotal()),
			string(o.Status),
			o.CreatedAt.Format("02/01/2006 15:04"),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
