// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/kidsstorytime/storefront-backend/internal/config"
	"github.com/kidsstorytime/storefront-backend/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateOrderSummary renders a printable order sheet for the
// dashboard. Requires the wkhtmltopdf binary on the host.
func (s *Service) GenerateOrderSummary(o *order.Order) (*bytes.Buffer, error) {
	data := summaryData{
		Order:       o,
		GeneratedAt: time.Now().UTC().Format("02/01/2006 15:04"),
		OrderDate:   o.CreatedAt.Format("02/01/2006 15:04"),
		Currency:    s.config.Storefront.Currency,
		Subtotal:    formatCents(o.SubtotalPrice),
		Discount:    formatCents(o.DiscountPrice),
		Total:       formatCents(o.TotalPrice),
		AppName:     s.config.App.Name,
	}
	for _, item := range o.Items {
		data.Items = append(data.Items, summaryItem{
			OrderItem: item,
			UnitPrice: formatCents(item.Price),
			LinePrice: formatCents(item.Price * int64(item.Quantity)),
		})
	}

	var html bytes.Buffer
	if err := summaryTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render order summary: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html.Bytes()))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

type summaryItem struct {
	order.OrderItem
	UnitPrice string
	LinePrice string
}

type summaryData struct {
	Order       *order.Order
	Items       []summaryItem
	GeneratedAt string
	OrderDate   string
	Currency    string
	Subtotal    string
	Discount    string
	Total       string
	AppName     string
}

var summaryTemplate = template.Must(template.New("summary").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Commande n°{{.Order.ID}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .customer {
            margin-bottom: 30px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .price-col {
            text-align: right;
            width: 80px;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
        }
        .totals .label {
            text-align: right;
            font-weight: bold;
        }
        .totals .amount {
            text-align: right;
            width: 100px;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
            border-top: 2px solid #333 !important;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">{{.AppName}}</div>
        <p><strong>Commande n°:</strong> {{.Order.ID}}</p>
        <p><strong>Date:</strong> {{.OrderDate}}</p>
        <p><strong>Statut:</strong> {{.Order.Status}}</p>
    </div>

    <div class="customer">
        <div class="section-title">Client</div>
        <p><strong>{{.Order.CustomerName}}</strong></p>
        <p>{{.Order.Address}}</p>
        <p>{{.Order.City}}, {{.Order.Country}}</p>
        <p>Téléphone: {{.Order.CustomerPhone}}</p>
        <p>Email: {{.Order.CustomerEmail}}</p>
        {{if .Order.ChildName}}<p>Enfant: {{.Order.ChildName}}{{if .Order.ChildGender}} ({{.Order.ChildGender}}){{end}}</p>{{end}}
        {{if .Order.Dedication}}<p>Dédicace: {{.Order.Dedication}}</p>{{end}}
        {{if .Order.Comment}}<p>Commentaire: {{.Order.Comment}}</p>{{end}}
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Histoire</th>
                <th>Détails</th>
                <th class="qty-col">Qté</th>
                <th class="price-col">Prix</th>
                <th class="price-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Items}}
            <tr>
                <td><strong>{{.Name}}</strong></td>
                <td>
                    {{if .Size}}Taille: {{.Size}}{{end}}
                    {{if .Color}}Couleur: {{.Color}}{{end}}
                    {{if .PhotoFileName}}<br><small>Photo: {{.PhotoFileName}}</small>{{end}}
                </td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="price-col">{{.UnitPrice}} {{$.Currency}}</td>
                <td class="price-col">{{.LinePrice}} {{$.Currency}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td class="label">Sous-total:</td>
                <td class="amount">{{.Subtotal}} {{.Currency}}</td>
            </tr>
            {{if gt .Order.DiscountPrice 0}}
            <tr>
                <td class="label">Remise ({{.Order.PromoCode}}):</td>
                <td class="amount">-{{.Discount}} {{.Currency}}</td>
            </tr>
            {{end}}
            <tr class="total-row">
                <td class="label">Total:</td>
                <td class="amount">{{.Total}} {{.Currency}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Document généré le {{.GeneratedAt}}</p>
    </div>
</body>
</html>
`))
