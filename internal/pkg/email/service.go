// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/kidsstorytime/storefront-backend/internal/config"
	"github.com/kidsstorytime/storefront-backend/internal/domain/order"
)

// Service sends transactional email over SMTP
type Service struct {
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new email service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
	}
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<h2>Merci pour votre commande, {{.Order.CustomerName}} !</h2>
<p>Votre commande n°{{.Order.ID}} a bien été enregistrée.</p>
<ul>
{{range .Order.Items}}
  <li>{{.Name}} x{{.Quantity}}</li>
{{end}}
</ul>
{{if gt .Order.DiscountPrice 0}}
<p>Remise ({{.Order.PromoCode}}) : -{{printf "%.2f" .Discount}} {{.Currency}}</p>
{{end}}
<p><strong>Total : {{printf "%.2f" .Total}} {{.Currency}}</strong></p>
<p>Nous vous contacterons sur WhatsApp pour finaliser la livraison.</p>
`))

type confirmationData struct {
	Order    *order.Order
	Total    float64
	Discount float64
	Currency string
}

// SendOrderConfirmation emails an order summary to the customer.
// Returns nil without sending when email is disabled in configuration.
func (s *Service) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	if !s.config.Email.Enabled {
		s.logger.WithField("order_id", o.ID).Debug("Email disabled, skipping confirmation")
		return nil
	}

	var body bytes.Buffer
	data := confirmationData{
		Order:    o,
		Total:    o.GetFormattedTotal(),
		Discount: float64(o.DiscountPrice) / 100,
		Currency: s.config.Storefront.Currency,
	}
	if err := confirmationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	subject := fmt.Sprintf("Confirmation de commande n°%d", o.ID)
	return s.send(o.CustomerEmail, subject, body.String())
}

func (s *Service) send(to, subject, htmlBody string) error {
	if s.config.Email.SMTPHost == "" || s.config.Email.SMTPUsername == "" {
		return fmt.Errorf("SMTP configuration incomplete: missing host or username")
	}

	auth := smtp.PlainAuth("",
		s.config.Email.SMTPUsername,
		s.config.Email.SMTPPassword,
		s.config.Email.SMTPHost)

	from := s.config.Email.FromEmail
	if s.config.Email.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)
	}

	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	serverAddr := fmt.Sprintf("%s:%d", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	if err := smtp.SendMail(serverAddr, auth, s.config.Email.FromEmail, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
