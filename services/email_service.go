package services

import (
	"context"
	"ecomshop_server/structs"
	"fmt"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	es := &EmailService{
		logger: logger,
		cfg:    cfg,
	}
	if cfg.Email.ResendAPIKey != "" {
		es.client = getEmailClient(cfg.Email.ResendAPIKey)
	}
	return es
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

// Enabled reports whether the service can actually deliver mail. Deployments
// without a provider key or an admin recipient run with notifications off.
func (es *EmailService) Enabled() bool {
	return es.client != nil && es.cfg.Email.AdminTo != ""
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if es.client == nil {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderNotification mails the admin inbox about a freshly submitted
// order. It is a no-op when the service is not enabled.
func (es *EmailService) SendOrderNotification(ctx context.Context, order *structs.Order) error {
	if !es.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("New order from %s %s", order.FirstName, order.LastName)
	body := fmt.Sprintf(`
		<h2>New order received</h2>
		<p><strong>Customer:</strong> %s %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Wilaya:</strong> %s</p>
		<p><strong>Municipality:</strong> %s</p>
		<p><strong>Address:</strong> %s</p>
		<p><strong>Product:</strong> %s</p>
		<p><strong>Variant:</strong> %s</p>
		<p><strong>Order ID:</strong> %s</p>
	`, order.FirstName, order.LastName, order.Phone, order.State,
		order.Municipality, order.Address, order.ProductID, order.VariantName, order.ID)

	return es.SendEmail([]string{es.cfg.Email.AdminTo}, subject, body)
}
