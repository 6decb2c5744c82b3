package utils

import (
	"fmt"

	"github.com/charankanumuri/proshop96/models"
	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// With an empty API token the service is disabled and sends are no-ops,
// which keeps local development working without a Postmark account.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		return &EmailService{}
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}

	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendOrderPaidEmail sends an order confirmation once payment is recorded
func (es *EmailService) SendOrderPaidEmail(toEmail string, order *models.Order) error {
	subject := "Order Confirmation - ProShop"
	htmlContent := fmt.Sprintf(
		"<strong>Thank you for your purchase!</strong><br><br>Your payment for order %s has been received.<br><br>Total: <strong>$%.2f</strong><br>Payment Method: <strong>%s</strong>",
		order.ID.Hex(),
		order.TotalPrice,
		order.PaymentMethod,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
