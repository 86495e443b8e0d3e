package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v3"

	"toromarket/internal/domain/entity"
)

// EmailService sends transactional mail. Callers treat failures as
// best-effort: log and move on.
type EmailService interface {
	SendOrderConfirmation(ctx context.Context, buyer *entity.User, order *entity.Order, listing *entity.Listing, method *entity.PaymentMethod) error
}

type resendEmailService struct {
	client    *resend.Client
	fromEmail string
}

func NewResendEmailService(apiKey, fromEmail string) EmailService {
	return &resendEmailService{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

func (s *resendEmailService) SendOrderConfirmation(ctx context.Context, buyer *entity.User, order *entity.Order, listing *entity.Listing, method *entity.PaymentMethod) error {
	if buyer.Email == "" {
		return nil
	}

	addr := order.AddressDetails
	if addr == nil {
		addr = map[string]interface{}{}
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s %s,\n\n", str(addr, "first_name"), str(addr, "last_name"))
	body.WriteString("Thanks for your purchase on Toro Marketplace!\n\n")
	fmt.Fprintf(&body, "Listing: %s\n", listing.Title)
	fmt.Fprintf(&body, "Payment: %s\n", method.Name)
	fmt.Fprintf(&body, "Total: $%.2f\n", order.TotalPrice)
	fmt.Fprintf(&body, "Status: %s\n", order.Status)
	fmt.Fprintf(&body, "Placed: %s\n\n", order.CreatedAt.Format("2006-01-02 15:04"))
	body.WriteString("Shipping Address:\n")
	fmt.Fprintf(&body, "%s\n", str(addr, "street"))
	fmt.Fprintf(&body, "%s, %s %s\n", str(addr, "city"), str(addr, "state"), str(addr, "zip"))
	fmt.Fprintf(&body, "%s\n", str(addr, "country"))
	fmt.Fprintf(&body, "Email: %s\n", str(addr, "email"))
	fmt.Fprintf(&body, "Phone: %s\n\n", str(addr, "phone"))
	body.WriteString("You can view your receipt or manage your order in your dashboard.\n\nToro Marketplace")

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Toro Marketplace <%s>", s.fromEmail),
		To:      []string{buyer.Email},
		Subject: fmt.Sprintf("Order Confirmation - Order #%s", order.ID),
		Text:    body.String(),
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	return err
}

func str(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
