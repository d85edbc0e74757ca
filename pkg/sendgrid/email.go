package sendgrid

import (
	"context"
	"fmt"

	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	Send(ctx context.Context, req *models.EmailRequest) error
}

type Option func(*emailService)

// WithBaseURL points the client at another mail/send endpoint.
func WithBaseURL(url string) Option {
	return func(e *emailService) {
		e.client.Request.BaseURL = url
	}
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string, opts ...Option) EmailService {
	e := &emailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *emailService) Send(ctx context.Context, req *models.EmailRequest) error {
	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", req.To))
	personalization.Subject = req.Subject

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/plain", req.Content))

	if req.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
