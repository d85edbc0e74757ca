package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/middleware"
	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	repository "github.com/ensaladazo/ensaladazo-backend/internal/repositories"
	"github.com/ensaladazo/ensaladazo-backend/pkg/sendgrid"
	"github.com/google/uuid"
)

const (
	maxContactNameLength    = 100
	maxContactMessageLength = 1000
)

type ContactService interface {
	CreateMessage(ctx context.Context, req *models.CreateContactMessageRequest) (*models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]*models.ContactMessage, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ContactMessage, error)
}

type contactService struct {
	repo   repository.ContactRepository
	mailer sendgrid.EmailService
	text   plainText
}

// NewContactService wires the inbox. mailer may be nil, in which case no
// acknowledgement email is sent.
func NewContactService(repo repository.ContactRepository, mailer sendgrid.EmailService) ContactService {
	return &contactService{
		repo:   repo,
		mailer: mailer,
		text:   newPlainText(),
	}
}

func (s *contactService) CreateMessage(ctx context.Context, req *models.CreateContactMessageRequest) (*models.ContactMessage, error) {
	name, err := s.text.Clean("name", req.Name, maxContactNameLength)
	if err != nil {
		return nil, err
	}

	body, err := s.text.Clean("message", req.Message, maxContactMessageLength)
	if err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		Name:    name,
		Email:   req.Email,
		Message: body,
		Phone:   req.Phone,
		Status:  models.ContactStatusPending,
	}

	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, writeError(err, "Failed to save contact message")
	}

	s.acknowledge(ctx, msg)

	return msg, nil
}

// acknowledge emails the sender. Failures are logged only; the message is
// already stored.
func (s *contactService) acknowledge(ctx context.Context, msg *models.ContactMessage) {
	if s.mailer == nil {
		return
	}

	err := s.mailer.Send(ctx, &models.EmailRequest{
		To:      msg.Email,
		Subject: "Recibimos tu mensaje - Ensaladazo!",
		Content: fmt.Sprintf("Hola %s, gracias por escribirnos. Te responderemos pronto.", msg.Name),
		HTMLContent: fmt.Sprintf("<p>Hola <strong>%s</strong>, gracias por escribirnos.</p><p>Te responderemos pronto.</p>",
			html.EscapeString(msg.Name)),
	})
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to send contact acknowledgement",
			slog.String("messageID", msg.ID.String()), slog.Any("error", err))
	}
}

func (s *contactService) ListMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	messages, err := s.repo.ListMessages(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch contact messages").WithError(err)
	}

	return messages, nil
}

func (s *contactService) GetMessage(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	msg, err := s.repo.GetMessageByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Contact message not found", "Failed to fetch contact message")
	}

	return msg, nil
}

// UpdateStatus stores any status string; there is no transition check.
func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ContactMessage, error) {
	if status == "" || len(status) > 20 {
		return nil, appErrors.AddValidationError("status", "must be between 1 and 20 characters")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFoundOr(err, "Contact message not found", "Failed to update contact message")
	}

	return s.GetMessage(ctx, id)
}
