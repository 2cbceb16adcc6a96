package contact

import (
	"context"
	"slices"
	"strings"
	"time"

	contactRepo "mechserve/database/repository/contact"
	"mechserve/models"
	"mechserve/services/notification"
	"mechserve/utils"
	"mechserve/validation"

	"go.uber.org/zap"
)

const notifyTimeout = 10 * time.Second

// ContactService orchestrates contact message submissions and management.
type ContactService interface {
	Create(ctx context.Context, fields map[string]any) (*models.Contact, []validation.Violation, error)
	List(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}

// DefaultContactService is the production implementation.
type DefaultContactService struct {
	Repo     contactRepo.ContactRepository
	Notifier notification.Notifier
}

func createRules() []validation.Rule {
	return []validation.Rule{
		{Field: "name", Required: true},
		{Field: "email", Required: true, Email: true},
		{Field: "phone", Required: true},
		{Field: "subject", Required: true},
		{Field: "message", Required: true},
	}
}

func (s *DefaultContactService) Create(ctx context.Context, fields map[string]any) (*models.Contact, []validation.Violation, error) {
	if violations := validation.Validate(fields, createRules()); len(violations) > 0 {
		return nil, violations, nil
	}

	contact := models.Contact{
		Name:    str(fields, "name"),
		Email:   str(fields, "email"),
		Phone:   str(fields, "phone"),
		Subject: str(fields, "subject"),
		Message: str(fields, "message"),
	}

	created, err := s.Repo.Create(ctx, contact)
	if err != nil {
		return nil, nil, err
	}

	// The write is committed; notification failure must not undo that.
	nctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := s.Notifier.NotifyContact(nctx, created); err != nil {
		utils.GetLogger().Error("contact notification failed",
			zap.String("contactId", created.ID), zap.Error(err))
	}

	return created, nil, nil
}

func (s *DefaultContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultContactService) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultContactService) UpdateStatus(ctx context.Context, id, status string) (*models.Contact, error) {
	if !slices.Contains(models.ContactStatuses, status) {
		return nil, contactRepo.ErrInvalidStatus
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}

func (s *DefaultContactService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func str(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
