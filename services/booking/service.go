package booking

import (
	"context"
	"slices"
	"strings"
	"time"

	bookingRepo "mechserve/database/repository/booking"
	"mechserve/models"
	"mechserve/services/notification"
	"mechserve/utils"
	"mechserve/validation"

	"go.uber.org/zap"
)

// notifyTimeout bounds the single mail delivery attempt after a create.
const notifyTimeout = 10 * time.Second

// BookingService orchestrates booking submissions and management.
type BookingService interface {
	// Create validates a raw submission, persists it and attempts a
	// best-effort notification. A non-empty violation list means nothing
	// was written; a non-nil error means the authoritative write failed.
	Create(ctx context.Context, fields map[string]any) (*models.Booking, []validation.Violation, error)
	List(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.Notifier
}

// createRules declares the field constraints for a booking submission.
// The enums come from models so the validator and the repository check
// against the same literals.
func createRules() []validation.Rule {
	return []validation.Rule{
		{Field: "name", Required: true},
		{Field: "email", Required: true, Email: true},
		{Field: "phone", Required: true},
		{Field: "location", Required: true},
		{Field: "serviceType", Required: true, Enum: models.ServiceTypes},
		{Field: "preferredDate", ISODate: true},
	}
}

func (s *DefaultBookingService) Create(ctx context.Context, fields map[string]any) (*models.Booking, []validation.Violation, error) {
	if violations := validation.Validate(fields, createRules()); len(violations) > 0 {
		return nil, violations, nil
	}

	booking := models.Booking{
		Name:          str(fields, "name"),
		Email:         str(fields, "email"),
		Phone:         str(fields, "phone"),
		Company:       str(fields, "company"),
		Location:      str(fields, "location"),
		ServiceType:   str(fields, "serviceType"),
		MachineType:   str(fields, "machineType"),
		MachineBrand:  str(fields, "machineBrand"),
		PreferredDate: str(fields, "preferredDate"),
		PreferredTime: str(fields, "preferredTime"),
		Message:       str(fields, "message"),
	}

	created, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, nil, err
	}

	// The write is committed; notification failure must not undo that.
	nctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := s.Notifier.NotifyBooking(nctx, created); err != nil {
		utils.GetLogger().Error("booking notification failed",
			zap.String("bookingId", created.ID), zap.Error(err))
	}

	return created, nil, nil
}

func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	// Reject out-of-set values before the gateway sees the request.
	if !slices.Contains(models.BookingStatuses, status) {
		return nil, bookingRepo.ErrInvalidStatus
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// str pulls a trimmed string field out of a raw submission.
func str(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
