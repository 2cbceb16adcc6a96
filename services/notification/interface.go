package notification

import (
	"context"

	"mechserve/models"
)

// Notifier delivers a human-readable notification for a freshly persisted
// record. Callers treat delivery as best-effort: a returned error is logged
// and swallowed, never surfaced to the submitting client.
type Notifier interface {
	NotifyBooking(ctx context.Context, booking *models.Booking) error
	NotifyContact(ctx context.Context, contact *models.Contact) error
}

// Disabled is a no-op Notifier used when no SMTP credentials are
// configured. The server keeps serving persistence traffic with
// notifications silently off.
type Disabled struct{}

func (Disabled) NotifyBooking(ctx context.Context, booking *models.Booking) error { return nil }
func (Disabled) NotifyContact(ctx context.Context, contact *models.Contact) error { return nil }
