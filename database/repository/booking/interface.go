package bookingRepo

import (
	"context"
	"errors"

	"mechserve/database"
	"mechserve/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors returned by booking repositories.
var (
	ErrNotFound      = errors.New("booking not found")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// BookingRepository is the persistence gateway for bookings.
type BookingRepository interface {
	// Create assigns identity, timestamps and the default status, then
	// writes the booking. The stored record is returned.
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	// List returns all bookings ordered by creation time, newest first.
	List(ctx context.Context) ([]models.Booking, error)
	// GetByID returns nil (not an error) when no booking matches.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus sets only the status field, leaving everything else
	// untouched. Returns ErrInvalidStatus before touching the store if the
	// value is outside models.BookingStatuses, ErrNotFound if id is absent.
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	// Delete removes the booking permanently; ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
