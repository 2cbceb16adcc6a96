package bookingRepo

import (
	"context"
	"slices"
	"strings"
	"time"

	"mechserve/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking and returns the stored record.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	booking.Email = strings.ToLower(strings.TrimSpace(booking.Email))
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns all bookings, most recent first.
func (r *mongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetByID returns a booking by its ID, or nil when absent.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus applies a partial update to the status field only.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if !slices.Contains(models.BookingStatuses, status) {
		return nil, ErrInvalidStatus
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Delete removes a booking by ID.
func (r *mongoBookingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
