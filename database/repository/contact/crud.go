package contactRepo

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

// Create inserts a new contact message and returns the stored record.
func (r *mongoContactRepo) Create(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.Status == "" {
		contact.Status = models.ContactStatusNew
	}
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = contact.CreatedAt

	if _, err := r.coll.InsertOne(ctx, contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns all contact messages, most recent first.
func (r *mongoContactRepo) List(ctx context.Context) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetByID returns a contact by its ID, or nil when absent.
func (r *mongoContactRepo) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&contact)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateStatus applies a partial update to the status field only.
func (r *mongoContactRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Contact, error) {
	if !slices.Contains(models.ContactStatuses, status) {
		return nil, ErrInvalidStatus
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var contact models.Contact
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&contact)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Delete removes a contact message by ID.
func (r *mongoContactRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
