package contactRepo

import (
	"context"
	"errors"

	"mechserve/database"
	"mechserve/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors returned by contact repositories.
var (
	ErrNotFound      = errors.New("contact not found")
	ErrInvalidStatus = errors.New("invalid contact status")
)

// ContactRepository is the persistence gateway for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, contact models.Contact) (*models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
	// GetByID returns nil (not an error) when no contact matches.
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a ContactRepository backed by MongoDB.
func NewMongoContactRepo() ContactRepository {
	return &mongoContactRepo{
		coll: database.DB().Collection("contacts"),
	}
}
