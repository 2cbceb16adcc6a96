package models

import "time"

// Contact statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

// ContactStatuses is the full set of valid contact statuses.
var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusRead,
	ContactStatusResponded,
}

// Contact is a message submitted through the website contact form.
type Contact struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"` // stored lowercased
	Phone     string    `bson:"phone" json:"phone"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
