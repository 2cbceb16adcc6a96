package models

import "time"

// Booking statuses. Transitions happen only through the explicit
// status-update endpoint; nothing moves a booking automatically.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// BookingStatuses is the full set of valid booking statuses, shared by the
// request validator and the repository so the literals live in one place.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// ServiceTypes enumerates the service categories a booking may request.
var ServiceTypes = []string{
	"Preventive Maintenance",
	"Breakdown Repair",
	"Machine Overhaul",
	"Installation & Commissioning",
	"Annual Maintenance Contract",
	"Spare Parts Support",
}

// Booking is a service booking request submitted through the website.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"` // stored lowercased
	Phone         string    `bson:"phone" json:"phone"`
	Company       string    `bson:"company,omitempty" json:"company,omitempty"`
	Location      string    `bson:"location" json:"location"`
	ServiceType   string    `bson:"serviceType" json:"serviceType"`
	MachineType   string    `bson:"machineType,omitempty" json:"machineType,omitempty"`
	MachineBrand  string    `bson:"machineBrand,omitempty" json:"machineBrand,omitempty"`
	PreferredDate string    `bson:"preferredDate,omitempty" json:"preferredDate,omitempty"`
	PreferredTime string    `bson:"preferredTime,omitempty" json:"preferredTime,omitempty"`
	Message       string    `bson:"message,omitempty" json:"message,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
