package models

import "time"

// Rider application status values.
const (
	RiderPending  = "pending"
	RiderActive   = "active"
	RiderRejected = "rejected"
)

// ValidRiderStatus reports whether status is a known rider status.
func ValidRiderStatus(status string) bool {
	switch status {
	case RiderPending, RiderActive, RiderRejected:
		return true
	}
	return false
}

// Rider is a delivery-rider application/profile. Self-registration creates it
// as pending; only an admin moves it to active or rejected.
type Rider struct {
	ID               string    `json:"id" firestore:"-"`
	Name             string    `json:"name" firestore:"name"`
	Email            string    `json:"email" firestore:"email"`
	Age              int       `json:"age,omitempty" firestore:"age,omitempty"`
	Region           string    `json:"region,omitempty" firestore:"region,omitempty"`
	District         string    `json:"district" firestore:"district"`
	Phone            string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	NID              string    `json:"nid,omitempty" firestore:"nid,omitempty"`
	BikeBrand        string    `json:"bike_brand,omitempty" firestore:"bike_brand,omitempty"`
	BikeRegistration string    `json:"bike_registration,omitempty" firestore:"bike_registration,omitempty"`
	Status           string    `json:"status" firestore:"status"`
	CreatedAt        time.Time `json:"created_at" firestore:"created_at"`
}

// RiderFilter narrows rider list queries. Empty fields match everything.
type RiderFilter struct {
	Status   string
	District string
}
