package models

import "time"

// Role values a user document may carry.
const (
	RoleUser  = "user"
	RoleRider = "rider"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleRider, RoleAdmin:
		return true
	}
	return false
}

// User represents a platform account. The email doubles as the Firestore
// document ID, so upserts are naturally keyed on it.
type User struct {
	Email          string    `json:"email" firestore:"-"`
	DisplayName    string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	PhotoURL       string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	LastSignInTime string    `json:"lastSignInTime,omitempty" firestore:"lastSignInTime,omitempty"`
	Role           string    `json:"role" firestore:"role"`
	CreatedAt      time.Time `json:"created_at" firestore:"created_at"`
}
