package core

import (
	"context"

	"swiftparcel-backend-go/internal/models"
)

// UserService defines user-account operations.
type UserService interface {
	// Upsert creates or refreshes a user keyed on email. The boolean reports
	// whether a new document was created.
	Upsert(ctx context.Context, req models.UpsertUserRequest) (*models.User, bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns all users, or the exact-match result when emailFilter is set.
	List(ctx context.Context, emailFilter string) ([]*models.User, error)
	// RoleOf returns the user's role, defaulting to "user" for unknown emails.
	RoleOf(ctx context.Context, email string) (string, error)
	SetRole(ctx context.Context, email, role string) error
}

// ParcelService is the parcel lifecycle engine.
type ParcelService interface {
	Create(ctx context.Context, req models.CreateParcelRequest) (*models.Parcel, error)
	GetByID(ctx context.Context, id string) (*models.Parcel, error)
	List(ctx context.Context, filter models.ParcelFilter) ([]*models.Parcel, error)
	StatusCounts(ctx context.Context) ([]models.StatusCount, error)
	AssignRider(ctx context.Context, parcelID string, req models.AssignRiderRequest) (*models.Parcel, error)
	UpdateStatus(ctx context.Context, parcelID, deliveryStatus string) (*models.Parcel, error)
	// Cashout marks the parcel cashed out on behalf of riderEmail, which must
	// be the assigned rider.
	Cashout(ctx context.Context, parcelID, riderEmail string) (*models.Parcel, error)
	Delete(ctx context.Context, parcelID string) error
}

// RiderService defines rider registration and admin status transitions.
type RiderService interface {
	Register(ctx context.Context, req models.RegisterRiderRequest) (*models.Rider, error)
	List(ctx context.Context, filter models.RiderFilter) ([]*models.Rider, error)
	// SetStatus transitions a rider; moving to active also promotes the
	// matching user to the rider role (two sequential writes, not atomic).
	SetStatus(ctx context.Context, riderID string, req models.SetRiderStatusRequest) error
}

// PaymentService records completed charges and serves payment history.
type PaymentService interface {
	// Record marks the parcel paid, then appends the payment. The two writes
	// are sequential with no cross-document transaction.
	Record(ctx context.Context, req models.RecordPaymentRequest) (*models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

// TrackingService is the append-only tracking log.
type TrackingService interface {
	Record(ctx context.Context, req models.RecordTrackingRequest) (*models.TrackingEvent, error)
	History(ctx context.Context, trackingID string) ([]*models.TrackingEvent, error)
}

// PaymentGateway creates payment intents with the external payment provider
// and returns the client secret the frontend needs to complete the charge.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error)
}
