package db

import (
	"context"

	"swiftparcel-backend-go/internal/models"
)

// UserRepository defines user document storage. Users are keyed on email.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	SetRole(ctx context.Context, email, role string) error
}

// ParcelRepository defines parcel document storage.
type ParcelRepository interface {
	Create(ctx context.Context, parcel *models.Parcel) (string, error)
	GetByID(ctx context.Context, id string) (*models.Parcel, error)
	List(ctx context.Context, filter models.ParcelFilter) ([]*models.Parcel, error)
	Save(ctx context.Context, parcel *models.Parcel) error
	Delete(ctx context.Context, id string) error
	CountByDeliveryStatus(ctx context.Context, status string) (int64, error)
}

// RiderRepository defines rider document storage.
type RiderRepository interface {
	Create(ctx context.Context, rider *models.Rider) (string, error)
	GetByID(ctx context.Context, id string) (*models.Rider, error)
	List(ctx context.Context, filter models.RiderFilter) ([]*models.Rider, error)
	SetStatus(ctx context.Context, id, status string) error
}

// PaymentRepository defines the append-only payment log.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (string, error)
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

// TrackingRepository defines the append-only tracking-event log.
type TrackingRepository interface {
	Append(ctx context.Context, event *models.TrackingEvent) (string, error)
	ListByTrackingID(ctx context.Context, trackingID string) ([]*models.TrackingEvent, error)
}
