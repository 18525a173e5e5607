package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"swiftparcel-backend-go/internal/models"
)

const ridersCollection = "riders"

// firestoreRiderRepository implements RiderRepository using Firestore.
type firestoreRiderRepository struct {
	client *firestore.Client
}

// NewFirestoreRiderRepository creates a Firestore-backed RiderRepository.
func NewFirestoreRiderRepository(client *firestore.Client) RiderRepository {
	return &firestoreRiderRepository{client: client}
}

// Create adds a new rider document and returns its generated ID.
func (r *firestoreRiderRepository) Create(ctx context.Context, rider *models.Rider) (string, error) {
	docRef := r.client.Collection(ridersCollection).NewDoc()
	if _, err := docRef.Create(ctx, rider); err != nil {
		return "", fmt.Errorf("failed to create rider: %w", err)
	}
	rider.ID = docRef.ID
	return docRef.ID, nil
}

// GetByID retrieves a rider document by ID.
func (r *firestoreRiderRepository) GetByID(ctx context.Context, id string) (*models.Rider, error) {
	if id == "" {
		return nil, errors.New("rider id cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(ridersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("rider '%s' not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rider '%s': %w", id, err)
	}

	var rider models.Rider
	if err := docSnap.DataTo(&rider); err != nil {
		return nil, fmt.Errorf("failed to decode rider '%s': %w", id, err)
	}
	rider.ID = docSnap.Ref.ID
	return &rider, nil
}

// List returns riders matching the filter, newest first. Empty filter fields
// are ignored.
func (r *firestoreRiderRepository) List(ctx context.Context, filter models.RiderFilter) ([]*models.Rider, error) {
	q := r.client.Collection(ridersCollection).Query
	if filter.Status != "" {
		q = q.Where("status", "==", filter.Status)
	}
	if filter.District != "" {
		q = q.Where("district", "==", filter.District)
	}
	q = q.OrderBy("created_at", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	riders := make([]*models.Rider, 0)
	for {
		docSnap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list riders: %w", err)
		}
		var rider models.Rider
		if err := docSnap.DataTo(&rider); err != nil {
			return nil, fmt.Errorf("failed to decode rider '%s': %w", docSnap.Ref.ID, err)
		}
		rider.ID = docSnap.Ref.ID
		riders = append(riders, &rider)
	}
	return riders, nil
}

// SetStatus updates the status field of an existing rider document.
func (r *firestoreRiderRepository) SetStatus(ctx context.Context, id, riderStatus string) error {
	if id == "" {
		return errors.New("rider id cannot be empty for SetStatus operation")
	}
	_, err := r.client.Collection(ridersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: riderStatus},
	})
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("rider '%s' not found: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set status for rider '%s': %w", id, err)
	}
	return nil
}
