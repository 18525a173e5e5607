package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"

	"swiftparcel-backend-go/internal/models"
)

const parcelsCollection = "parcels"

// firestoreParcelRepository implements ParcelRepository using Firestore.
type firestoreParcelRepository struct {
	client *firestore.Client
}

// NewFirestoreParcelRepository creates a Firestore-backed ParcelRepository.
func NewFirestoreParcelRepository(client *firestore.Client) ParcelRepository {
	return &firestoreParcelRepository{client: client}
}

// Create adds a new parcel document and returns its generated ID.
func (r *firestoreParcelRepository) Create(ctx context.Context, parcel *models.Parcel) (string, error) {
	docRef := r.client.Collection(parcelsCollection).NewDoc()
	if _, err := docRef.Create(ctx, parcel); err != nil {
		return "", fmt.Errorf("failed to create parcel: %w", err)
	}
	parcel.ID = docRef.ID
	return docRef.ID, nil
}

// GetByID retrieves a parcel document by ID.
func (r *firestoreParcelRepository) GetByID(ctx context.Context, id string) (*models.Parcel, error) {
	if id == "" {
		return nil, errors.New("parcel id cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(parcelsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("parcel '%s' not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get parcel '%s': %w", id, err)
	}

	var parcel models.Parcel
	if err := docSnap.DataTo(&parcel); err != nil {
		return nil, fmt.Errorf("failed to decode parcel '%s': %w", id, err)
	}
	parcel.ID = docSnap.Ref.ID
	return &parcel, nil
}

// List returns parcels matching the filter, newest first. Empty filter fields
// are ignored.
func (r *firestoreParcelRepository) List(ctx context.Context, filter models.ParcelFilter) ([]*models.Parcel, error) {
	q := r.client.Collection(parcelsCollection).Query
	if filter.Email != "" {
		q = q.Where("created_by", "==", filter.Email)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("payment_status", "==", filter.PaymentStatus)
	}
	if filter.DeliveryStatus != "" {
		q = q.Where("delivery_status", "==", filter.DeliveryStatus)
	}
	q = q.OrderBy("createdAt", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	parcels := make([]*models.Parcel, 0)
	for {
		docSnap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list parcels: %w", err)
		}
		var parcel models.Parcel
		if err := docSnap.DataTo(&parcel); err != nil {
			return nil, fmt.Errorf("failed to decode parcel '%s': %w", docSnap.Ref.ID, err)
		}
		parcel.ID = docSnap.Ref.ID
		parcels = append(parcels, &parcel)
	}
	return parcels, nil
}

// Save overwrites the parcel document with the given state. The document must
// already exist; callers read before writing, and concurrent writers keep
// last-writer-wins semantics.
func (r *firestoreParcelRepository) Save(ctx context.Context, parcel *models.Parcel) error {
	if parcel.ID == "" {
		return errors.New("parcel id cannot be empty for Save operation")
	}
	_, err := r.client.Collection(parcelsCollection).Doc(parcel.ID).Set(ctx, parcel)
	if err != nil {
		return fmt.Errorf("failed to save parcel '%s': %w", parcel.ID, err)
	}
	return nil
}

// Delete removes a parcel document. Deleting a missing document is an error.
func (r *firestoreParcelRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("parcel id cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(parcelsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("parcel '%s' not found: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete parcel '%s': %w", id, err)
	}
	return nil
}

// CountByDeliveryStatus counts parcels in the given delivery status using a
// server-side aggregation query.
func (r *firestoreParcelRepository) CountByDeliveryStatus(ctx context.Context, deliveryStatus string) (int64, error) {
	q := r.client.Collection(parcelsCollection).Where("delivery_status", "==", deliveryStatus)
	result, err := q.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count parcels with status '%s': %w", deliveryStatus, err)
	}
	raw, ok := result["count"]
	if !ok {
		return 0, fmt.Errorf("count aggregation for status '%s' returned no value", deliveryStatus)
	}
	value, ok := raw.(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("count aggregation for status '%s' returned unexpected type %T", deliveryStatus, raw)
	}
	return value.GetIntegerValue(), nil
}
