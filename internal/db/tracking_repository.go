package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"swiftparcel-backend-go/internal/models"
)

const trackingsCollection = "trackings"

// firestoreTrackingRepository implements the append-only tracking log on
// Firestore.
type firestoreTrackingRepository struct {
	client *firestore.Client
}

// NewFirestoreTrackingRepository creates a Firestore-backed TrackingRepository.
func NewFirestoreTrackingRepository(client *firestore.Client) TrackingRepository {
	return &firestoreTrackingRepository{client: client}
}

// Append adds a tracking event and returns its generated ID.
func (r *firestoreTrackingRepository) Append(ctx context.Context, event *models.TrackingEvent) (string, error) {
	docRef := r.client.Collection(trackingsCollection).NewDoc()
	if _, err := docRef.Create(ctx, event); err != nil {
		return "", fmt.Errorf("failed to append tracking event for '%s': %w", event.TrackingID, err)
	}
	event.ID = docRef.ID
	return docRef.ID, nil
}

// ListByTrackingID returns the full event history for a tracking ID, ordered
// by timestamp ascending regardless of arrival order.
func (r *firestoreTrackingRepository) ListByTrackingID(ctx context.Context, trackingID string) ([]*models.TrackingEvent, error) {
	if trackingID == "" {
		return nil, errors.New("trackingID cannot be empty for ListByTrackingID operation")
	}
	iter := r.client.Collection(trackingsCollection).
		Where("tracking_id", "==", trackingID).
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	events := make([]*models.TrackingEvent, 0)
	for {
		docSnap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list tracking events for '%s': %w", trackingID, err)
		}
		var event models.TrackingEvent
		if err := docSnap.DataTo(&event); err != nil {
			return nil, fmt.Errorf("failed to decode tracking event '%s': %w", docSnap.Ref.ID, err)
		}
		event.ID = docSnap.Ref.ID
		events = append(events, &event)
	}
	return events, nil
}
