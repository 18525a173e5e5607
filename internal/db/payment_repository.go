package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"swiftparcel-backend-go/internal/models"
)

const paymentsCollection = "payments"

// firestorePaymentRepository implements the append-only payment log on
// Firestore. Payments are never updated or deleted.
type firestorePaymentRepository struct {
	client *firestore.Client
}

// NewFirestorePaymentRepository creates a Firestore-backed PaymentRepository.
func NewFirestorePaymentRepository(client *firestore.Client) PaymentRepository {
	return &firestorePaymentRepository{client: client}
}

// Create appends a payment document and returns its generated ID.
func (r *firestorePaymentRepository) Create(ctx context.Context, payment *models.Payment) (string, error) {
	docRef := r.client.Collection(paymentsCollection).NewDoc()
	if _, err := docRef.Create(ctx, payment); err != nil {
		return "", fmt.Errorf("failed to create payment for parcel '%s': %w", payment.ParcelID, err)
	}
	payment.ID = docRef.ID
	return docRef.ID, nil
}

// ListByEmail returns the payments made by an email, newest first.
func (r *firestorePaymentRepository) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for ListByEmail operation")
	}
	iter := r.client.Collection(paymentsCollection).
		Where("email", "==", email).
		OrderBy("paid_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	payments := make([]*models.Payment, 0)
	for {
		docSnap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list payments for '%s': %w", email, err)
		}
		var payment models.Payment
		if err := docSnap.DataTo(&payment); err != nil {
			return nil, fmt.Errorf("failed to decode payment '%s': %w", docSnap.Ref.ID, err)
		}
		payment.ID = docSnap.Ref.ID
		payments = append(payments, &payment)
	}
	return payments, nil
}
