package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swiftparcel-backend-go/internal/db"
	"swiftparcel-backend-go/internal/models"
)

// paymentService implements PaymentService.
type paymentService struct {
	paymentRepo db.PaymentRepository
	parcelRepo  db.ParcelRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo db.PaymentRepository, parcelRepo db.ParcelRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, parcelRepo: parcelRepo}
}

// Record flips the parcel to paid and then appends the payment document.
// The two writes are sequential with no cross-document transaction; a crash
// between them leaves a paid parcel without a payment record, which is the
// store's native consistency model for this platform.
func (s *paymentService) Record(ctx context.Context, req models.RecordPaymentRequest) (*models.Payment, error) {
	parcel, err := s.parcelRepo.GetByID(ctx, req.ParcelID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrParcelNotFound, req.ParcelID)
		}
		return nil, fmt.Errorf("failed to get parcel '%s': %w", req.ParcelID, err)
	}
	if parcel.PaymentStatus == models.PaymentPaid {
		return nil, fmt.Errorf("%w: parcel '%s'", ErrAlreadyPaid, req.ParcelID)
	}

	parcel.PaymentStatus = models.PaymentPaid
	if err := s.parcelRepo.Save(ctx, parcel); err != nil {
		return nil, fmt.Errorf("failed to mark parcel '%s' paid: %w", req.ParcelID, err)
	}

	payment := &models.Payment{
		ParcelID:      req.ParcelID,
		Email:         req.Email,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		PaidAt:        time.Now().UTC(),
	}
	if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("parcel '%s' marked paid but recording the payment failed: %w", req.ParcelID, err)
	}
	return payment, nil
}

// ListByEmail returns the payment history for an email, newest first.
func (s *paymentService) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for '%s': %w", email, err)
	}
	return payments, nil
}
