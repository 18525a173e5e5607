package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swiftparcel-backend-go/internal/models"
)

func TestPaymentService_RecordMarksParcelPaid(t *testing.T) {
	ctx := context.Background()
	parcelRepo := newFakeParcelRepo()
	paymentRepo := newFakePaymentRepo()
	parcels := NewParcelService(parcelRepo, nil, zap.NewNop())
	service := NewPaymentService(paymentRepo, parcelRepo)

	parcel, err := parcels.Create(ctx, models.CreateParcelRequest{CreatedBy: "amina@example.com"})
	require.NoError(t, err)

	payment, err := service.Record(ctx, models.RecordPaymentRequest{
		ParcelID:      parcel.ID,
		Email:         "amina@example.com",
		Amount:        150,
		PaymentMethod: "card",
		TransactionID: "txn_123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.False(t, payment.PaidAt.IsZero())

	stored, err := parcels.GetByID(ctx, parcel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
}

func TestPaymentService_RecordRejectsDoublePayment(t *testing.T) {
	ctx := context.Background()
	parcelRepo := newFakeParcelRepo()
	paymentRepo := newFakePaymentRepo()
	parcels := NewParcelService(parcelRepo, nil, zap.NewNop())
	service := NewPaymentService(paymentRepo, parcelRepo)

	parcel, err := parcels.Create(ctx, models.CreateParcelRequest{CreatedBy: "amina@example.com"})
	require.NoError(t, err)

	_, err = service.Record(ctx, models.RecordPaymentRequest{ParcelID: parcel.ID, Email: "amina@example.com", Amount: 150})
	require.NoError(t, err)

	_, err = service.Record(ctx, models.RecordPaymentRequest{ParcelID: parcel.ID, Email: "amina@example.com", Amount: 150})
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	// No second payment document.
	history, err := service.ListByEmail(ctx, "amina@example.com")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPaymentService_RecordUnknownParcel(t *testing.T) {
	service := NewPaymentService(newFakePaymentRepo(), newFakeParcelRepo())

	_, err := service.Record(context.Background(), models.RecordPaymentRequest{ParcelID: "missing", Email: "amina@example.com"})
	assert.ErrorIs(t, err, ErrParcelNotFound)
}

func TestPaymentService_ListByEmailNewestFirst(t *testing.T) {
	ctx := context.Background()
	paymentRepo := newFakePaymentRepo()
	service := NewPaymentService(paymentRepo, newFakeParcelRepo())

	older := &models.Payment{ParcelID: "parcel-1", Email: "amina@example.com", PaidAt: time.Now().UTC().Add(-time.Hour)}
	newer := &models.Payment{ParcelID: "parcel-2", Email: "amina@example.com", PaidAt: time.Now().UTC()}
	other := &models.Payment{ParcelID: "parcel-3", Email: "someone-else@example.com", PaidAt: time.Now().UTC()}
	for _, payment := range []*models.Payment{older, newer, other} {
		_, err := paymentRepo.Create(ctx, payment)
		require.NoError(t, err)
	}

	history, err := service.ListByEmail(ctx, "amina@example.com")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "parcel-2", history[0].ParcelID)
	assert.Equal(t, "parcel-1", history[1].ParcelID)
}
