package core

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swiftparcel-backend-go/internal/models"
)

func newParcelServiceForTest(repo *fakeParcelRepo) ParcelService {
	return NewParcelService(repo, nil, zap.NewNop())
}

func TestParcelService_CreateStampsInitialState(t *testing.T) {
	service := newParcelServiceForTest(newFakeParcelRepo())

	parcel, err := service.Create(context.Background(), models.CreateParcelRequest{
		Title:     "Documents",
		CreatedBy: "sender@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, parcel.ID)
	assert.Equal(t, models.DeliveryPending, parcel.DeliveryStatus)
	assert.Equal(t, models.PaymentUnpaid, parcel.PaymentStatus)
	assert.Equal(t, models.CashoutNone, parcel.CashoutStatus)
	assert.False(t, parcel.CreatedAt.IsZero())
	assert.True(t, strings.HasPrefix(parcel.TrackingID, "TRK-"))
}

func TestParcelService_CreateKeepsCallerTrackingID(t *testing.T) {
	service := newParcelServiceForTest(newFakeParcelRepo())

	parcel, err := service.Create(context.Background(), models.CreateParcelRequest{TrackingID: "TRK-CUSTOM-1"})
	require.NoError(t, err)
	assert.Equal(t, "TRK-CUSTOM-1", parcel.TrackingID)
}

func TestParcelService_AssignRider(t *testing.T) {
	ctx := context.Background()
	repo := newFakeParcelRepo()
	service := newParcelServiceForTest(repo)

	parcel, err := service.Create(ctx, models.CreateParcelRequest{CreatedBy: "sender@example.com"})
	require.NoError(t, err)

	assigned, err := service.AssignRider(ctx, parcel.ID, models.AssignRiderRequest{
		RiderID:    "rider-1",
		RiderName:  "Karim",
		RiderEmail: "karim@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryRiderAssigned, assigned.DeliveryStatus)
	assert.Equal(t, "karim@example.com", assigned.AssignedRiderEmail)
	require.NotNil(t, assigned.AssignedAt)

	// Second assignment would be a no-op update, reported as not found.
	_, err = service.AssignRider(ctx, parcel.ID, models.AssignRiderRequest{
		RiderID:    "rider-2",
		RiderName:  "Rahim",
		RiderEmail: "rahim@example.com",
	})
	assert.ErrorIs(t, err, ErrParcelNotFound)
}

func TestParcelService_AssignRiderUnknownParcel(t *testing.T) {
	service := newParcelServiceForTest(newFakeParcelRepo())

	_, err := service.AssignRider(context.Background(), "missing", models.AssignRiderRequest{
		RiderID:    "rider-1",
		RiderName:  "Karim",
		RiderEmail: "karim@example.com",
	})
	assert.ErrorIs(t, err, ErrParcelNotFound)
}

func TestParcelService_UpdateStatusStampsTimestamps(t *testing.T) {
	ctx := context.Background()
	service := newParcelServiceForTest(newFakeParcelRepo())

	parcel, err := service.Create(ctx, models.CreateParcelRequest{})
	require.NoError(t, err)

	updated, err := service.UpdateStatus(ctx, parcel.ID, models.DeliveryInTransit)
	require.NoError(t, err)
	require.NotNil(t, updated.PickedAt)
	assert.Nil(t, updated.DeliveredAt)

	updated, err = service.UpdateStatus(ctx, parcel.ID, models.DeliveryDelivered)
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveredAt)
}

func TestParcelService_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	service := newParcelServiceForTest(newFakeParcelRepo())

	parcel, err := service.Create(ctx, models.CreateParcelRequest{})
	require.NoError(t, err)

	_, err = service.UpdateStatus(ctx, parcel.ID, "teleported")
	assert.ErrorIs(t, err, ErrInvalidDeliveryStatus)
}

func TestParcelService_CashoutPreconditions(t *testing.T) {
	ctx := context.Background()
	repo := newFakeParcelRepo()
	service := newParcelServiceForTest(repo)

	parcel, err := service.Create(ctx, models.CreateParcelRequest{})
	require.NoError(t, err)
	_, err = service.AssignRider(ctx, parcel.ID, models.AssignRiderRequest{
		RiderID:    "rider-1",
		RiderName:  "Karim",
		RiderEmail: "karim@example.com",
	})
	require.NoError(t, err)

	// Before delivery, regardless of who asks.
	_, err = service.Cashout(ctx, parcel.ID, "karim@example.com")
	assert.ErrorIs(t, err, ErrNotYetDelivered)

	_, err = service.UpdateStatus(ctx, parcel.ID, models.DeliveryDelivered)
	require.NoError(t, err)

	// Wrong rider.
	_, err = service.Cashout(ctx, parcel.ID, "someone-else@example.com")
	assert.ErrorIs(t, err, ErrForbidden)

	// Unknown parcel.
	_, err = service.Cashout(ctx, "missing", "karim@example.com")
	assert.ErrorIs(t, err, ErrParcelNotFound)

	// Success once, AlreadyCashedOut thereafter.
	cashed, err := service.Cashout(ctx, parcel.ID, "karim@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.CashoutCashedOut, cashed.CashoutStatus)
	require.NotNil(t, cashed.CashedOutAt)

	_, err = service.Cashout(ctx, parcel.ID, "karim@example.com")
	assert.ErrorIs(t, err, ErrAlreadyCashedOut)
}

func TestParcelService_CashoutWorksForServiceCenterDelivery(t *testing.T) {
	ctx := context.Background()
	service := newParcelServiceForTest(newFakeParcelRepo())

	parcel, err := service.Create(ctx, models.CreateParcelRequest{})
	require.NoError(t, err)
	_, err = service.AssignRider(ctx, parcel.ID, models.AssignRiderRequest{
		RiderID:    "rider-1",
		RiderName:  "Karim",
		RiderEmail: "karim@example.com",
	})
	require.NoError(t, err)
	_, err = service.UpdateStatus(ctx, parcel.ID, models.DeliveryServiceCenterDelivered)
	require.NoError(t, err)

	cashed, err := service.Cashout(ctx, parcel.ID, "karim@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.CashoutCashedOut, cashed.CashoutStatus)
}

func TestParcelService_DeleteUnknownParcel(t *testing.T) {
	service := newParcelServiceForTest(newFakeParcelRepo())
	err := service.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrParcelNotFound)
}

func TestParcelService_ListFilters(t *testing.T) {
	ctx := context.Background()
	service := newParcelServiceForTest(newFakeParcelRepo())

	a, err := service.Create(ctx, models.CreateParcelRequest{CreatedBy: "a@example.com"})
	require.NoError(t, err)
	_, err = service.Create(ctx, models.CreateParcelRequest{CreatedBy: "b@example.com"})
	require.NoError(t, err)

	byEmail, err := service.List(ctx, models.ParcelFilter{Email: "a@example.com"})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, a.ID, byEmail[0].ID)

	unpaid, err := service.List(ctx, models.ParcelFilter{PaymentStatus: models.PaymentUnpaid})
	require.NoError(t, err)
	assert.Len(t, unpaid, 2)
}

func TestParcelService_StatusCounts(t *testing.T) {
	ctx := context.Background()
	repo := newFakeParcelRepo()
	service := newParcelServiceForTest(repo)

	for i := 0; i < 3; i++ {
		_, err := service.Create(ctx, models.CreateParcelRequest{})
		require.NoError(t, err)
	}
	parcel, err := service.Create(ctx, models.CreateParcelRequest{})
	require.NoError(t, err)
	_, err = service.UpdateStatus(ctx, parcel.ID, models.DeliveryInTransit)
	require.NoError(t, err)

	counts, err := service.StatusCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, len(models.DeliveryStatuses))

	byStatus := make(map[string]int64, len(counts))
	for _, row := range counts {
		byStatus[row.DeliveryStatus] = row.Count
	}
	assert.Equal(t, int64(3), byStatus[models.DeliveryPending])
	assert.Equal(t, int64(1), byStatus[models.DeliveryInTransit])
	assert.Equal(t, int64(0), byStatus[models.DeliveryDelivered])
}

func TestParcelService_StatusCountsUsesCache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeParcelRepo()
	counts := newFakeCache()
	service := NewParcelService(repo, counts, zap.NewNop())

	_, err := service.Create(ctx, models.CreateParcelRequest{})
	require.NoError(t, err)

	first, err := service.StatusCounts(ctx)
	require.NoError(t, err)

	// A write after the cache fill is invisible until the entry expires.
	_, err = service.Create(ctx, models.CreateParcelRequest{})
	require.NoError(t, err)

	second, err := service.StatusCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, counts.Delete(ctx, "parcels:status_count"))
	third, err := service.StatusCounts(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}
