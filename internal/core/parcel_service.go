package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"swiftparcel-backend-go/internal/cache"
	"swiftparcel-backend-go/internal/db"
	"swiftparcel-backend-go/internal/models"
)

const (
	statusCountCacheKey = "parcels:status_count"
	statusCountCacheTTL = 30 * time.Second
)

// parcelService is the parcel lifecycle engine. All transitions are
// read-then-write against single documents; concurrent writers keep the
// store's last-writer-wins semantics.
type parcelService struct {
	parcelRepo db.ParcelRepository
	counts     cache.Cache // optional; nil means every read hits the store
	logger     *zap.Logger
}

// NewParcelService creates a new ParcelService. The cache may be nil.
func NewParcelService(parcelRepo db.ParcelRepository, counts cache.Cache, logger *zap.Logger) ParcelService {
	return &parcelService{parcelRepo: parcelRepo, counts: counts, logger: logger}
}

// Create stores a new parcel in the initial lifecycle state. A tracking
// number is minted when the sender form did not carry one.
func (s *parcelService) Create(ctx context.Context, req models.CreateParcelRequest) (*models.Parcel, error) {
	trackingID := req.TrackingID
	if trackingID == "" {
		trackingID = "TRK-" + uuid.NewString()
	}
	parcel := &models.Parcel{
		TrackingID:          trackingID,
		Type:                req.Type,
		Title:               req.Title,
		Weight:              req.Weight,
		Cost:                req.Cost,
		CreatedBy:           req.CreatedBy,
		SenderName:          req.SenderName,
		SenderContact:       req.SenderContact,
		SenderRegion:        req.SenderRegion,
		SenderCenter:        req.SenderCenter,
		SenderAddress:       req.SenderAddress,
		PickupInstruction:   req.PickupInstruction,
		ReceiverName:        req.ReceiverName,
		ReceiverContact:     req.ReceiverContact,
		ReceiverRegion:      req.ReceiverRegion,
		ReceiverCenter:      req.ReceiverCenter,
		ReceiverAddress:     req.ReceiverAddress,
		DeliveryInstruction: req.DeliveryInstruction,
		DeliveryStatus:      models.DeliveryPending,
		PaymentStatus:       models.PaymentUnpaid,
		CashoutStatus:       models.CashoutNone,
		CreatedAt:           time.Now().UTC(),
	}
	if _, err := s.parcelRepo.Create(ctx, parcel); err != nil {
		return nil, fmt.Errorf("failed to create parcel: %w", err)
	}
	return parcel, nil
}

// GetByID retrieves a parcel.
func (s *parcelService) GetByID(ctx context.Context, id string) (*models.Parcel, error) {
	parcel, err := s.parcelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrParcelNotFound, id)
		}
		return nil, fmt.Errorf("failed to get parcel '%s': %w", id, err)
	}
	return parcel, nil
}

// List returns parcels matching the filter.
func (s *parcelService) List(ctx context.Context, filter models.ParcelFilter) ([]*models.Parcel, error) {
	parcels, err := s.parcelRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}
	return parcels, nil
}

// StatusCounts aggregates parcel counts per delivery status over the closed
// status set. Results are cached briefly when a cache is configured; a cache
// failure degrades to the store, never to an error.
func (s *parcelService) StatusCounts(ctx context.Context) ([]models.StatusCount, error) {
	if s.counts != nil {
		cached, err := s.counts.Get(ctx, statusCountCacheKey)
		if err != nil {
			s.logger.Warn("status-count cache read failed", zap.Error(err))
		} else if cached != "" {
			var counts []models.StatusCount
			if err := json.Unmarshal([]byte(cached), &counts); err == nil {
				return counts, nil
			}
		}
	}

	counts := make([]models.StatusCount, 0, len(models.DeliveryStatuses))
	for _, deliveryStatus := range models.DeliveryStatuses {
		n, err := s.parcelRepo.CountByDeliveryStatus(ctx, deliveryStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to count parcels in '%s': %w", deliveryStatus, err)
		}
		counts = append(counts, models.StatusCount{DeliveryStatus: deliveryStatus, Count: n})
	}

	if s.counts != nil {
		if encoded, err := json.Marshal(counts); err == nil {
			if err := s.counts.Set(ctx, statusCountCacheKey, string(encoded), statusCountCacheTTL); err != nil {
				s.logger.Warn("status-count cache write failed", zap.Error(err))
			}
		}
	}
	return counts, nil
}

// AssignRider puts a pending parcel into rider_assigned and stamps the rider
// fields. A parcel that is past pending would make the update a no-op, which
// the API reports as not found.
func (s *parcelService) AssignRider(ctx context.Context, parcelID string, req models.AssignRiderRequest) (*models.Parcel, error) {
	parcel, err := s.parcelRepo.GetByID(ctx, parcelID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrParcelNotFound, parcelID)
		}
		return nil, fmt.Errorf("failed to get parcel '%s': %w", parcelID, err)
	}
	if parcel.DeliveryStatus != models.DeliveryPending {
		return nil, fmt.Errorf("%w: parcel '%s' is not assignable in status '%s'", ErrParcelNotFound, parcelID, parcel.DeliveryStatus)
	}

	now := time.Now().UTC()
	parcel.DeliveryStatus = models.DeliveryRiderAssigned
	parcel.AssignedRiderID = req.RiderID
	parcel.AssignedRiderName = req.RiderName
	parcel.AssignedRiderEmail = req.RiderEmail
	parcel.AssignedAt = &now

	if err := s.parcelRepo.Save(ctx, parcel); err != nil {
		return nil, fmt.Errorf("failed to assign rider to parcel '%s': %w", parcelID, err)
	}
	return parcel, nil
}

// UpdateStatus advances the delivery status. The status must be in the
// closed set; in_transit stamps picked_at and the delivered states stamp
// delivered_at. Nothing defends against regression beyond the enum check.
func (s *parcelService) UpdateStatus(ctx context.Context, parcelID, deliveryStatus string) (*models.Parcel, error) {
	if !models.ValidDeliveryStatus(deliveryStatus) {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidDeliveryStatus, deliveryStatus)
	}

	parcel, err := s.parcelRepo.GetByID(ctx, parcelID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrParcelNotFound, parcelID)
		}
		return nil, fmt.Errorf("failed to get parcel '%s': %w", parcelID, err)
	}

	now := time.Now().UTC()
	parcel.DeliveryStatus = deliveryStatus
	switch deliveryStatus {
	case models.DeliveryInTransit:
		parcel.PickedAt = &now
	case models.DeliveryDelivered, models.DeliveryServiceCenterDelivered:
		parcel.DeliveredAt = &now
	}

	if err := s.parcelRepo.Save(ctx, parcel); err != nil {
		return nil, fmt.Errorf("failed to update status of parcel '%s': %w", parcelID, err)
	}
	return parcel, nil
}

// Cashout marks a delivered parcel cashed out by its assigned rider. The
// preconditions are checked in order so each failure mode keeps its own
// error: unknown parcel, wrong rider, repeat cashout, not yet delivered.
func (s *parcelService) Cashout(ctx context.Context, parcelID, riderEmail string) (*models.Parcel, error) {
	parcel, err := s.parcelRepo.GetByID(ctx, parcelID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrParcelNotFound, parcelID)
		}
		return nil, fmt.Errorf("failed to get parcel '%s': %w", parcelID, err)
	}
	if parcel.AssignedRiderEmail != riderEmail {
		return nil, fmt.Errorf("%w: parcel '%s' is not assigned to '%s'", ErrForbidden, parcelID, riderEmail)
	}
	if parcel.CashoutStatus == models.CashoutCashedOut {
		return nil, fmt.Errorf("%w: parcel '%s'", ErrAlreadyCashedOut, parcelID)
	}
	if !models.DeliveredState(parcel.DeliveryStatus) {
		return nil, fmt.Errorf("%w: parcel '%s' is in status '%s'", ErrNotYetDelivered, parcelID, parcel.DeliveryStatus)
	}

	now := time.Now().UTC()
	parcel.CashoutStatus = models.CashoutCashedOut
	parcel.CashedOutAt = &now

	if err := s.parcelRepo.Save(ctx, parcel); err != nil {
		return nil, fmt.Errorf("failed to cash out parcel '%s': %w", parcelID, err)
	}
	return parcel, nil
}

// Delete removes a parcel.
func (s *parcelService) Delete(ctx context.Context, parcelID string) error {
	if err := s.parcelRepo.Delete(ctx, parcelID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrParcelNotFound, parcelID)
		}
		return fmt.Errorf("failed to delete parcel '%s': %w", parcelID, err)
	}
	return nil
}
