package core

import (
	"context"
	"fmt"
	"time"

	"swiftparcel-backend-go/internal/db"
	"swiftparcel-backend-go/internal/models"
)

// trackingService implements the append-only tracking log.
type trackingService struct {
	trackingRepo db.TrackingRepository
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(trackingRepo db.TrackingRepository) TrackingService {
	return &trackingService{trackingRepo: trackingRepo}
}

// Record appends a tracking event stamped with server time. Tracking ID and
// status are the only required fields; everything else is carried through.
func (s *trackingService) Record(ctx context.Context, req models.RecordTrackingRequest) (*models.TrackingEvent, error) {
	if req.TrackingID == "" {
		return nil, fmt.Errorf("%w: tracking_id", ErrMissingField)
	}
	if req.Status == "" {
		return nil, fmt.Errorf("%w: status", ErrMissingField)
	}
	event := &models.TrackingEvent{
		TrackingID: req.TrackingID,
		Status:     req.Status,
		Message:    req.Message,
		UpdatedBy:  req.UpdatedBy,
		Details:    req.Details,
		Timestamp:  time.Now().UTC(),
	}
	if _, err := s.trackingRepo.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record tracking event for '%s': %w", req.TrackingID, err)
	}
	return event, nil
}

// History returns the full event log for a tracking ID, oldest first.
func (s *trackingService) History(ctx context.Context, trackingID string) ([]*models.TrackingEvent, error) {
	if trackingID == "" {
		return nil, fmt.Errorf("%w: tracking_id", ErrMissingField)
	}
	events, err := s.trackingRepo.ListByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracking history for '%s': %w", trackingID, err)
	}
	return events, nil
}
