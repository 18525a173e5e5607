package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"swiftparcel-backend-go/internal/db"
	"swiftparcel-backend-go/internal/models"
)

// riderService implements RiderService.
type riderService struct {
	riderRepo db.RiderRepository
	userRepo  db.UserRepository
	logger    *zap.Logger
}

// NewRiderService creates a new RiderService. The user repository is needed
// for the role side effect of rider activation.
func NewRiderService(riderRepo db.RiderRepository, userRepo db.UserRepository, logger *zap.Logger) RiderService {
	return &riderService{riderRepo: riderRepo, userRepo: userRepo, logger: logger}
}

// Register stores a rider self-registration in the pending state.
func (s *riderService) Register(ctx context.Context, req models.RegisterRiderRequest) (*models.Rider, error) {
	rider := &models.Rider{
		Name:             req.Name,
		Email:            req.Email,
		Age:              req.Age,
		Region:           req.Region,
		District:         req.District,
		Phone:            req.Phone,
		NID:              req.NID,
		BikeBrand:        req.BikeBrand,
		BikeRegistration: req.BikeRegistration,
		Status:           models.RiderPending,
		CreatedAt:        time.Now().UTC(),
	}
	if _, err := s.riderRepo.Create(ctx, rider); err != nil {
		return nil, fmt.Errorf("failed to register rider '%s': %w", req.Email, err)
	}
	return rider, nil
}

// List returns riders matching the filter.
func (s *riderService) List(ctx context.Context, filter models.RiderFilter) ([]*models.Rider, error) {
	riders, err := s.riderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list riders: %w", err)
	}
	return riders, nil
}

// SetStatus transitions a rider's application status. Activation carries a
// side effect: the matching user is promoted to the rider role. The two
// writes are sequential and not atomic; a missing user document is tolerated
// because the account may not have signed in yet.
func (s *riderService) SetStatus(ctx context.Context, riderID string, req models.SetRiderStatusRequest) error {
	if !models.ValidRiderStatus(req.Status) {
		return fmt.Errorf("%w: '%s'", ErrInvalidRiderStatus, req.Status)
	}

	rider, err := s.riderRepo.GetByID(ctx, riderID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrRiderNotFound, riderID)
		}
		return fmt.Errorf("failed to get rider '%s': %w", riderID, err)
	}

	if err := s.riderRepo.SetStatus(ctx, riderID, req.Status); err != nil {
		return fmt.Errorf("failed to set status of rider '%s': %w", riderID, err)
	}

	if req.Status != models.RiderActive {
		return nil
	}

	userEmail := req.Email
	if userEmail == "" {
		userEmail = rider.Email
	}
	if err := s.userRepo.SetRole(ctx, userEmail, models.RoleRider); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.logger.Warn("rider activated but no user document to promote",
				zap.String("rider_id", riderID),
				zap.String("email", userEmail))
			return nil
		}
		return fmt.Errorf("rider '%s' activated but promoting user '%s' failed: %w", riderID, userEmail, err)
	}
	return nil
}
