package core

import "errors"

// Domain errors. The API layer maps these to HTTP statuses; everything else
// that bubbles up from the store surfaces as a 500.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrParcelNotFound = errors.New("parcel not found")
	ErrRiderNotFound  = errors.New("rider not found")

	ErrForbidden = errors.New("forbidden")

	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")
	ErrInvalidRiderStatus    = errors.New("invalid rider status")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrMissingField          = errors.New("missing required field")

	ErrAlreadyCashedOut = errors.New("parcel already cashed out")
	ErrNotYetDelivered  = errors.New("parcel not yet delivered")
	ErrAlreadyPaid      = errors.New("parcel already paid")
)
