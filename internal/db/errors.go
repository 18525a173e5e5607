package db

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a document does not exist in Firestore. The
// service layer matches it with errors.Is and maps it to domain errors.
var ErrNotFound = errors.New("document not found")

// isNotFound reports whether err is a Firestore not-found gRPC status.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
