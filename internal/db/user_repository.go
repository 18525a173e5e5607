package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"swiftparcel-backend-go/internal/models"
)

const usersCollection = "users"

// firestoreUserRepository implements UserRepository using Firestore. The
// user's email is the document ID, which makes upserts keyed on email a
// plain Set on the doc ref.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a Firestore-backed UserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	return &firestoreUserRepository{client: client}
}

// Create adds a new user document keyed on the email. Fails if it exists.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Email == "" {
		return errors.New("user email cannot be empty for Create operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.Email).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user '%s' already exists: %w", user.Email, err)
		}
		return fmt.Errorf("failed to create user '%s': %w", user.Email, err)
	}
	return nil
}

// Save writes the user document, merging into any existing fields.
func (r *firestoreUserRepository) Save(ctx context.Context, user *models.User) error {
	if user.Email == "" {
		return errors.New("user email cannot be empty for Save operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.Email).Set(ctx, user, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to save user '%s': %w", user.Email, err)
	}
	return nil
}

// GetByEmail retrieves a user document by email.
func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for GetByEmail operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("user '%s' not found: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", email, err)
	}

	var user models.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user '%s': %w", email, err)
	}
	user.Email = docSnap.Ref.ID
	return &user, nil
}

// List returns all user documents ordered by creation time, newest first.
func (r *firestoreUserRepository) List(ctx context.Context) ([]*models.User, error) {
	iter := r.client.Collection(usersCollection).OrderBy("created_at", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	users := make([]*models.User, 0)
	for {
		docSnap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		var user models.User
		if err := docSnap.DataTo(&user); err != nil {
			return nil, fmt.Errorf("failed to decode user '%s': %w", docSnap.Ref.ID, err)
		}
		user.Email = docSnap.Ref.ID
		users = append(users, &user)
	}
	return users, nil
}

// SetRole updates the role field of an existing user document.
func (r *firestoreUserRepository) SetRole(ctx context.Context, email, role string) error {
	if email == "" {
		return errors.New("email cannot be empty for SetRole operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(email).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
	})
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("user '%s' not found: %w", email, ErrNotFound)
		}
		return fmt.Errorf("failed to set role for user '%s': %w", email, err)
	}
	return nil
}
