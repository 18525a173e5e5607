package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftparcel-backend-go/internal/models"
)

func TestUserService_UpsertCreatesThenRefreshes(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(newFakeUserRepo())

	user, created, err := service.Upsert(ctx, models.UpsertUserRequest{
		Email:          "amina@example.com",
		DisplayName:    "Amina",
		LastSignInTime: "2026-08-01T10:00:00Z",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	user, created, err = service.Upsert(ctx, models.UpsertUserRequest{
		Email:          "amina@example.com",
		DisplayName:    "Amina K",
		LastSignInTime: "2026-08-02T09:30:00Z",
		Role:           models.RoleAdmin, // must not escalate an existing user
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Amina K", user.DisplayName)
	assert.Equal(t, "2026-08-02T09:30:00Z", user.LastSignInTime)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestUserService_UpsertIgnoresInvalidRoleOnCreate(t *testing.T) {
	service := NewUserService(newFakeUserRepo())

	user, created, err := service.Upsert(context.Background(), models.UpsertUserRequest{
		Email: "new@example.com",
		Role:  "superuser",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestUserService_RoleOfDefaultsForUnknownEmail(t *testing.T) {
	service := NewUserService(newFakeUserRepo())

	role, err := service.RoleOf(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestUserService_SetRole(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	_, _, err := service.Upsert(ctx, models.UpsertUserRequest{Email: "amina@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.SetRole(ctx, "amina@example.com", models.RoleAdmin))
	role, err := service.RoleOf(ctx, "amina@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	err = service.SetRole(ctx, "amina@example.com", "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	err = service.SetRole(ctx, "ghost@example.com", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ListWithEmailFilter(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(newFakeUserRepo())

	_, _, err := service.Upsert(ctx, models.UpsertUserRequest{Email: "a@example.com"})
	require.NoError(t, err)
	_, _, err = service.Upsert(ctx, models.UpsertUserRequest{Email: "b@example.com"})
	require.NoError(t, err)

	all, err := service.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	match, err := service.List(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, match, 1)
	assert.Equal(t, "a@example.com", match[0].Email)

	none, err := service.List(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}
