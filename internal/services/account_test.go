package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrsvp/internal/domain"
)

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userRepo := newMockUserRepository()
		svc := NewAccountService(userRepo, &mockHasher{}, &mockIssuer{}, 2*time.Hour)

		token, user, err := svc.Register(ctx, "  Alice Adams ", "Alice@X.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, "token-for-"+user.ID, token)
		assert.Equal(t, "alice@x.com", user.Email)
		assert.Equal(t, "Alice Adams", user.FullName)
		assert.False(t, user.IsAdmin)
		assert.False(t, user.HasRSVPed)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotContains(t, user.PasswordHash, "password1")
		assert.NotContains(t, user.PasswordHash, user.Salt)
		require.NotNil(t, userRepo.created)
	})

	t.Run("duplicate email", func(t *testing.T) {
		existing := &domain.User{ID: "u1", Email: "alice@x.com"}
		svc := NewAccountService(newMockUserRepository(existing), &mockHasher{}, &mockIssuer{}, 2*time.Hour)

		_, _, err := svc.Register(ctx, "Alice", "alice@x.com", "password1")
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("duplicate email is case-insensitive", func(t *testing.T) {
		existing := &domain.User{ID: "u1", Email: "alice@x.com"}
		svc := NewAccountService(newMockUserRepository(existing), &mockHasher{}, &mockIssuer{}, 2*time.Hour)

		_, _, err := svc.Register(ctx, "Alice", "ALICE@x.com", "password1")
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewAccountService(newMockUserRepository(), &mockHasher{}, &mockIssuer{}, 2*time.Hour)

		_, _, err := svc.Register(ctx, "Alice", "not-an-email", "password1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, _, err = svc.Register(ctx, "", "alice@x.com", "password1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, _, err = svc.Register(ctx, "Alice", "alice@x.com", "short")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	storedHash, err := (&mockHasher{}).Hash("static-salt", "rightpass")
	require.NoError(t, err)
	known := &domain.User{
		ID:           "u1",
		Email:        "known@x.com",
		FullName:     "Known User",
		Salt:         "static-salt",
		PasswordHash: storedHash,
	}

	t.Run("success", func(t *testing.T) {
		svc := NewAccountService(newMockUserRepository(known), &mockHasher{}, &mockIssuer{}, 2*time.Hour)

		token, user, err := svc.Login(ctx, "Known@X.com", "rightpass")
		require.NoError(t, err)
		assert.Equal(t, "token-for-u1", token)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		svc := NewAccountService(newMockUserRepository(known), &mockHasher{}, &mockIssuer{}, 2*time.Hour)

		_, _, errWrongPass := svc.Login(ctx, "known@x.com", "wrongpass")
		_, _, errUnknown := svc.Login(ctx, "unknown@x.com", "anything")

		require.Error(t, errWrongPass)
		require.Error(t, errUnknown)
		assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
		assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
	})
}
