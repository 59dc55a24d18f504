package service

import (
	"context"
	"testing"

	"spam_detector/internal/model"
	"spam_detector/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*fakeUserRepo, AuthService) {
	users := &fakeUserRepo{}
	return users, NewAuthService(users, utils.NewJWTUtil("test-secret", 1))
}

func TestAuthService_Register(t *testing.T) {
	_, svc := newAuthFixture()

	user, token, err := svc.Register(context.Background(), model.RegisterRequest{
		FirstName:   "Anna",
		LastName:    "Lee",
		PhoneNumber: "+15551234567",
		Email:       strPtr("anna@example.com"),
		Password:    "password123",
	})

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password123", user.PasswordHash)

	claims, err := utils.NewJWTUtil("test-secret", 1).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "+15551234567", claims.PhoneNumber)
}

func TestAuthService_Register_InvalidPhone(t *testing.T) {
	users, svc := newAuthFixture()

	_, _, err := svc.Register(context.Background(), model.RegisterRequest{
		FirstName:   "Anna",
		LastName:    "Lee",
		PhoneNumber: "12345",
		Password:    "password123",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "phone_number", vErr.Field)
	assert.Zero(t, users.calls)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	_, svc := newAuthFixture()

	_, _, err := svc.Register(context.Background(), model.RegisterRequest{
		FirstName:   "Anna",
		LastName:    "Lee",
		PhoneNumber: "+15551234567",
		Email:       strPtr("not-an-email"),
		Password:    "password123",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestAuthService_Register_DuplicatePhone(t *testing.T) {
	_, svc := newAuthFixture()

	req := model.RegisterRequest{
		FirstName:   "Anna",
		LastName:    "Lee",
		PhoneNumber: "+15551234567",
		Password:    "password123",
	}
	_, _, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	_, svc := newAuthFixture()

	_, _, err := svc.Register(context.Background(), model.RegisterRequest{
		FirstName:   "Anna",
		LastName:    "Lee",
		PhoneNumber: "+15551234567",
		Password:    "password123",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), model.LoginRequest{
		PhoneNumber: "+15551234567",
		Password:    "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", user.PhoneNumber)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), model.LoginRequest{
		PhoneNumber: "+15551234567",
		Password:    "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), model.LoginRequest{
		PhoneNumber: "+19998887777",
		Password:    "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
