package usecase

import (
	"context"
	"testing"

	"carwash-booking/internal/data/entity"
	"carwash-booking/internal/dto/request"
	"carwash-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) (AuthService, *utils.Config) {
	t.Helper()

	config := &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24},
	}
	return NewAuthService(newFakeRepository(), config, zap.NewNop()), config
}

func TestRegisterAndLogin(t *testing.T) {
	service, config := newAuthService(t)

	registered, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:     "Sara Alharbi",
		Email:    "sara@example.com",
		Phone:    "0509876543",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, registered.Role)
	assert.NotEmpty(t, registered.Token)

	claims, err := utils.ParseToken(registered.Token, config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, claims.UserID)
	assert.Equal(t, string(entity.RoleCustomer), claims.Role)

	logged, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "sara@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, logged.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newAuthService(t)

	req := &request.RegisterRequest{
		Name:     "Sara Alharbi",
		Email:    "sara@example.com",
		Phone:    "0509876543",
		Password: "s3cret-password",
	}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	req.Phone = "0500000000"
	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailOrPhoneTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:     "Sara Alharbi",
		Email:    "sara@example.com",
		Phone:    "0509876543",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Email:    "sara@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:     "X",
		Email:    "not-an-email",
		Phone:    "1",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
