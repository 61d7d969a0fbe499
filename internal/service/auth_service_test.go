package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saripudin14/siwate/config"
	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/model"
	"github.com/saripudin14/siwate/internal/repository"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTL = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthServiceForTest(t)

	user, err := svc.Register(dto.RegisterRequest{
		Name:     "Sari",
		Email:    "sari@example.com",
		Password: "rahasia-123",
	})
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, user.Role)

	resp, err := svc.Login(dto.LoginRequest{Email: "sari@example.com", Password: "rahasia-123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, user.ID, resp.User.ID)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.EqualValues(t, user.ID, claims["sub"])
	require.Equal(t, model.RoleUser, claims["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthServiceForTest(t)

	_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "password"})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterRequest{Name: "B", Email: "dup@example.com", Password: "password"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthServiceForTest(t)

	_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "password"})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginRequest{Email: "a@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthServiceForTest(t)

	_, err := svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
