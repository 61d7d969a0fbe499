package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/config"
	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/model"
	"github.com/saripudin14/siwate/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		repo:     repo,
		secret:   cfg.Auth.JWTSecret,
		tokenTTL: cfg.Auth.TokenTTL,
	}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	taken, err := s.repo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     model.RoleUser,
	}
	if err := s.repo.Create(&user); err != nil {
		log.Error().Err(err).Msg("Failed to create user")
		return nil, err
	}

	var resp dto.UserResponse
	copier.Copy(&resp, &user)
	return &resp, nil
}

// Login deliberately collapses unknown-email and wrong-password into the
// same ErrInvalidCredentials so callers cannot probe for registered emails.
func (s *authService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign token")
		return nil, err
	}

	var userResp dto.UserResponse
	copier.Copy(&userResp, user)
	return &dto.TokenResponse{Token: token, User: userResp}, nil
}

func (s *authService) signToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"name": user.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
