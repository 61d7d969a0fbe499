package account

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/service"
)

type AccountController struct {
	authService service.AuthService
}

func NewAccountController(authService service.AuthService) *AccountController {
	return &AccountController{authService: authService}
}

// Register godoc
// @Summary Register a new account
// @Description Create a user account with the "user" role.
// @Tags Account
// @Accept json
// @Produce json
// @Param account body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *AccountController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := c.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to register account"})
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Authenticate and obtain a token
// @Description Exchange email and password for a signed bearer token.
// @Tags Account
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AccountController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log in"})
		return
	}
	ctx.JSON(http.StatusOK, token)
}
