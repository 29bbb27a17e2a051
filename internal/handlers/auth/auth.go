package auth

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/handlers/httpio"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, user *domain.User, password string) (*domain.User, *domain.Award, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, *domain.Award, error)
	GenerateToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account, credit the registration points and return a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Username or email already taken"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	user, award, err := h.authService.Register(r.Context(), &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	}, req.Password)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	h.respondWithToken(w, "User successfully registered", user, award)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in and get a JWT token. The first login of a UTC day credits the daily points.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	user, award, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	h.respondWithToken(w, "User successfully authenticated", user, award)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, message string, user *domain.User, award *domain.Award) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithCode(w, http.StatusInternalServerError, httpio.CodeInternalError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: message,
		Token:   token,
		User:    dto.FromUser(user),
		Points:  dto.FromAward(award),
	})
}
